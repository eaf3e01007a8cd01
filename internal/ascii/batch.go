package ascii

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cinema/internal/core"
)

// Batch fans conversion out across a fixed-size worker pool and
// reassembles the results in input order.
type Batch struct {
	conv    *Converter
	workers int
	logger  *log.Logger
}

// NewBatch creates a batch runner over the given converter. Worker counts
// below one are raised to one.
func NewBatch(conv *Converter, workers int, logger *log.Logger) *Batch {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Batch{conv: conv, workers: workers, logger: logger}
}

// ConvertAll converts every path and returns the surviving frames in the
// order of paths, no matter which worker finishes first: each job carries
// its index, workers write into that index's slot, and the slots are
// collected front to back at the end. Failed conversions are logged and
// dropped. Cancelling ctx stops dispatch and returns what finished.
func (b *Batch) ConvertAll(ctx context.Context, paths []string) core.FrameSequence {
	slots := make([]*core.TextFrame, len(paths))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				frame, err := b.conv.Convert(paths[i])
				if err != nil {
					b.logger.Warn("frame conversion failed", "path", paths[i], "error", err)
					continue
				}
				slots[i] = &frame
			}
		}()
	}

	for i := range paths {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
		}
	}
	close(jobs)
	wg.Wait()

	frames := make(core.FrameSequence, 0, len(paths))
	for _, f := range slots {
		if f != nil {
			frames = append(frames, *f)
		}
	}
	return frames
}
