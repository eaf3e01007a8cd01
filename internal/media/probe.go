package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path and returns the
// parsed container and video stream metadata.
func Probe(ctx context.Context, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("media: ffprobe %q: %w", path, err)
	}
	return ParseProbeJSON(out)
}

// ParseProbeJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseProbeJSON(data []byte) (*ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("media: parse ffprobe JSON: %w", err)
	}

	res := &ProbeResult{
		Format: FormatInfo{
			Filename:       raw.Format.Filename,
			FormatName:     raw.Format.FormatName,
			FormatLongName: raw.Format.FormatLongName,
			Duration:       parseFloat(raw.Format.Duration),
			Size:           parseInt(raw.Format.Size),
			BitRate:        parseInt(raw.Format.BitRate),
		},
	}

	for _, s := range raw.Streams {
		if s.CodecType != "video" {
			continue
		}
		// Skip cover art masquerading as a video stream.
		if s.Disposition["attached_pic"] == 1 {
			continue
		}
		res.Video = &VideoStream{
			Codec:        s.CodecName,
			Width:        s.Width,
			Height:       s.Height,
			AvgFrameRate: s.AvgFrameRate,
		}
		break
	}
	return res, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

type ffprobeStream struct {
	CodecName    string         `json:"codec_name"`
	CodecType    string         `json:"codec_type"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	AvgFrameRate string         `json:"avg_frame_rate"`
	Disposition  map[string]int `json:"disposition"`
}

// --- Domain types ---

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename       string
	FormatName     string
	FormatLongName string
	Duration       float64 // seconds
	Size           int64
	BitRate        int64
}

// VideoStream holds the properties of the primary video stream.
type VideoStream struct {
	Codec        string
	Width        int
	Height       int
	AvgFrameRate string // ffprobe fraction, e.g. "30000/1001"
}

// ProbeResult is the parsed output of one ffprobe call. Video is the
// first non-cover-art video stream, nil when the file has none.
type ProbeResult struct {
	Format FormatInfo
	Video  *VideoStream
}

// Resolution returns "WxH" for the video stream, or "unknown".
func (p *ProbeResult) Resolution() string {
	if p.Video == nil || p.Video.Width <= 0 || p.Video.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", p.Video.Width, p.Video.Height)
}

// FrameRate returns the source frame rate in frames per second, 0 when
// unknown.
func (p *ProbeResult) FrameRate() float64 {
	if p.Video == nil {
		return 0
	}
	num, den, ok := strings.Cut(p.Video.AvgFrameRate, "/")
	if !ok {
		return parseFloat(p.Video.AvgFrameRate)
	}
	n := parseFloat(num)
	d := parseFloat(den)
	if d == 0 {
		return 0
	}
	return n / d
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
