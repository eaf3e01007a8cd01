package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cinema/internal/core"
	"github.com/vovakirdan/tui-cinema/internal/storage"
)

// Outcome describes how a playback run ended.
type Outcome int

const (
	// OutcomePlaying means the run has not ended yet.
	OutcomePlaying Outcome = iota
	// OutcomeExhausted means every frame was shown.
	OutcomeExhausted
	// OutcomeQuit means the viewer pressed a quit key.
	OutcomeQuit
)

// String returns the outcome label used in run history. A run that never
// reached its own end is reported as interrupted.
func (o Outcome) String() string {
	switch o {
	case OutcomeExhausted:
		return storage.OutcomeCompleted
	case OutcomeQuit:
		return storage.OutcomeQuit
	default:
		return storage.OutcomeInterrupted
	}
}

// PlayerModel is the Bubble Tea model that plays a converted frame sequence.
type PlayerModel struct {
	frames   core.FrameSequence
	store    *storage.Store
	viewport core.Viewport
	fps      int
	video    string
	index    int
	outcome  Outcome
	quitting bool
	runSaved bool // Whether the run record has been written
}

// NewPlayerModel creates a player for the given frame sequence.
// store may be nil, in which case the run is not recorded.
func NewPlayerModel(frames core.FrameSequence, store *storage.Store, vp core.Viewport, fps int, video string) PlayerModel {
	if fps < 1 {
		fps = 1
	}
	return PlayerModel{
		frames:   frames,
		store:    store,
		viewport: vp,
		fps:      fps,
		video:    video,
	}
}

// Init starts the playback tick loop.
func (m PlayerModel) Init() tea.Cmd {
	if len(m.frames) == 0 {
		return tea.Quit
	}
	return tickCmd(m.fps)
}

// Update handles messages and advances playback.
func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.viewport = core.NewViewport(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.finish(OutcomeQuit)
	}
	return m, nil
}

// handleTick advances to the next frame or ends the run.
func (m PlayerModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.index+1 >= len(m.frames) {
		return m.finish(OutcomeExhausted)
	}
	m.index++
	return m, tickCmd(m.fps)
}

// finish ends the run with the given outcome and records it once.
func (m PlayerModel) finish(outcome Outcome) (tea.Model, tea.Cmd) {
	m.outcome = outcome
	m.quitting = true

	if m.store != nil && !m.runSaved && len(m.frames) > 0 {
		//nolint:errcheck // Best-effort save, playback ends regardless
		m.store.SaveRun(storage.RunRecord{
			Video:        m.video,
			FramesTotal:  len(m.frames),
			FramesPlayed: m.FramesPlayed(),
			FPS:          m.fps,
			GridCols:     m.frames[0].Width(),
			GridRows:     m.frames[0].Height(),
			Outcome:      outcome.String(),
		})
		m.runSaved = true
	}

	return m, tea.Quit
}

// View renders the current frame with the status line.
func (m PlayerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.index >= len(m.frames) {
		return ""
	}
	return RenderFrame(m.frames[m.index], m.statusLine(), m.viewport)
}

// statusLine shows 1-based progress, the playback rate, and the quit hint.
func (m PlayerModel) statusLine() string {
	return fmt.Sprintf("cinema %d/%d | %dFPS | q to quit", m.index+1, len(m.frames), m.fps)
}

// Outcome returns how the run ended, or OutcomePlaying if it has not.
func (m PlayerModel) Outcome() Outcome {
	return m.outcome
}

// FramesTotal returns the number of frames in the sequence.
func (m PlayerModel) FramesTotal() int {
	return len(m.frames)
}

// FramesPlayed returns how many distinct frames have been shown so far.
func (m PlayerModel) FramesPlayed() int {
	if len(m.frames) == 0 {
		return 0
	}
	if m.outcome == OutcomeExhausted {
		return len(m.frames)
	}
	return core.Min(m.index+1, len(m.frames))
}

// RunPlayer starts the Bubble Tea program for a playback run and blocks
// until it ends. The final player state is returned so callers can report
// and record the run even when Run fails.
func RunPlayer(frames core.FrameSequence, store *storage.Store, vp core.Viewport, fps int, video string) (PlayerModel, error) {
	model := NewPlayerModel(frames, store, vp, fps, video)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if m, ok := finalModel.(PlayerModel); ok {
		model = m
	}
	return model, err
}
