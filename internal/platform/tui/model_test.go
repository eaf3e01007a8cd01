package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cinema/internal/core"
)

// sequenceOf builds n frames of the given size, each filled with its own
// glyph so tests can tell frames apart in the rendered view.
func sequenceOf(n, cols, rows int) core.FrameSequence {
	frames := make(core.FrameSequence, 0, n)
	for i := 0; i < n; i++ {
		row := strings.Repeat(string(rune('A'+i)), cols)
		rowsData := make([]string, rows)
		for y := range rowsData {
			rowsData[y] = row
		}
		frames = append(frames, core.NewTextFrame(rowsData))
	}
	return frames
}

func testViewport() core.Viewport {
	return core.FallbackViewport()
}

func drive(t *testing.T, m PlayerModel, msg tea.Msg) (PlayerModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	pm, ok := updated.(PlayerModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected PlayerModel", updated)
	}
	return pm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func assertQuitCmd(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit command")
	}
}

func TestPlayerShowsFramesInOrder(t *testing.T) {
	m := NewPlayerModel(sequenceOf(3, 10, 4), nil, testViewport(), 12, "clip.mp4")

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned nil, expected the first tick")
	}

	for i, glyph := range []string{"A", "B", "C"} {
		view := m.View()
		if !strings.Contains(view, strings.Repeat(glyph, 10)) {
			t.Errorf("view %d does not show frame %q:\n%s", i, glyph, view)
		}

		var cmd tea.Cmd
		m, cmd = drive(t, m, TickMsg{})
		if i < 2 && cmd == nil {
			t.Errorf("tick %d returned no follow-up command", i)
		}
	}
}

func TestPlayerQuitMidway(t *testing.T) {
	m := NewPlayerModel(sequenceOf(5, 10, 4), nil, testViewport(), 12, "clip.mp4")

	// Two ticks: frames 1, 2 and 3 have been shown.
	m, _ = drive(t, m, TickMsg{})
	m, _ = drive(t, m, TickMsg{})

	m, cmd := drive(t, m, keyMsg("q"))
	assertQuitCmd(t, cmd)

	if m.Outcome() != OutcomeQuit {
		t.Errorf("Outcome() = %v, expected OutcomeQuit", m.Outcome())
	}
	if m.FramesPlayed() != 3 {
		t.Errorf("FramesPlayed() = %d, expected 3", m.FramesPlayed())
	}
	if view := m.View(); view != "" {
		t.Errorf("View() after quit = %q, expected empty", view)
	}
}

func TestPlayerCtrlCQuits(t *testing.T) {
	m := NewPlayerModel(sequenceOf(3, 10, 4), nil, testViewport(), 12, "clip.mp4")

	m, cmd := drive(t, m, keyMsg("ctrl+c"))
	assertQuitCmd(t, cmd)

	if m.Outcome() != OutcomeQuit {
		t.Errorf("Outcome() = %v, expected OutcomeQuit", m.Outcome())
	}
	if m.FramesPlayed() != 1 {
		t.Errorf("FramesPlayed() = %d, expected 1", m.FramesPlayed())
	}
}

func TestPlayerExhaustsSequence(t *testing.T) {
	m := NewPlayerModel(sequenceOf(3, 10, 4), nil, testViewport(), 12, "clip.mp4")

	var cmd tea.Cmd
	m, cmd = drive(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("first tick returned no follow-up command")
	}
	m, cmd = drive(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("second tick returned no follow-up command")
	}

	// The sequence is on its last frame now; the next tick ends the run.
	m, cmd = drive(t, m, TickMsg{})
	assertQuitCmd(t, cmd)

	if m.Outcome() != OutcomeExhausted {
		t.Errorf("Outcome() = %v, expected OutcomeExhausted", m.Outcome())
	}
	if m.FramesPlayed() != 3 {
		t.Errorf("FramesPlayed() = %d, expected 3", m.FramesPlayed())
	}
}

func TestPlayerOtherKeysIgnored(t *testing.T) {
	m := NewPlayerModel(sequenceOf(3, 10, 4), nil, testViewport(), 12, "clip.mp4")

	for _, k := range []string{"a", " ", "x"} {
		var cmd tea.Cmd
		m, cmd = drive(t, m, keyMsg(k))
		if cmd != nil {
			t.Errorf("key %q produced a command", k)
		}
		if m.Outcome() != OutcomePlaying {
			t.Errorf("key %q ended the run", k)
		}
	}
}

func TestPlayerEmptySequence(t *testing.T) {
	m := NewPlayerModel(nil, nil, testViewport(), 12, "clip.mp4")

	cmd := m.Init()
	assertQuitCmd(t, cmd)

	if view := m.View(); view != "" {
		t.Errorf("View() = %q, expected empty", view)
	}
	if m.FramesPlayed() != 0 {
		t.Errorf("FramesPlayed() = %d, expected 0", m.FramesPlayed())
	}
}

func TestPlayerStatusLine(t *testing.T) {
	m := NewPlayerModel(sequenceOf(3, 10, 4), nil, testViewport(), 12, "clip.mp4")

	view := m.View()
	if !strings.Contains(view, "1/3") {
		t.Errorf("view is missing the 1-based progress:\n%s", view)
	}
	if !strings.Contains(view, "12FPS") {
		t.Errorf("view is missing the frame rate:\n%s", view)
	}
	if !strings.Contains(view, "q") {
		t.Errorf("view is missing the quit hint:\n%s", view)
	}

	m, _ = drive(t, m, TickMsg{})
	if view := m.View(); !strings.Contains(view, "2/3") {
		t.Errorf("view after one tick is missing 2/3:\n%s", view)
	}
}

func TestPlayerResizeChangesLayout(t *testing.T) {
	// Frames are larger than the fallback viewport can show.
	m := NewPlayerModel(sequenceOf(1, 100, 30), nil, testViewport(), 12, "clip.mp4")

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Fatalf("got %d lines, expected 24 (23 content + status)", len(lines))
	}
	if got := len([]rune(lines[0])); got != 80 {
		t.Errorf("row width = %d runes, expected 80", got)
	}

	// A bigger terminal shows the full frame.
	m, _ = drive(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})

	view = m.View()
	lines = strings.Split(view, "\n")
	if len(lines) != 31 {
		t.Fatalf("after resize got %d lines, expected 31 (30 content + status)", len(lines))
	}
	if got := len([]rune(lines[0])); got != 100 {
		t.Errorf("after resize row width = %d runes, expected 100", got)
	}
}

func TestOutcomeLabels(t *testing.T) {
	cases := []struct {
		outcome Outcome
		label   string
	}{
		{OutcomeExhausted, "completed"},
		{OutcomeQuit, "quit"},
		{OutcomePlaying, "interrupted"},
	}

	for _, tc := range cases {
		if got := tc.outcome.String(); got != tc.label {
			t.Errorf("Outcome(%d).String() = %q, expected %q", tc.outcome, got, tc.label)
		}
	}
}
