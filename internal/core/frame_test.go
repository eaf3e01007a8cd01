package core

import (
	"testing"
	"time"
)

func TestTextFrameDimensions(t *testing.T) {
	f := NewTextFrame([]string{"@@@@", "####", "    "})

	if f.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", f.Height())
	}
	if f.Width() != 4 {
		t.Errorf("Width() = %d, expected 4", f.Width())
	}
}

func TestTextFrameWidthCountsRunes(t *testing.T) {
	// Block glyphs are multi-byte; width is measured in characters.
	f := NewTextFrame([]string{"█▓▒░"})

	if f.Width() != 4 {
		t.Errorf("Width() = %d, expected 4", f.Width())
	}
}

func TestTextFrameRow(t *testing.T) {
	f := NewTextFrame([]string{"aaa", "bbb"})

	if f.Row(1) != "bbb" {
		t.Errorf("Row(1) = %q, expected %q", f.Row(1), "bbb")
	}

	// Out of bounds rows are empty, not a panic
	if f.Row(-1) != "" {
		t.Errorf("Row(-1) = %q, expected empty", f.Row(-1))
	}
	if f.Row(2) != "" {
		t.Errorf("Row(2) = %q, expected empty", f.Row(2))
	}
}

func TestTextFrameString(t *testing.T) {
	f := NewTextFrame([]string{"ab", "cd"})

	if f.String() != "ab\ncd" {
		t.Errorf("String() = %q, expected %q", f.String(), "ab\ncd")
	}
}

func TestEmptyTextFrame(t *testing.T) {
	f := NewTextFrame(nil)

	if f.Height() != 0 {
		t.Errorf("Height() = %d, expected 0", f.Height())
	}
	if f.Width() != 0 {
		t.Errorf("Width() = %d, expected 0", f.Width())
	}
}

func TestFrameSequenceDuration(t *testing.T) {
	fs := make(FrameSequence, 3)

	if d := fs.Duration(12); d != 250*time.Millisecond {
		t.Errorf("Duration(12) = %v, expected 250ms", d)
	}
	if d := fs.Duration(0); d != 0 {
		t.Errorf("Duration(0) = %v, expected 0", d)
	}
}
