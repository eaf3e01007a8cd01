package media

import (
	"math"
	"testing"
)

const sampleProbeJSON = `{
	"format": {
		"filename": "clip.mp4",
		"format_name": "mov,mp4,m4a,3gp,3g2,mj2",
		"format_long_name": "QuickTime / MOV",
		"duration": "12.480000",
		"size": "1048576",
		"bit_rate": "672000"
	},
	"streams": [
		{
			"codec_name": "mjpeg",
			"codec_type": "video",
			"width": 600,
			"height": 600,
			"avg_frame_rate": "0/0",
			"disposition": {"attached_pic": 1}
		},
		{
			"codec_name": "h264",
			"codec_type": "video",
			"width": 1920,
			"height": 1080,
			"avg_frame_rate": "30000/1001",
			"disposition": {"attached_pic": 0}
		},
		{
			"codec_name": "aac",
			"codec_type": "audio",
			"avg_frame_rate": "0/0"
		}
	]
}`

func TestParseProbeJSON(t *testing.T) {
	res, err := ParseProbeJSON([]byte(sampleProbeJSON))
	if err != nil {
		t.Fatalf("ParseProbeJSON() failed: %v", err)
	}

	if res.Format.Filename != "clip.mp4" {
		t.Errorf("Filename = %q, expected clip.mp4", res.Format.Filename)
	}
	if res.Format.Duration != 12.48 {
		t.Errorf("Duration = %f, expected 12.48", res.Format.Duration)
	}
	if res.Format.Size != 1048576 {
		t.Errorf("Size = %d, expected 1048576", res.Format.Size)
	}

	if res.Video == nil {
		t.Fatal("Video is nil, expected the h264 stream")
	}
	if res.Video.Codec != "h264" {
		t.Errorf("Codec = %q, expected h264 (cover art must be skipped)", res.Video.Codec)
	}
	if res.Resolution() != "1920x1080" {
		t.Errorf("Resolution() = %q, expected 1920x1080", res.Resolution())
	}
}

func TestFrameRateFraction(t *testing.T) {
	res, err := ParseProbeJSON([]byte(sampleProbeJSON))
	if err != nil {
		t.Fatalf("ParseProbeJSON() failed: %v", err)
	}

	got := res.FrameRate()
	if math.Abs(got-29.97) > 0.01 {
		t.Errorf("FrameRate() = %f, expected about 29.97", got)
	}
}

func TestFrameRateVariants(t *testing.T) {
	tests := []struct {
		rate     string
		expected float64
	}{
		{"25/1", 25},
		{"0/0", 0},
		{"", 0},
		{"24", 24},
	}

	for _, tc := range tests {
		p := &ProbeResult{Video: &VideoStream{AvgFrameRate: tc.rate}}
		if got := p.FrameRate(); got != tc.expected {
			t.Errorf("FrameRate(%q) = %f, expected %f", tc.rate, got, tc.expected)
		}
	}
}

func TestProbeResultWithoutVideo(t *testing.T) {
	res, err := ParseProbeJSON([]byte(`{"format":{"filename":"a.ogg"},"streams":[{"codec_type":"audio"}]}`))
	if err != nil {
		t.Fatalf("ParseProbeJSON() failed: %v", err)
	}

	if res.Video != nil {
		t.Error("Video should be nil for audio-only files")
	}
	if res.Resolution() != "unknown" {
		t.Errorf("Resolution() = %q, expected unknown", res.Resolution())
	}
	if res.FrameRate() != 0 {
		t.Errorf("FrameRate() = %f, expected 0", res.FrameRate())
	}
}

func TestParseProbeJSONInvalid(t *testing.T) {
	if _, err := ParseProbeJSON([]byte("{nope")); err == nil {
		t.Fatal("ParseProbeJSON of invalid JSON should fail")
	}
}
