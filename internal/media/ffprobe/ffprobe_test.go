package ffprobe

import (
	"math"
	"testing"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{{CodecType: "video"}, {CodecType: "audio"}},
		Format:  Format{Duration: "123.45"},
	}
	if !result.HasStreams() {
		t.Fatal("expected streams")
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{Format: Format{Duration: "bad"}}
	if !math.IsNaN(result.DurationSeconds()) {
		t.Fatalf("expected duration NaN, got %v", result.DurationSeconds())
	}
	if (Result{}).DurationSeconds() != 0 {
		t.Fatal("expected zero duration when unset")
	}
}

func TestParseDecodesStreamsAndTags(t *testing.T) {
	payload := []byte(`{
		"streams": [
			{"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1920},
			{"index": 1, "codec_type": "audio", "codec_name": "aac", "channels": 2, "tags": {"language": "eng"}, "disposition": {"default": 1}}
		],
		"format": {"format_name": "matroska,webm", "duration": "60.5"}
	}`)
	result, err := Parse(payload)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(result.Streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(result.Streams))
	}
	if video := result.Streams[0]; video.Width != 1920 || video.CodecName != "h264" {
		t.Fatalf("unexpected video stream: %+v", video)
	}
	audio := result.Streams[1]
	if audio.Index != 1 || audio.Channels != 2 || audio.Tags["language"] != "eng" || audio.Disposition["default"] != 1 {
		t.Fatalf("unexpected audio stream: %+v", audio)
	}
	if result.Format.FormatName != "matroska,webm" || result.DurationSeconds() != 60.5 {
		t.Fatalf("unexpected format: %+v", result.Format)
	}
}

func TestParseToleratesMistypedFields(t *testing.T) {
	payload := []byte(`{
		"streams": [
			{"codec_type": "audio", "codec_name": "ac3", "channels": 6, "duration": 12.5, "width": "1920", "tags": {"language": "eng", "BPS": 640000}},
			{"codec_type": "audio", "codec_name": ["aac"], "channels": "2", "tags": "eng", "disposition": {"default": "yes"}},
			{"codec_type": "video", "codec_name": "h264", "channels": 2.5, "index": "3"},
			"not-an-object"
		],
		"format": "matroska"
	}`)
	result, err := Parse(payload)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(result.Streams) != 4 {
		t.Fatalf("expected every record to keep its position, got %d", len(result.Streams))
	}

	first := result.Streams[0]
	if first.CodecName != "ac3" || first.Channels != 6 || first.Tags["language"] != "eng" {
		t.Fatalf("unexpected first stream: %+v", first)
	}
	if first.Duration != "12.5" || first.Width != 1920 || first.Tags["BPS"] != "640000" {
		t.Fatalf("expected numeric fields to be coerced: %+v", first)
	}

	second := result.Streams[1]
	if second.CodecName != "" || second.Channels != 2 || second.Tags != nil || second.Disposition["default"] != 0 {
		t.Fatalf("unexpected second stream: %+v", second)
	}

	third := result.Streams[2]
	if third.Channels != 0 || third.Index != 3 {
		t.Fatalf("unexpected third stream: %+v", third)
	}

	if result.Streams[3].CodecType != "" {
		t.Fatalf("expected zero stream for non-object record: %+v", result.Streams[3])
	}
	if result.Format != (Format{}) {
		t.Fatalf("expected zero format, got %+v", result.Format)
	}
}

func TestParseStreamsNotAnArray(t *testing.T) {
	result, err := Parse([]byte(`{"streams": {"index": 0}}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if result.Streams != nil {
		t.Fatalf("expected nil streams, got %+v", result.Streams)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "null"} {
		result, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		if result.HasStreams() {
			t.Fatalf("Parse(%q) produced streams", input)
		}
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	for _, input := range []string{`{"streams": [`, `[1, 2]`, `"text"`} {
		if _, err := Parse([]byte(input)); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
