package testsupport

import (
	"encoding/json"
	"testing"

	"streamgate/internal/media/ffprobe"
)

// Video returns a video stream record.
func Video(codec string) ffprobe.Stream {
	return ffprobe.Stream{CodecType: "video", CodecName: codec}
}

// Audio returns an audio stream record; an empty lang omits the tag.
func Audio(codec string, channels int, lang string) ffprobe.Stream {
	stream := ffprobe.Stream{CodecType: "audio", CodecName: codec, Channels: channels}
	if lang != "" {
		stream.Tags = map[string]string{"language": lang}
	}
	return stream
}

// Subtitle returns a subtitle stream record.
func Subtitle(lang string) ffprobe.Stream {
	return ffprobe.Stream{CodecType: "subtitle", CodecName: "subrip", Tags: map[string]string{"language": lang}}
}

// Probe numbers the streams in order and wraps them in a Result.
func Probe(list ...ffprobe.Stream) ffprobe.Result {
	indexed := make([]ffprobe.Stream, len(list))
	for i, stream := range list {
		stream.Index = i
		indexed[i] = stream
	}
	return ffprobe.Result{Streams: indexed}
}

// ProbeJSON renders the streams as an ffprobe JSON document.
func ProbeJSON(t testing.TB, list ...ffprobe.Stream) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(Probe(list...))
	if err != nil {
		t.Fatalf("marshal probe: %v", err)
	}
	return data
}
