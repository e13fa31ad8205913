package streams

import (
	"fmt"
	"strings"

	"streamgate/internal/language"
	"streamgate/internal/media/ffprobe"
)

// Kind is the normalized stream category.
type Kind string

const (
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindSubtitle Kind = "subtitle"
	KindOther    Kind = "other"
)

// Stream is the normalized view of one ffprobe stream record.
type Stream struct {
	// Position is the zero-based position within the probe stream list.
	Position int
	// Index is the ffprobe-reported stream index.
	Index int
	// Type is the raw codec_type as reported, trimmed but otherwise untouched.
	Type     string
	Kind     Kind
	Codec    string
	Channels int
	Language string
}

// Summary renders the bracketed per-stream description used in order logs.
func (s Stream) Summary() string {
	return fmt.Sprintf("[%d type=%s codec=%s channels=%d language=%s]", s.Position, s.Type, s.Codec, s.Channels, s.Language)
}

// LanguageChannels renders the "language-channels" projection compared by
// the audio order check.
func (s Stream) LanguageChannels() string {
	return fmt.Sprintf("%s-%d", s.Language, s.Channels)
}

// Set holds the classified streams of one probe result.
type Set struct {
	Video    []Stream
	Audio    []Stream
	Subtitle []Stream
	All      []Stream
}

// Classify normalizes raw stream records. Relative order is preserved in
// every group.
func Classify(raw []ffprobe.Stream) Set {
	set := Set{All: make([]Stream, 0, len(raw))}
	for position, record := range raw {
		stream := normalize(position, record)
		set.All = append(set.All, stream)
		switch stream.Kind {
		case KindVideo:
			set.Video = append(set.Video, stream)
		case KindAudio:
			set.Audio = append(set.Audio, stream)
		case KindSubtitle:
			set.Subtitle = append(set.Subtitle, stream)
		}
	}
	return set
}

func normalize(position int, record ffprobe.Stream) Stream {
	codecType := strings.TrimSpace(record.CodecType)
	channels := record.Channels
	if channels < 0 {
		channels = 0
	}
	return Stream{
		Position: position,
		Index:    record.Index,
		Type:     codecType,
		Kind:     kindOf(codecType),
		Codec:    strings.ToLower(strings.TrimSpace(record.CodecName)),
		Channels: channels,
		Language: language.FromTags(record.Tags),
	}
}

func kindOf(codecType string) Kind {
	switch Kind(strings.ToLower(codecType)) {
	case KindVideo:
		return KindVideo
	case KindAudio:
		return KindAudio
	case KindSubtitle:
		return KindSubtitle
	default:
		return KindOther
	}
}

// Types returns the raw codec_type of every stream in probe order.
func (s Set) Types() []string {
	types := make([]string, len(s.All))
	for i, stream := range s.All {
		types[i] = stream.Type
	}
	return types
}

// FirstPosition returns the position of the first stream of kind, or -1.
func (s Set) FirstPosition(kind Kind) int {
	for _, stream := range s.All {
		if stream.Kind == kind {
			return stream.Position
		}
	}
	return -1
}

// LastPosition returns the position of the last stream of kind, or -1.
func (s Set) LastPosition(kind Kind) int {
	for i := len(s.All) - 1; i >= 0; i-- {
		if s.All[i].Kind == kind {
			return s.All[i].Position
		}
	}
	return -1
}

// AudioLanguages returns the set of languages carried by audio streams.
func (s Set) AudioLanguages() map[string]struct{} {
	langs := make(map[string]struct{}, len(s.Audio))
	for _, stream := range s.Audio {
		langs[stream.Language] = struct{}{}
	}
	return langs
}
