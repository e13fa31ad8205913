package rules

import (
	"fmt"
	"log/slog"
	"strings"
)

// CodecConfig configures the unwanted video codec check.
type CodecConfig struct {
	Unwanted []string
}

// EvaluateCodecs rejects files whose video streams use a denylisted codec.
func EvaluateCodecs(cfg CodecConfig, in Input) Decision {
	rec := &recorder{}
	decide := func(proceed bool, reason string) Decision {
		return Decision{Rule: KindCodecs, Proceed: proceed, Reason: reason, Entries: rec.entries}
	}

	set := classify(in.Probe)
	if len(set.Video) == 0 {
		rec.add("No video streams found.")
		return decide(true, "no_video_streams")
	}

	found := make([]string, len(set.Video))
	for i, stream := range set.Video {
		found[i] = stream.Codec
	}
	rec.add(fmt.Sprintf("Video stream codecs found: %s", strings.Join(found, ", ")), slog.String("codecs", strings.Join(found, ",")))

	if len(cfg.Unwanted) == 0 {
		rec.add("No unwanted codecs configured. Processing file.")
		return decide(true, "no_unwanted_configured")
	}

	var matched []string
	for _, codec := range found {
		if contains(cfg.Unwanted, codec) {
			matched = append(matched, codec)
		}
	}
	if len(matched) > 0 {
		rec.add(
			fmt.Sprintf("Unwanted codecs present: %s. Skipping file.", strings.Join(matched, ", ")),
			slog.String("matched", strings.Join(matched, ",")),
		)
		return decide(false, "unwanted_codec_present")
	}
	rec.add("No unwanted codecs found. Processing file.")
	return decide(true, "no_unwanted_codecs")
}
