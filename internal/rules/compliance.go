package rules

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const (
	defaultTargetCodec    = "aac"
	defaultTargetChannels = 2
)

// ComplianceConfig configures the language-conditioned codec check.
type ComplianceConfig struct {
	Languages      []string
	TargetCodec    string
	TargetChannels int
}

func (c ComplianceConfig) target() (string, int) {
	codec := strings.ToLower(strings.TrimSpace(c.TargetCodec))
	if codec == "" {
		codec = defaultTargetCodec
	}
	channels := c.TargetChannels
	if channels <= 0 {
		channels = defaultTargetChannels
	}
	return codec, channels
}

// EvaluateCompliance passes unless some configured language is present in
// the file without a single stream matching the target codec and channel
// count. Languages absent from the file never block.
func EvaluateCompliance(cfg ComplianceConfig, in Input) Decision {
	codec, channels := cfg.target()
	label := targetLabel(codec, channels)
	rec := &recorder{}
	decide := func(proceed bool, reason string) Decision {
		return Decision{Rule: KindCompliance, Proceed: proceed, Reason: reason, Entries: rec.entries}
	}

	if in.Probe == nil || in.Probe.Streams == nil {
		rec.add("No ffprobe stream data found. Treating file as passing.")
		return decide(true, "no_probe_data")
	}

	set := classify(in.Probe)
	if len(set.Audio) == 0 {
		rec.add("No audio streams found. Treating file as passing.")
		return decide(true, "no_audio_streams")
	}

	if len(cfg.Languages) == 0 {
		rec.add("No languages specified. Treating file as passing.")
		return decide(true, "no_languages_configured")
	}

	checked := make(map[string]int, len(cfg.Languages))
	compliant := make(map[string]int, len(cfg.Languages))
	for _, stream := range set.Audio {
		if !contains(cfg.Languages, stream.Language) {
			continue
		}
		ok := stream.Codec == codec && stream.Channels == channels
		checked[stream.Language]++
		if ok {
			compliant[stream.Language]++
		}
		rec.add(
			fmt.Sprintf("Stream %d: lang=%s, codec=%s, channels=%d, compliant=%t", stream.Index, stream.Language, stream.Codec, stream.Channels, ok),
			slog.Int("stream_index", stream.Index),
			slog.String("language", stream.Language),
			slog.String("codec", stream.Codec),
			slog.Int("channels", stream.Channels),
			slog.Bool("compliant", ok),
		)
	}

	if len(checked) == 0 {
		rec.add("No matching languages present in the file. Treating file as passing.")
		return decide(true, "no_target_languages_present")
	}

	var failing []string
	for _, lang := range cfg.Languages {
		total, present := checked[lang]
		switch {
		case !present:
			rec.add(fmt.Sprintf("Language %s: not present in file, skipping.", lang), slog.String("language", lang))
		case compliant[lang] > 0:
			rec.add(
				fmt.Sprintf("Language %s: %d of %d streams are %s. Language passes.", lang, compliant[lang], total, label),
				slog.String("language", lang), slog.Int("compliant", compliant[lang]), slog.Int("checked", total),
			)
		default:
			failing = append(failing, lang)
			rec.add(
				fmt.Sprintf("Language %s: none of %d streams are %s. Language fails.", lang, total, label),
				slog.String("language", lang), slog.Int("compliant", 0), slog.Int("checked", total),
			)
		}
	}

	if len(failing) > 0 {
		rec.add(
			fmt.Sprintf("At least one selected language has no %s stream (%s). Breaking out of plugin stack.", label, strings.Join(failing, ", ")),
			slog.String("failing_languages", strings.Join(failing, ",")),
		)
		return decide(false, "language_without_compliant_stream")
	}
	rec.add(fmt.Sprintf("Every selected language present in the file has a %s stream. Passing file to next plugin.", label))
	return decide(true, "all_languages_compliant")
}

// targetLabel renders a codec and channel count the way the host UI does,
// e.g. "AAC 2.0" or "EAC3 5.1".
func targetLabel(codec string, channels int) string {
	var layout string
	switch channels {
	case 1:
		layout = "1.0"
	case 2:
		layout = "2.0"
	case 3:
		layout = "2.1"
	case 6:
		layout = "5.1"
	case 7:
		layout = "6.1"
	case 8:
		layout = "7.1"
	default:
		layout = strconv.Itoa(channels) + "ch"
	}
	return strings.ToUpper(codec) + " " + layout
}
