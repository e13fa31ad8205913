package rules

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"streamgate/internal/media/streams"
)

// OrderConfig configures the stream order check.
type OrderConfig struct {
	// PreferredLanguages lists audio languages in priority order.
	PreferredLanguages []string
}

// EvaluateOrder checks that streams form video, audio, subtitle blocks in
// that order and that audio follows the preferred language order. It routes
// to RoutePass or RouteFail and fails closed on missing probe data.
func EvaluateOrder(cfg OrderConfig, in Input) Decision {
	rec := &recorder{}
	fail := func(reason string) Decision {
		return Decision{Rule: KindOrder, Route: RouteFail, Reason: reason, Entries: rec.entries, inline: true}
	}

	if in.Probe == nil {
		rec.add(fmt.Sprintf("No ffprobeData object found for file: %s", in.File), slog.String("file", in.File))
		return fail("no_probe_data")
	}
	if !in.Probe.HasStreams() {
		rec.add(fmt.Sprintf("ffprobeData.streams is missing or empty for file: %s", in.File), slog.String("file", in.File))
		return fail("no_streams")
	}

	set := classify(in.Probe)
	summary := summarize(set.All)

	if !sectionsOrdered(set) {
		order := strings.Join(set.Types(), ",")
		rec.add(
			fmt.Sprintf("FAIL: Stream group order invalid. Found order: %s | %s", order, summary),
			slog.String("found_order", order),
		)
		return fail("section_order_invalid")
	}

	expected := ExpectedAudioOrder(set.Audio, cfg.PreferredLanguages)
	actual := projections(set.Audio)
	expectedStrings := projections(expected)
	if !slices.Equal(actual, expectedStrings) {
		rec.add(
			fmt.Sprintf("FAIL: Audio stream order mismatch. Actual: [%s] Expected: [%s] | %s", strings.Join(actual, " "), strings.Join(expectedStrings, " "), summary),
			slog.String("actual", strings.Join(actual, " ")),
			slog.String("expected", strings.Join(expectedStrings, " ")),
		)
		decision := fail("audio_order_mismatch")
		decision.Actual = actual
		decision.Expected = expectedStrings
		return decision
	}

	rec.add(fmt.Sprintf("PASS: Stream order valid. %s", summary))
	return Decision{
		Rule:     KindOrder,
		Proceed:  true,
		Route:    RoutePass,
		Reason:   "order_valid",
		Entries:  rec.entries,
		Actual:   actual,
		Expected: expectedStrings,
		inline:   true,
	}
}

// sectionsOrdered reports whether all video streams precede all audio
// streams, which precede all subtitle streams.
func sectionsOrdered(set streams.Set) bool {
	firstAudio := set.FirstPosition(streams.KindAudio)
	firstSubtitle := set.FirstPosition(streams.KindSubtitle)
	lastVideo := set.LastPosition(streams.KindVideo)
	lastAudio := set.LastPosition(streams.KindAudio)

	if firstAudio != -1 && firstAudio < lastVideo {
		return false
	}
	if firstSubtitle != -1 && firstSubtitle < lastAudio {
		return false
	}
	if firstSubtitle != -1 && firstSubtitle < lastVideo {
		return false
	}
	return true
}

// ExpectedAudioOrder returns audio streams grouped by preferred language in
// priority order, each group sorted by descending channel count with ties
// kept in original order, followed by every other stream in original order.
// A language listed twice is only grouped once.
func ExpectedAudioOrder(audio []streams.Stream, preferred []string) []streams.Stream {
	expected := make([]streams.Stream, 0, len(audio))
	seen := make(map[string]struct{}, len(preferred))
	for _, lang := range preferred {
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}

		var group []streams.Stream
		for _, stream := range audio {
			if stream.Language == lang {
				group = append(group, stream)
			}
		}
		slices.SortStableFunc(group, func(a, b streams.Stream) int {
			return b.Channels - a.Channels
		})
		expected = append(expected, group...)
	}
	for _, stream := range audio {
		if _, ok := seen[stream.Language]; !ok {
			expected = append(expected, stream)
		}
	}
	return expected
}

func projections(list []streams.Stream) []string {
	out := make([]string, len(list))
	for i, stream := range list {
		out[i] = stream.LanguageChannels()
	}
	return out
}

func summarize(list []streams.Stream) string {
	parts := make([]string, len(list))
	for i, stream := range list {
		parts[i] = stream.Summary()
	}
	return strings.Join(parts, " ")
}
