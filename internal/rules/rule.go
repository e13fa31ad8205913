package rules

import (
	"fmt"

	"streamgate/internal/media/ffprobe"
	"streamgate/internal/media/streams"
)

// Kind selects a rule family.
type Kind string

const (
	KindCompliance Kind = "compliance"
	KindOrder      Kind = "order"
	KindCodecs     Kind = "codecs"
)

// Kinds lists every rule family in a stable order.
func Kinds() []Kind {
	return []Kind{KindCompliance, KindOrder, KindCodecs}
}

// ParseKind resolves a rule family name.
func ParseKind(value string) (Kind, error) {
	for _, kind := range Kinds() {
		if string(kind) == value {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown rule %q (want compliance, order, or codecs)", value)
}

// Rule is a rule family plus its configuration. Only the config matching
// Kind is consulted.
type Rule struct {
	Kind       Kind
	Compliance ComplianceConfig
	Order      OrderConfig
	Codecs     CodecConfig
}

// Input is everything a rule sees for one file.
type Input struct {
	// File is the host's reference to the file, used only in log text.
	File string
	// Probe is nil when the host supplied no probe data at all.
	Probe *ffprobe.Result
}

// Evaluate applies rule to in.
func Evaluate(rule Rule, in Input) (Decision, error) {
	switch rule.Kind {
	case KindCompliance:
		return EvaluateCompliance(rule.Compliance, in), nil
	case KindOrder:
		return EvaluateOrder(rule.Order, in), nil
	case KindCodecs:
		return EvaluateCodecs(rule.Codecs, in), nil
	default:
		return Decision{}, fmt.Errorf("evaluate: unknown rule %q", rule.Kind)
	}
}

func classify(probe *ffprobe.Result) streams.Set {
	if probe == nil {
		return streams.Classify(nil)
	}
	return streams.Classify(probe.Streams)
}
