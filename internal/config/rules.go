package config

import (
	"fmt"

	"streamgate/internal/rules"
)

// ComplianceRule builds the compliance rule from configuration.
func (c *Config) ComplianceRule() rules.Rule {
	return rules.Rule{
		Kind: rules.KindCompliance,
		Compliance: rules.ComplianceConfig{
			Languages:      rules.ParseList(c.Compliance.Languages),
			TargetCodec:    c.Compliance.TargetCodec,
			TargetChannels: c.Compliance.TargetChannels,
		},
	}
}

// OrderRule builds the stream order rule from configuration.
func (c *Config) OrderRule() rules.Rule {
	return rules.Rule{
		Kind:  rules.KindOrder,
		Order: rules.OrderConfig{PreferredLanguages: rules.ParseList(c.Order.PreferredLanguages)},
	}
}

// CodecsRule builds the unwanted video codec rule from configuration.
func (c *Config) CodecsRule() rules.Rule {
	return rules.Rule{
		Kind:   rules.KindCodecs,
		Codecs: rules.CodecConfig{Unwanted: rules.ParseList(c.Codecs.UnwantedVideo)},
	}
}

// Rule builds the rule of the given family.
func (c *Config) Rule(kind rules.Kind) (rules.Rule, error) {
	switch kind {
	case rules.KindCompliance:
		return c.ComplianceRule(), nil
	case rules.KindOrder:
		return c.OrderRule(), nil
	case rules.KindCodecs:
		return c.CodecsRule(), nil
	default:
		return rules.Rule{}, fmt.Errorf("config: unknown rule %q", kind)
	}
}
