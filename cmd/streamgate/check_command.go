package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"streamgate/internal/host"
	"streamgate/internal/logging"
	"streamgate/internal/rules"
	"streamgate/internal/services"
)

// errCheckFailed signals a completed evaluation that did not pass.
var errCheckFailed = errors.New("file did not pass")

type checkOptions struct {
	probeJSON      string
	jsonOutput     bool
	languages      string
	targetCodec    string
	targetChannels int
	preferred      string
	unwanted       string
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a rule against a media file",
		Long: "Evaluate one rule family against a media file and print the decision log.\n" +
			"Exits 0 when the file passes and 1 when it does not.",
	}
	cmd.PersistentFlags().StringVar(&opts.probeJSON, "probe-json", "", "Read ffprobe JSON from this file instead of running ffprobe")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print the host response JSON")

	compliance := newCheckKindCommand(ctx, opts, rules.KindCompliance, "Require a target codec/channel stream per configured language")
	compliance.Flags().StringVar(&opts.languages, "languages", "", "Comma-separated languages to check (default from config)")
	compliance.Flags().StringVar(&opts.targetCodec, "target-codec", "", "Target codec (default from config)")
	compliance.Flags().IntVar(&opts.targetChannels, "target-channels", 0, "Target channel count (default from config)")

	order := newCheckKindCommand(ctx, opts, rules.KindOrder, "Validate stream section order and audio language order")
	order.Flags().StringVar(&opts.preferred, "preferred", "", "Comma-separated preferred audio languages (default from config)")

	codecs := newCheckKindCommand(ctx, opts, rules.KindCodecs, "Reject files with unwanted video codecs")
	codecs.Flags().StringVar(&opts.unwanted, "unwanted", "", "Comma-separated unwanted video codecs (default from config)")

	cmd.AddCommand(compliance, order, codecs)
	return cmd
}

func newCheckKindCommand(ctx *commandContext, opts *checkOptions, kind rules.Kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind) + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			var file string
			if len(args) == 1 {
				file = args[0]
			}

			probe, err := loadProbe(cmd.Context(), cfg, file, opts.probeJSON)
			if err != nil {
				return err
			}
			if file == "" {
				file = opts.probeJSON
			}

			adapter := host.New(cfg, logger)
			rule, err := adapter.BuildRule(kind, opts.inputs(cmd))
			if err != nil {
				return err
			}
			decision, err := rules.Evaluate(rule, rules.Input{File: file, Probe: &probe})
			if err != nil {
				return services.Wrap(services.ErrValidation, "cli", "check", "evaluate rule", err)
			}
			logger.Debug("check complete", logging.Args(logging.DecisionAttrs(string(kind), decision.Result(), decision.Reason)...)...)

			if opts.jsonOutput {
				result := host.Result{Decision: decision, Convention: host.DefaultConvention(kind)}
				if err := writeJSON(cmd, result.Body()); err != nil {
					return err
				}
			} else {
				printDecision(cmd, decision)
			}
			if !decision.Proceed {
				return errCheckFailed
			}
			return nil
		},
	}
}

// inputs maps flags the user actually set onto host inputs.
func (o *checkOptions) inputs(cmd *cobra.Command) host.Inputs {
	var in host.Inputs
	flags := cmd.Flags()
	if flags.Changed("languages") {
		in.LanguagesToCheck = &o.languages
	}
	if flags.Changed("target-codec") {
		in.TargetCodec = &o.targetCodec
	}
	if flags.Changed("target-channels") {
		in.TargetChannels = &o.targetChannels
	}
	if flags.Changed("preferred") {
		in.PreferredAudioLanguages = &o.preferred
	}
	if flags.Changed("unwanted") {
		in.UnwantedVideoCodecs = &o.unwanted
	}
	return in
}

func printDecision(cmd *cobra.Command, decision rules.Decision) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader(titleCase(string(decision.Rule))+" check", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, entry := range decision.Entries {
		fmt.Fprintln(out, strings.TrimRight(entry.Message, "\n"))
	}
	fmt.Fprintln(out)
	detail := decision.Reason
	if decision.Route != rules.RouteNone {
		detail = fmt.Sprintf("%s, output %d", detail, decision.Output())
	}
	fmt.Fprintln(out, renderVerdict(decision.Proceed, detail, colorize))
}
