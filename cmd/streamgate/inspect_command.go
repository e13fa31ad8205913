package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"streamgate/internal/language"
	"streamgate/internal/media/ffprobe"
	"streamgate/internal/media/streams"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var probeJSON string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the classified streams of a media file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			probe, err := loadProbe(cmd.Context(), cfg, file, probeJSON)
			if err != nil {
				return err
			}
			set := streams.Classify(probe.Streams)
			if jsonOutput {
				return writeJSON(cmd, set.All)
			}
			renderInspect(cmd, file, probe, set)
			return nil
		},
	}
	cmd.Flags().StringVar(&probeJSON, "probe-json", "", "Read ffprobe JSON from this file instead of running ffprobe")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print classified streams as JSON")
	return cmd
}

func renderInspect(cmd *cobra.Command, file string, probe ffprobe.Result, set streams.Set) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	title := "Streams"
	if file != "" {
		title = file
	}
	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}
	if duration := probe.DurationSeconds(); duration > 0 {
		fmt.Fprintf(out, "Duration: %.1fs\n", duration)
	}
	fmt.Fprintf(out, "Streams: %d video, %d audio, %d subtitle, %d total\n",
		len(set.Video), len(set.Audio), len(set.Subtitle), len(set.All))

	headers := []string{"Pos", "Index", "Type", "Codec", "Channels", "Language"}
	aligns := []columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignRight, alignLeft}
	rows := make([][]string, 0, len(set.All))
	for _, stream := range set.All {
		channels := ""
		if stream.Kind == streams.KindAudio {
			channels = strconv.Itoa(stream.Channels)
		}
		rows = append(rows, []string{
			strconv.Itoa(stream.Position),
			strconv.Itoa(stream.Index),
			titleCase(stream.Type),
			stream.Codec,
			channels,
			fmt.Sprintf("%s (%s)", language.DisplayName(stream.Language), stream.Language),
		})
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "No streams found")
		return
	}
	fmt.Fprintln(out, renderTable("", headers, rows, aligns))
	if langs := audioLanguageOrder(set); len(langs) > 0 {
		fmt.Fprintf(out, "Audio languages: %s\n", strings.Join(langs, ", "))
	}
}

func audioLanguageOrder(set streams.Set) []string {
	seen := set.AudioLanguages()
	ordered := make([]string, 0, len(seen))
	for _, stream := range set.Audio {
		if _, ok := seen[stream.Language]; !ok {
			continue
		}
		delete(seen, stream.Language)
		ordered = append(ordered, stream.Language)
	}
	return ordered
}
