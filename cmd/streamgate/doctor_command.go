package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"streamgate/internal/preflight"
)

var errDoctorFailed = errors.New("one or more required checks failed")

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools and configured directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			failed := false

			for _, line := range renderSectionHeader("Dependencies", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, status := range preflight.CheckSystemDeps(cmd.Context(), cfg) {
				kind := statusOK
				message := "available"
				if status.Version != "" {
					message = status.Version
				}
				if !status.Available {
					message = status.Detail
					if status.Optional {
						kind = statusWarn
					} else {
						kind = statusError
						failed = true
					}
				}
				label := fmt.Sprintf("%s (%s)", status.Name, status.Command)
				fmt.Fprintln(out, renderStatusLine(label, kind, message, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Directories", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, result := range preflight.RunAll(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed = true
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			if failed {
				return errDoctorFailed
			}
			return nil
		},
	}
}
