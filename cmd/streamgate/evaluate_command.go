package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"streamgate/internal/host"
	"streamgate/internal/services"
)

func newEvaluateCommand(ctx *commandContext) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Answer one host request (JSON on stdin, JSON on stdout)",
		Long: "Read a single host request and write the response in the host's calling convention.\n" +
			"The request's \"rule\" is compliance, order, codecs, copy, or copy-workdir.\n" +
			"Logs go to stderr so stdout carries only the response.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if path := strings.TrimSpace(inputPath); path != "" && path != "-" {
				file, err := os.Open(path)
				if err != nil {
					return services.Wrap(services.ErrNotFound, "cli", "evaluate", path, err)
				}
				defer file.Close()
				in = file
			}
			return host.New(cfg, logger).Invoke(cmd.Context(), in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read the request from this file instead of stdin")
	return cmd
}
