package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"streamgate/internal/host"
)

func newCopyCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDir    string
		libraryRoot  string
		originalFile string
		keepRelative bool
		makeWorking  bool
		verify       bool
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "copy <file>",
		Short: "Copy a file into an output directory",
		Long: "Copy a file into an output directory, optionally keeping its path relative\n" +
			"to a library root. Unset flags fall back to the [relocate] config section.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			if verify {
				cfg.Relocate.Verify = true
			}

			req := host.CopyRequest{
				InputFile:       args[0],
				OriginalFile:    originalFile,
				LibraryRoot:     libraryRoot,
				OutputDirectory: outputDir,
			}
			flags := cmd.Flags()
			if flags.Changed("keep-relative") {
				req.KeepRelativePath = &keepRelative
			}
			if flags.Changed("make-working") {
				req.MakeWorkingFile = &makeWorking
			}

			resp, err := host.New(cfg, logger).Copy(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printCopyResponse(cmd, resp, jsonOutput)
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Destination directory (default relocate.output_dir)")
	cmd.Flags().StringVar(&libraryRoot, "library-root", "", "Library root used for relative paths (default relocate.library_root)")
	cmd.Flags().StringVar(&originalFile, "original", "", "Original library file the relative path is computed from")
	cmd.Flags().BoolVar(&keepRelative, "keep-relative", false, "Keep the file's path relative to the library root")
	cmd.Flags().BoolVar(&makeWorking, "make-working", false, "Report the copy as the new working file")
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify size and checksum after copying")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the host response JSON")
	return cmd
}

func newCopyWorkDirCommand(ctx *commandContext) *cobra.Command {
	var (
		workDir    string
		verify     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "copy-workdir <file>",
		Short: "Copy a file into the working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			if verify {
				cfg.Relocate.Verify = true
			}
			resp, err := host.New(cfg, logger).CopyToWorkDir(cmd.Context(), host.CopyRequest{
				InputFile: args[0],
				WorkDir:   workDir,
			})
			if err != nil {
				return err
			}
			return printCopyResponse(cmd, resp, jsonOutput)
		},
	}
	cmd.Flags().StringVarP(&workDir, "work-dir", "w", "", "Working directory (default paths.work_dir)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify size and checksum after copying")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the host response JSON")
	return cmd
}

func printCopyResponse(cmd *cobra.Command, resp host.CopyResponse, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(cmd, resp)
	}
	out := cmd.OutOrStdout()
	if resp.Skipped {
		fmt.Fprintf(out, "Skipped: %s is already in place\n", resp.OutputFile)
		return nil
	}
	fmt.Fprintf(out, "Working file: %s\n", resp.OutputFile)
	return nil
}
