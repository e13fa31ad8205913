package main

import (
	"context"
	"os"
	"strings"
	"time"

	"streamgate/internal/config"
	"streamgate/internal/deps"
	"streamgate/internal/media/ffprobe"
	"streamgate/internal/services"
)

// loadProbe reads ffprobe JSON from probePath when given, otherwise runs
// ffprobe against file.
func loadProbe(ctx context.Context, cfg *config.Config, file, probePath string) (ffprobe.Result, error) {
	if probePath = strings.TrimSpace(probePath); probePath != "" {
		data, err := os.ReadFile(probePath)
		if err != nil {
			if os.IsNotExist(err) {
				return ffprobe.Result{}, services.Wrap(services.ErrNotFound, "cli", "read probe", probePath, err)
			}
			return ffprobe.Result{}, services.Wrap(services.ErrIO, "cli", "read probe", probePath, err)
		}
		result, err := ffprobe.Parse(data)
		if err != nil {
			return ffprobe.Result{}, services.Wrap(services.ErrValidation, "cli", "parse probe", probePath, err)
		}
		return result, nil
	}

	if strings.TrimSpace(file) == "" {
		return ffprobe.Result{}, services.Wrap(services.ErrValidation, "cli", "probe", "a media file or --probe-json is required", nil)
	}
	if _, err := os.Stat(file); err != nil {
		return ffprobe.Result{}, services.Wrap(services.ErrNotFound, "cli", "probe", file, err)
	}

	if cfg.Probe.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Probe.TimeoutSeconds)*time.Second)
		defer cancel()
	}
	result, err := ffprobe.Inspect(ctx, deps.ResolveFFprobePath(cfg.FFprobeBinary()), file)
	if err != nil {
		return ffprobe.Result{}, services.Wrap(services.ErrExternalTool, "cli", "ffprobe", file, err)
	}
	return result, nil
}
