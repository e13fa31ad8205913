package config

const (
	defaultConfigPath         = "~/.config/streamgate/config.toml"
	projectConfigFile         = "streamgate.toml"
	defaultWorkDir            = "~/.local/share/streamgate/work"
	defaultLogDir             = "~/.local/share/streamgate/logs"
	defaultComplianceLangs    = ""
	defaultTargetCodec        = "aac"
	defaultTargetChannels     = 2
	defaultPreferredLanguages = "eng,jpn,chi"
	defaultBufferMiB          = 64
	defaultFFprobeBinary      = "ffprobe"
	defaultProbeTimeout       = 60
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"

	envLogLevel = "STREAMGATE_LOG_LEVEL"
	envWorkDir  = "STREAMGATE_WORK_DIR"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir: defaultWorkDir,
			LogDir:  defaultLogDir,
		},
		Compliance: Compliance{
			Languages:      defaultComplianceLangs,
			TargetCodec:    defaultTargetCodec,
			TargetChannels: defaultTargetChannels,
		},
		Order: Order{
			PreferredLanguages: defaultPreferredLanguages,
		},
		Relocate: Relocate{
			BufferMiB: defaultBufferMiB,
		},
		Probe: Probe{
			FFprobeBinary:  defaultFFprobeBinary,
			TimeoutSeconds: defaultProbeTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
