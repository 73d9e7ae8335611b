package config

const (
	defaultConfigPath = "~/.config/fieldcut/config.toml"
	projectConfigName = "fieldcut.toml"

	defaultDelimiter = "\t"
	defaultEncoding  = "utf-8"
	defaultLogFormat = LogFormatConsole
	defaultLogLevel  = "warn"
)

// Log formats accepted by logging.format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Cut: Cut{
			Delimiter: defaultDelimiter,
			Encoding:  defaultEncoding,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
