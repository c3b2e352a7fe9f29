package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the default slog handler is built
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, text
	ServiceName string
	Version     string
	Environment string
	// SaveBackend tags every record with the store the crop tables live in.
	// Left out of the records when empty.
	SaveBackend string
	AddSource   bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ForEnvironment returns the defaults for env. Unknown names fall back to dev.
func ForEnvironment(env string) Config {
	c := Config{
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: env,
	}

	switch env {
	case EnvironmentProduction:
		c.Level, c.Format, c.Version = LogLevelInfo, LogFormatJSON, ProductionVersion
	case EnvironmentStaging:
		c.Level, c.Format = LogLevelDebug, LogFormatJSON
	case EnvironmentTest:
		// A simulated season logs every day pass at info
		c.Level, c.Format = LogLevelWarn, LogFormatText
	default:
		c.Level, c.Format, c.AddSource = LogLevelDebug, LogFormatText, true
		c.Environment = EnvironmentDev
	}
	return c
}

// WithSaveBackend returns a copy of c that tags records with backend
func (c Config) WithSaveBackend(backend string) Config {
	c.SaveBackend = backend
	return c
}

// LogLevel parses Level case-insensitively. "warning" is accepted for warn,
// anything unparseable is info.
func (c Config) LogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	if name == LogLevelWarning {
		name = LogLevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
	if c.SaveBackend != "" {
		attrs = append(attrs, slog.String(AttrKeySaveBackend, c.SaveBackend))
	}
	return attrs
}
