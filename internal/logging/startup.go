package logging

import (
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// StartupLogger collects the identity and non-sensitive configuration of
// one invocation and emits it as a single structured event. The bearer
// token is never registered here.
type StartupLogger struct {
	name       string
	runID      string
	commitHash string
	buildTime  string

	features map[string]bool
	config   map[string]string
}

// NewStartupLogger creates a StartupLogger with a fresh run id.
func NewStartupLogger(name string) *StartupLogger {
	return &StartupLogger{
		name:     name,
		runID:    uuid.NewString(),
		features: make(map[string]bool),
		config:   make(map[string]string),
	}
}

// RunID returns the id attached to every log line of this invocation.
func (s *StartupLogger) RunID() string {
	return s.runID
}

// CommitHash sets the git commit hash baked into the binary at build time.
func (s *StartupLogger) CommitHash(hash string) *StartupLogger {
	s.commitHash = hash
	return s
}

// BuildTime sets the UTC build timestamp baked into the binary at build time.
func (s *StartupLogger) BuildTime(t string) *StartupLogger {
	s.buildTime = t
	return s
}

// Feature registers a boolean switch (e.g. "dryRun").
func (s *StartupLogger) Feature(name string, enabled bool) *StartupLogger {
	s.features[name] = enabled
	return s
}

// Config registers a non-sensitive configuration key-value pair.
func (s *StartupLogger) Config(key, value string) *StartupLogger {
	s.config[key] = value
	return s
}

// Logger returns a child of the global logger tagged with the run id.
func (s *StartupLogger) Logger() zerolog.Logger {
	return log.With().Str("runId", s.runID).Logger()
}

// Log emits the startup event through logger.
func (s *StartupLogger) Log(logger zerolog.Logger) {
	build := zerolog.Dict().
		Str("name", s.name).
		Str("goVersion", runtime.Version()).
		Str("arch", runtime.GOARCH)
	if s.commitHash != "" {
		build = build.Str("commitHash", s.commitHash)
	}
	if s.buildTime != "" {
		build = build.Str("buildTime", s.buildTime)
	}

	evt := logger.Info().Dict("build", build)

	if len(s.features) > 0 {
		d := zerolog.Dict()
		for k, v := range s.features {
			d = d.Bool(k, v)
		}
		evt = evt.Dict("features", d)
	}
	if len(s.config) > 0 {
		evt = evt.Dict("config", dictFromMap(s.config))
	}

	evt.Msg("va-creator starting")
}

// dictFromMap converts a map[string]string into a zerolog.Event (Dict).
func dictFromMap(m map[string]string) *zerolog.Event {
	d := zerolog.Dict()
	for k, v := range m {
		d = d.Str(k, v)
	}
	return d
}
