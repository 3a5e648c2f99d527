package domain

// Logger is the small structured-logging seam the calculation packages log
// through. It mirrors the Debugf/Infof/Warnf/Errorf shape used by the
// teacher codebase's CLI logger, so any collaborator (CLI, TUI, tests) can
// supply its own implementation without the core depending on a concrete
// logging library.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the default used whenever a caller
// does not supply a Logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
