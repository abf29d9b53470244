// Package state keeps per run program state: configuration, logger and debug
// report, reachable from any subcommand through context.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stylekit/config"
)

type envKey struct{}

// LocalEnv is created before command line is parsed, Cfg, Rpt and Log are
// filled in when application context is initialized.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// render subcommand
	Overwrite bool

	start         time.Time
	restoreStdLog func()
}

// ContextWithEnv attaches fresh environment to ctx.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// EnvFromContext panics when ctx does not carry environment: this is program
// setup error, not something to recover from.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("program environment is missing from context")
	}
	return env
}

// Logger returns named logger for a program component. Until logging is
// prepared messages are discarded.
func (e *LocalEnv) Logger(name string) *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log.Named(name)
}

// Uptime is time passed since environment was created.
func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog sends output of standard "log" package used by libraries to
// program log.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log.Named("std"))
}

// RestoreStdLog flushes program log and undoes RedirectStdLog.
func (e *LocalEnv) RestoreStdLog() {
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
	if e.Log != nil {
		_ = e.Log.Sync()
	}
}
