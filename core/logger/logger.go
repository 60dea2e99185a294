package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Event names written to the "event" field.
const (
	EventDispatch    = "dispatch"
	EventBuiltin     = "builtin"
	EventLaunch      = "launch"
	EventChildExit   = "child_exit"
	EventNotFound    = "not_found"
	EventSpawnFailed = "spawn_failed"
)

// Recorder writes shell events to a structured log.
type Recorder struct {
	log zerolog.Logger
}

// NewJSONLinesRecorder creates a Recorder that writes one JSON object per
// event to w, dropping events below level.
func NewJSONLinesRecorder(w io.Writer, level zerolog.Level) *Recorder {
	return &Recorder{
		log: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// NewNopRecorder creates a Recorder that discards everything.
func NewNopRecorder() *Recorder {
	return &Recorder{log: zerolog.Nop()}
}

// ParseLevel converts a level name into a zerolog level. The empty string is
// treated as info.
func ParseLevel(raw string) (zerolog.Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "":
		return zerolog.InfoLevel, nil
	case "off", "none":
		return zerolog.Disabled, nil
	}

	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", raw)
	}
	return lvl, nil
}

// Dispatch records that a command line was routed, kind is either
// EventBuiltin or EventLaunch.
func (r *Recorder) Dispatch(args []string, kind string) {
	r.log.Debug().
		Str("event", EventDispatch).
		Str("command", args[0]).
		Str("kind", kind).
		Msg("dispatch")
}

// Builtin records a builtin invocation and the error it reported, if any.
func (r *Recorder) Builtin(args []string, err error) {
	ev := r.log.Info()
	if err != nil {
		ev = r.log.Warn().Err(err)
	}
	ev.Str("event", EventBuiltin).
		Str("command", args[0]).
		Strs("args", args[1:]).
		Msg("builtin")
}

// Launch records a child process that was started.
func (r *Recorder) Launch(args []string, path string, pid int) {
	r.log.Info().
		Str("event", EventLaunch).
		Str("command", args[0]).
		Strs("args", args[1:]).
		Str("path", path).
		Int("pid", pid).
		Msg("launch")
}

// ChildExit records how a child terminated. signal is empty for a normal
// exit.
func (r *Recorder) ChildExit(command string, pid, exitCode int, signal string, elapsed time.Duration) {
	ev := r.log.Info().
		Str("event", EventChildExit).
		Str("command", command).
		Int("pid", pid).
		Int("exit_code", exitCode).
		Dur("elapsed", elapsed)
	if signal != "" {
		ev = ev.Str("signal", signal)
	}
	ev.Msg("child exited")
}

// NotFound records a command that couldn't be resolved on the search path.
func (r *Recorder) NotFound(args []string, err error) {
	r.log.Warn().
		Str("event", EventNotFound).
		Str("command", args[0]).
		Int("exit_code", ExitCodeNotFound).
		Err(err).
		Msg("command not found")
}

// SpawnFailed records a command whose process couldn't be created.
func (r *Recorder) SpawnFailed(args []string, err error) {
	r.log.Error().
		Str("event", EventSpawnFailed).
		Str("command", args[0]).
		Err(err).
		Msg("spawn failed")
}

// ExitCodeNotFound is the status recorded for commands whose program image
// couldn't be found or loaded.
const ExitCodeNotFound = 127
