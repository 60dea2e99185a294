package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
	"time"

	"github.com/josephlewis42/blsh/core/logger"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

const (
	// DefaultPath is searched when PATH is empty.
	DefaultPath = "/bin:/usr/bin"

	systemShell = "/bin/sh"
)

// Launcher runs external programs in the foreground.
type Launcher struct {
	// Fs is searched for the program.
	Fs afero.Fs
	// Getenv supplies PATH.
	Getenv func(string) string
	// Files are the child's stdin, stdout and stderr.
	Files []*os.File
	// Stderr receives diagnostics.
	Stderr io.Writer
	Events *logger.Recorder
}

// Launch starts args[0] with args as its argument vector and blocks until it
// exits or is killed. The child's status is logged but never changes the
// result, which is always Continue.
func (l *Launcher) Launch(args []string) Status {
	path, err := LookPath(l.Fs, l.searchPath(), args[0])
	if err != nil {
		fmt.Fprintf(l.Stderr, "blsh: %s: %v\n", args[0], err)
		l.Events.NotFound(args, err)
		return Continue
	}

	attr := &os.ProcAttr{
		Env:   os.Environ(),
		Files: l.Files,
	}
	proc, err := os.StartProcess(path, args, attr)
	if errors.Is(err, syscall.ENOEXEC) {
		// Executable text without a #! line is a script for the system shell.
		proc, err = os.StartProcess(systemShell, append([]string{"sh", path}, args[1:]...), attr)
	}
	if err != nil {
		fmt.Fprintf(l.Stderr, "blsh: %v\n", err)
		if isLoadError(err) {
			l.Events.NotFound(args, err)
		} else {
			l.Events.SpawnFailed(args, err)
		}
		return Continue
	}
	defer proc.Release()

	l.Events.Launch(args, path, proc.Pid)
	start := time.Now()

	status, err := waitTerminated(proc.Pid)
	if err != nil {
		fmt.Fprintf(l.Stderr, "blsh: %s: %v\n", args[0], err)
		return Continue
	}

	var signal string
	if status.Signaled() {
		signal = status.Signal().String()
	}
	l.Events.ChildExit(args[0], proc.Pid, status.ExitStatus(), signal, time.Since(start))

	return Continue
}

// searchPath is PATH, or the system default when PATH is unset or empty.
func (l *Launcher) searchPath() string {
	if path := l.Getenv("PATH"); path != "" {
		return path
	}
	return DefaultPath
}

// isLoadError reports whether the program exists but its image couldn't be
// loaded, as opposed to the process not being created at all.
func isLoadError(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.ENOEXEC)
}

// waitTerminated blocks until pid exits normally or is killed by a signal.
// Stopped children keep the wait going.
func waitTerminated(pid int) (unix.WaitStatus, error) {
	var status unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &status, unix.WUNTRACED, nil)
		switch {
		case err == unix.EINTR:
			continue
		case err != nil:
			return status, fmt.Errorf("wait: %w", err)
		}

		if status.Exited() || status.Signaled() {
			return status, nil
		}
	}
}
