package core

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/josephlewis42/blsh/core/config"
	"github.com/josephlewis42/blsh/core/logger"
	"github.com/josephlewis42/blsh/core/shell"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

// Shell is an interactive command interpreter. It reads one line at a time,
// runs builtins in process and everything else as a child process.
type Shell struct {
	Prompt string
	Banner string
	Stdout io.Writer
	Stderr io.Writer

	Launcher *Launcher
	Events   *logger.Recorder

	input       *shell.LineReader
	bannerColor *color.Color
}

// NewShell creates a shell reading commands from stdin. Child processes
// inherit stdin, stdout and stderr when they're files and the process's own
// standard streams otherwise.
func NewShell(cfg *config.Configuration, stdin io.Reader, stdout, stderr io.Writer, events *logger.Recorder) *Shell {
	if events == nil {
		events = logger.NewNopRecorder()
	}

	return &Shell{
		Prompt: cfg.Prompt,
		Banner: cfg.Banner,
		Stdout: stdout,
		Stderr: stderr,
		Launcher: &Launcher{
			Fs:     afero.NewOsFs(),
			Getenv: os.Getenv,
			Files: []*os.File{
				fileOr(stdin, os.Stdin),
				fileOr(stdout, os.Stdout),
				fileOr(stderr, os.Stderr),
			},
			Stderr: stderr,
			Events: events,
		},
		Events:      events,
		input:       shell.NewLineReader(stdin),
		bannerColor: newBannerColor(cfg.Color, stdout),
	}
}

func fileOr(v interface{}, fallback *os.File) *os.File {
	if f, ok := v.(*os.File); ok {
		return f
	}
	return fallback
}

func newBannerColor(mode string, w io.Writer) *color.Color {
	c := color.New(color.Bold)
	switch mode {
	case config.ColorAlways:
		c.EnableColor()
	case config.ColorNever:
		c.DisableColor()
	default:
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return c
}

// Run prompts for and executes commands until a builtin asks to terminate or
// the input ends. It returns the process exit code.
func (s *Shell) Run() int {
	for {
		fmt.Fprint(s.Stdout, s.Prompt)

		line, err := s.input.ReadLine()
		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.
		case err != nil:
			fmt.Fprintf(s.Stderr, "blsh: read: %v\n", err)
			return 1
		}

		if s.Execute(shell.Tokenize(line)) == Terminate {
			return 0
		}
	}
}

// Execute runs a tokenized command line. Empty lines are ignored, builtins
// are matched by exact name and anything else is launched as a program.
// Failures are reported on Stderr, only Terminate ends the shell.
func (s *Shell) Execute(args []string) Status {
	if len(args) == 0 {
		return Continue
	}

	if builtin, ok := LookupBuiltin(args[0]); ok {
		s.Events.Dispatch(args, logger.EventBuiltin)

		status, err := builtin.Main(s, args)
		if err != nil {
			fmt.Fprintf(s.Stderr, "blsh: %v\n", err)
		}
		s.Events.Builtin(args, err)
		return status
	}

	s.Events.Dispatch(args, logger.EventLaunch)
	return s.Launcher.Launch(args)
}
