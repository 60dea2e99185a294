package core

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/josephlewis42/blsh/core/config"
	"github.com/josephlewis42/blsh/core/logger"
)

// testShell is a shell reading from input with captured output.
type testShell struct {
	*Shell
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestShell(t *testing.T, input string) *testShell {
	t.Helper()

	cfg := config.Default()
	cfg.Color = config.ColorNever

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testShell{
		Shell:  NewShell(cfg, strings.NewReader(input), stdout, stderr, logger.NewNopRecorder()),
		stdout: stdout,
		stderr: stderr,
	}
}

// keepWd restores the working directory after the test.
func keepWd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
	return wd
}
