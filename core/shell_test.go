package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_golden(t *testing.T) {
	cases := map[string]struct {
		input string
	}{
		"run-help":         {"help\n"},
		"run-blank-lines":  {"\n \t\r\n\a\n"},
		"run-exit-stops":   {"exit now\nhelp\n"},
		"run-help-twice":   {"help\nhelp\nexit\n"},
		"run-partial-line": {"help\nexit"},
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			s := newTestShell(t, tc.input)

			assert.Equal(t, 0, s.Run())
			assert.Empty(t, s.stderr.String())
			g.Assert(t, tn, s.stdout.Bytes())
		})
	}
}

func TestRun_emptyInput(t *testing.T) {
	s := newTestShell(t, "")

	assert.Equal(t, 0, s.Run())
	assert.Equal(t, "> ", s.stdout.String())
	assert.Empty(t, s.stderr.String())
}

func TestRun_cdNonexistent(t *testing.T) {
	before := keepWd(t)
	s := newTestShell(t, "cd /nonexistent-path-xyz\n")

	assert.Equal(t, 0, s.Run())
	assert.Contains(t, s.stderr.String(), "blsh: chdir /nonexistent-path-xyz")

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, wd)

	// The prompt is printed again after the failure.
	assert.Equal(t, "> > ", s.stdout.String())
}

func TestRun_cdThenExit(t *testing.T) {
	keepWd(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	s := newTestShell(t, "cd "+dir+"\nexit\n")
	assert.Equal(t, 0, s.Run())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, dir, wd)
}

func TestRun_unknownProgram(t *testing.T) {
	s := newTestShell(t, "blsh-no-such-program-xyz arg\nhelp\n")

	assert.Equal(t, 0, s.Run())
	assert.Contains(t, s.stderr.String(), "blsh-no-such-program-xyz")
	assert.Contains(t, s.stdout.String(), "BarkBuff's LittleShell")
}

func TestRun_customPrompt(t *testing.T) {
	s := newTestShell(t, "\n")
	s.Prompt = "$ "

	assert.Equal(t, 0, s.Run())
	assert.Equal(t, "$ $ ", s.stdout.String())
}

func TestExecute_emptyTokens(t *testing.T) {
	s := newTestShell(t, "")

	assert.Equal(t, Continue, s.Execute(nil))
	assert.Equal(t, Continue, s.Execute([]string{}))
	assert.Empty(t, s.stdout.String())
	assert.Empty(t, s.stderr.String())
}

func TestExecute_externalTrue(t *testing.T) {
	requireProgram(t, "true")
	s := newTestShell(t, "")

	assert.Equal(t, Continue, s.Execute([]string{"true"}))
	assert.Empty(t, s.stderr.String())
}
