package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_emptyPath(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, Default().Prompt, cfg.Prompt)
}

func TestLoad(t *testing.T) {
	cases := map[string]struct {
		contents string
		check    func(t *testing.T, cfg *Configuration)
		wantErr  bool
	}{
		"partial": {
			contents: "prompt: \"$ \"\n",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "$ ", cfg.Prompt)
				assert.Equal(t, Default().Banner, cfg.Banner)
			},
		},
		"full": {
			contents: "prompt: \"% \"\nbanner: hi\ncolor: never\nlog_file: /tmp/events.log\nlog_level: debug\n",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "% ", cfg.Prompt)
				assert.Equal(t, "hi", cfg.Banner)
				assert.Equal(t, ColorNever, cfg.Color)
				assert.Equal(t, "/tmp/events.log", cfg.LogFile)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		"unknown-field": {contents: "history: true\n", wantErr: true},
		"invalid-value": {contents: "color: rainbow\n", wantErr: true},
		"not-yaml":      {contents: "prompt: [\n", wantErr: true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/etc/blsh.yaml", []byte(tc.contents), 0600))

			cfg, err := Load(fs, "/etc/blsh.yaml")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestLoad_directory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/me/blsh.yaml", []byte("banner: mine\n"), 0600))

	cfg, err := Load(fs, "/home/me")
	require.NoError(t, err)
	assert.Equal(t, "mine", cfg.Banner)
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestInitialize(t *testing.T) {
	fs := afero.NewMemMapFs()

	path, err := Initialize(fs, "/home/me")
	require.NoError(t, err)
	assert.Equal(t, "/home/me/blsh.yaml", path)

	// Check that the config is valid
	cfg, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, Default(), withoutFs(cfg))

	_, err = Initialize(fs, "/home/me")
	assert.ErrorIs(t, err, ErrExists)
}

func withoutFs(cfg *Configuration) *Configuration {
	cfg.configFs = nil
	return cfg
}
