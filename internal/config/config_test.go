package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codalotl/textdiff/internal/diff"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, sources, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []Source{{Type: "default"}}, sources)
	assert.Equal(t, diff.Limits{MaxLines: 4000, MaxLineLength: 2000}, cfg.Limits())
}

func TestLoad_Cascade(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	work := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(work, 0o755))

	homeFile := filepath.Join(home, ".textdiff", "config.yaml")
	writeFile(t, homeFile, "context: 2\ncolor: never\nold_label: home-old\n")
	projectFile := filepath.Join(project, ".textdiff", "config.json")
	writeFile(t, projectFile, `{"context": 5, "max_lines": 10}`)

	cfg, sources, err := Load(LoadOptions{
		HomeDir: home,
		WorkDir: work,
		Getenv:  envMap(map[string]string{EnvNewLabel: "env-new", EnvCoalesceModify: "true"}),
	})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Context:        5,
		Color:          ColorNever,
		MaxLines:       10,
		MaxLineLength:  2000,
		OldLabel:       "home-old",
		NewLabel:       "env-new",
		CoalesceModify: true,
	}, cfg)
	assert.Equal(t, []Source{
		{Type: "default"},
		{Type: "file", Identifier: homeFile},
		{Type: "file", Identifier: projectFile},
		{Type: "env"},
	}, sources)
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".textdiff", "config.yaml"), "context: 2\n")

	cfg, _, err := Load(LoadOptions{HomeDir: home, Getenv: envMap(map[string]string{EnvContext: " 7 ", EnvColor: "Always"})})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Context)
	assert.Equal(t, ColorAlways, cfg.Color)
}

func TestLoad_DisplaySettings(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".textdiff", "config.yaml"), "tab_width: 4\n")

	cfg, _, err := Load(LoadOptions{HomeDir: home, Getenv: envMap(map[string]string{EnvEastAsianWidth: "true"})})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.True(t, cfg.EastAsianWidth)

	cfg, _, err = Load(LoadOptions{HomeDir: home, Getenv: envMap(map[string]string{EnvTabWidth: "0"})})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.TabWidth)
	assert.False(t, cfg.EastAsianWidth)
}

func TestLoad_SkipsEmptyAndMissingFiles(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".textdiff", "config.yaml"), "  \n")
	writeFile(t, filepath.Join(home, ".textdiff", "config.json"), `{"context": 1}`)

	cfg, sources, err := Load(LoadOptions{HomeDir: home, WorkDir: filepath.Join(home, "missing")})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Context)
	require.Len(t, sources, 2)
	assert.Equal(t, filepath.Join(home, ".textdiff", "config.json"), sources[1].Identifier)
}

func TestLoad_ProjectInsideHomeLoadsOnce(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".textdiff", "config.yaml"), "context: 3\n")
	work := filepath.Join(home, "src")
	require.NoError(t, os.MkdirAll(work, 0o755))

	_, sources, err := Load(LoadOptions{HomeDir: home, WorkDir: work})
	require.NoError(t, err)
	assert.Len(t, sources, 2)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{name: "unknown key", file: "contxt: 3\n", wantErr: "field contxt not found"},
		{name: "wrong type", file: "context: many\n", wantErr: "cannot unmarshal"},
		{name: "negative context", file: "context: -1\n", wantErr: "context must be >= 0"},
		{name: "bad color", file: "color: rainbow\n", wantErr: `color must be one of auto, always, never (got "rainbow")`},
		{name: "negative limit", file: "max_line_length: -5\n", wantErr: "max_line_length must be >= 0"},
		{name: "bad env int", env: map[string]string{EnvMaxLines: "lots"}, wantErr: `TEXTDIFF_MAX_LINES: cannot parse int from "lots"`},
		{name: "bad env bool", env: map[string]string{EnvCoalesceModify: "sometimes"}, wantErr: `TEXTDIFF_COALESCE_MODIFY: cannot parse bool from "sometimes"`},
		{name: "negative tab width", file: "tab_width: -2\n", wantErr: "tab_width must be >= 0"},
		{name: "bad env east asian", env: map[string]string{EnvEastAsianWidth: "cjk"}, wantErr: `TEXTDIFF_EAST_ASIAN_WIDTH: cannot parse bool from "cjk"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			if tt.file != "" {
				writeFile(t, filepath.Join(home, ".textdiff", "config.yaml"), tt.file)
			}
			_, _, err := Load(LoadOptions{HomeDir: home, Getenv: envMap(tt.env)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.OldLabel = "a<b>"
	require.NoError(t, WriteJSON(&buf, cfg, []Source{{Type: "default"}, {Type: "file", Identifier: "/x/config.yaml"}}))

	assert.Contains(t, buf.String(), `"old_label": "a<b>"`)
	assert.NotContains(t, buf.String(), "new_label")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "auto", decoded["color"])
	assert.EqualValues(t, 4000, decoded["max_lines"])
	assert.Len(t, decoded["sources"], 2)
}
