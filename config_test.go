package tftlayout

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
language = "pt"

[canvas]
width = 320
height = 240

[generate]
mode = "external"
transparency = true
output_dir = "sd"
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "pt", cfg.Language)
	assert.Equal(t, CanvasConfig{Width: 320, Height: 240}, cfg.Canvas)
	assert.Equal(t, GenerateConfig{Mode: "external", Transparency: true, OutputDir: "sd"}, cfg.Generate)
	assert.Equal(t, "layouts.db", cfg.Store.Path)

	c := New(cfg, nil)
	assert.Equal(t, 320, c.Canvas().Width)
	assert.Equal(t, 240, c.Canvas().Height)
}

func TestLoadConfigErrors(t *testing.T) {
	tables := []struct {
		doc  string
		kind Kind
	}{
		{`language = `, ErrFormat},
		{"[canvas]\nwidth = 0", ErrValidation},
		{"[generate]\nmode = \"flash\"", ErrValidation},
		{`language = "fr"`, ErrValidation},
	}

	for _, table := range tables {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(table.doc), 0644))

		_, err := LoadConfig(path)
		assert.True(t, errors.Is(err, table.kind), "%q: %v", table.doc, err)
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tftlayout", "config.toml")

	cfg := DefaultConfig()
	cfg.Language = "pt"
	require.NoError(t, cfg.Save(path))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSchema(t *testing.T) {
	for _, name := range Schemas {
		b, err := Schema(name)
		require.NoError(t, err, name)

		var s map[string]interface{}
		require.NoError(t, json.Unmarshal(b, &s), name)
		assert.Equal(t, schemaBase+name+".schema.json", s["$id"])
	}

	b, err := Schema("layout")
	require.NoError(t, err)
	assert.Contains(t, string(b), "canvas_size")

	_, err = Schema("firmware")
	assert.True(t, errors.Is(err, ErrValidation))
}
