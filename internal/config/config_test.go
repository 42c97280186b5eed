package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, filepath.Join("data", DefaultOfertaFilename), cfg.OfertaPath)
	assert.Equal(t, filepath.Join("data", DefaultF1Filename), cfg.F1Path)
	assert.True(t, cfg.CORSEnabled)
	assert.Nil(t, cfg.PipelineCommand)
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("CEDEPRO_ADDR", ":9090")
	t.Setenv("CEDEPRO_DATA_DIR", "/srv/oferta")
	t.Setenv("CEDEPRO_OFERTA_VIGENTE_PATH", "/srv/oferta/custom.xlsx")
	t.Setenv("CEDEPRO_PIPELINE_COMMAND", "python3 pipeline_update.py")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/srv/oferta", cfg.DataDir)
	assert.Equal(t, "/srv/oferta/custom.xlsx", cfg.OfertaPath)
	// The F1 path still derives from the overridden data dir.
	assert.Equal(t, filepath.Join("/srv/oferta", DefaultF1Filename), cfg.F1Path)
	assert.Equal(t, []string{"python3", "pipeline_update.py"}, cfg.PipelineCommand)
}

func TestLoadConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "oferta.yaml")
	content := "addr: \":7070\"\ncors_enabled: false\ncors_origins:\n  - https://dashboard.example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.False(t, cfg.CORSEnabled)
	assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.CORSOrigins)
}
