// Package config loads service configuration from, in order of precedence:
// command-line flags (bound by the cmd package), environment variables with
// the CEDEPRO prefix, .env files, an optional .oferta.yaml config file, and
// built-in defaults. The environment names for the two source-file overrides
// match the ones the deployed system already documents
// (CEDEPRO_OFERTA_VIGENTE_PATH, CEDEPRO_F1_PATH).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default source filenames as published by the upstream portal exports.
const (
	DefaultOfertaFilename = "OFERTA_ACAD_CEDEPRO_F_1_VIGENTE.xlsx"
	DefaultF1Filename     = "OFERTA_ACAD_CEDEPRO_F_1_MATRICULADOS.xlsx"
)

// Config holds the resolved service configuration.
type Config struct {
	Addr    string
	DataDir string

	// Explicit file overrides; empty means derive from DataDir + default name.
	OfertaPath string
	F1Path     string

	// Remote fetch fallbacks used when the file is missing locally.
	OfertaURL string
	F1URL     string

	// External refresh pipeline, e.g. "python3 pipeline_update.py".
	// Empty disables the refresh endpoint.
	PipelineCommand []string

	// Optional YAML file with extra province alias mappings.
	ProvincesFile string

	CORSEnabled bool
	CORSOrigins []string
}

// Load reads configuration from all sources and applies defaults.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()

	viper.SetEnvPrefix("CEDEPRO")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	viper.SetDefault("addr", ":8080")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("cors_enabled", true)

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".oferta")
	}
	// A missing config file is fine; env vars and defaults still apply.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Addr:            viper.GetString("addr"),
		DataDir:         viper.GetString("data_dir"),
		OfertaPath:      viper.GetString("oferta_vigente_path"),
		F1Path:          viper.GetString("f1_path"),
		OfertaURL:       viper.GetString("oferta_url"),
		F1URL:           viper.GetString("f1_url"),
		PipelineCommand: splitCommand(viper.GetString("pipeline_command")),
		ProvincesFile:   viper.GetString("provinces_file"),
		CORSEnabled:     viper.GetBool("cors_enabled"),
		CORSOrigins:     viper.GetStringSlice("cors_origins"),
	}

	if cfg.OfertaPath == "" {
		cfg.OfertaPath = filepath.Join(cfg.DataDir, DefaultOfertaFilename)
	}
	if cfg.F1Path == "" {
		cfg.F1Path = filepath.Join(cfg.DataDir, DefaultF1Filename)
	}

	return cfg, nil
}

// loadEnvFiles loads .env files; .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

func splitCommand(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
