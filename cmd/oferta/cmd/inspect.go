package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/cedepro/oferta/internal/config"
	"github.com/cedepro/oferta/internal/dataset"
	"github.com/cedepro/oferta/internal/report"
	"github.com/cedepro/oferta/pkg/logging"
	"github.com/cedepro/oferta/pkg/provinces"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the source spreadsheets and print what was detected",
	Long: `Inspect runs a one-shot ingestion and prints the resolved file paths,
row counts and detected filter values as JSON. Useful for checking a new
spreadsheet export before serving it.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cobraCmd *cobra.Command, _ []string) error {
	logger := logging.Default()

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cfg.ProvincesFile != "" {
		if err := provinces.LoadAliases(cfg.ProvincesFile); err != nil {
			logger.Warn().Err(err).Str("path", cfg.ProvincesFile).
				Msg("Province alias file not loaded")
		}
	}

	snap := dataset.NewLoader(cfg, logger).Snapshot(cobraCmd.Context())

	summary := map[string]any{
		"oferta_path": snap.OfertaPath,
		"f1_path":     snap.F1Path,
		"loaded_at":   snap.LoadedAt,
		"rows": map[string]int{
			"oferta":       len(snap.Offerings),
			"matriculados": len(snap.Enrollment),
			"titulados":    len(snap.Graduates),
		},
		"provincias": report.Provinces(snap),
		"years":      report.Years(snap),
		"levels":     report.Levels(snap),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
