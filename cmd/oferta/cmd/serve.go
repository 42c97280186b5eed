package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/cedepro/oferta/internal/config"
	"github.com/cedepro/oferta/internal/dataset"
	"github.com/cedepro/oferta/internal/pipeline"
	"github.com/cedepro/oferta/internal/server"
	"github.com/cedepro/oferta/pkg/logging"
	"github.com/cedepro/oferta/pkg/provinces"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the source spreadsheets and serve the reporting API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cobraCmd *cobra.Command, _ []string) error {
	ctx := cobraCmd.Context()
	logger := logging.Default()

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	if cfg.ProvincesFile != "" {
		if err := provinces.LoadAliases(cfg.ProvincesFile); err != nil {
			logger.Warn().Err(err).Str("path", cfg.ProvincesFile).
				Msg("Province alias file not loaded")
		}
	}

	loader := dataset.NewLoader(cfg, logger)
	store := dataset.NewStore(loader.Snapshot(ctx))
	runner := pipeline.NewRunner(cfg.PipelineCommand, logger)

	srvCfg := server.DefaultConfig()
	srvCfg.Addr = cfg.Addr
	srvCfg.CORSEnabled = cfg.CORSEnabled
	srvCfg.CORSOrigins = cfg.CORSOrigins

	srv := server.New(store, loader, runner, logger, srvCfg)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
