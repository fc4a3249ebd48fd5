package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmehdipour/sms-relay/internal/config"
	httpSrv "github.com/jmehdipour/sms-relay/internal/http"
	"github.com/jmehdipour/sms-relay/internal/logger"
	"github.com/jmehdipour/sms-relay/internal/provider"
	"github.com/jmehdipour/sms-relay/internal/service/relay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		svc, err := newRelayService(cfg, log)
		if err != nil {
			return err
		}

		server := httpSrv.NewServer(cfg, svc, log)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			log.Info("signal received, shutting down", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("http server exited: %w", err)
			}
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	},
}

// bootstrap loads config and initializes the global logger. A missing
// credential surfaces here as *config.MissingFieldError.
func bootstrap() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func newRelayService(cfg config.Config, log *zap.Logger) (*relay.Service, error) {
	prov, err := provider.New(cfg, log)
	if err != nil {
		return nil, err
	}

	svc := relay.New(prov, cfg.Twilio.FromNumber, log)
	log.Info("relay configured",
		zap.String("provider", prov.Name()),
		zap.String("from", svc.From()),
		zap.String("base_path", cfg.HTTP.BasePath),
	)
	return svc, nil
}
