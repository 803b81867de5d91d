package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/medref-lab/medcorpus/pkg/cli/config"
	httpctrl "github.com/medref-lab/medcorpus/pkg/controller/http"
	"github.com/medref-lab/medcorpus/pkg/usecase"
	"github.com/medref-lab/medcorpus/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var corpusCfg config.Corpus

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("MEDCORPUS_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, corpusCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server over a validated corpus",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			corpus, _, err := corpusCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load corpus")
			}

			uc := usecase.New(corpus)
			handler := httpctrl.New(corpus, uc,
				httpctrl.WithVersion(c.Root().Version),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
