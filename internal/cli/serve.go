package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"shelter-api/internal/server"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().Bool("auto-migrate", true, "run migrations on startup")
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
	addServeFlags(cmd)
	return cmd
}

// serve corre hasta SIGINT/SIGTERM o hasta que el listener falla.
// Al salir drena HTTP y cierra el pool dentro de server.shutdown_timeout.
func (a *app) serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, a.cfg, a.log)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(parent), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
