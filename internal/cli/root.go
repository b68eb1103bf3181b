// Package cli arma los comandos del binario: serve (default), migrate, seed y healthcheck.
package cli

import (
	"context"
	"fmt"
	"os"

	"shelter-api/internal/config"
	"shelter-api/internal/platform/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const appName = "shelter-api"

// Version se pisa en build con -ldflags.
var Version = "dev"

// app es lo que PersistentPreRunE deja listo para los subcomandos.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Shelter API: adoptantes y perros",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	pf.String("env", "", "environment (development|test|production)")
	pf.String("db-driver", "", "database driver (memory|postgres|sqlite|mysql)")
	pf.String("db-dsn", "", "database DSN")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.String("log-format", "", "log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("db-driver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"memory", "postgres", "sqlite", "mysql"}, cobra.ShellCompDirectiveNoFileComp
	})

	addServeFlags(rootCmd)

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newMigrateCmd(a))
	rootCmd.AddCommand(newSeedCmd(a))
	rootCmd.AddCommand(newHealthcheckCmd(a))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    appName,
	})
	return nil
}

// Execute corre el root command con ctx.
func Execute(ctx context.Context) error {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
