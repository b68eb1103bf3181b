package cli

import (
	"fmt"

	"shelter-api/internal/adapters/storage/sqlstore"
	"shelter-api/internal/domain/adopters"
	"shelter-api/internal/domain/dogs"
	"shelter-api/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Insert adopters and dogs from a YAML file (default: built-in sample data)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data seed.Data
				err  error
			)
			if len(args) == 1 {
				data, err = seed.ReadFile(args[0])
			} else {
				data, err = seed.Default()
			}
			if err != nil {
				return err
			}

			db, err := a.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if a.cfg.Database.AutoMigrate {
				if err := sqlstore.Migrate(cmd.Context(), db, a.log); err != nil {
					return err
				}
			}

			res, err := seed.Apply(cmd.Context(),
				adopters.NewService(sqlstore.NewAdoptersRepo(db)),
				dogs.NewService(sqlstore.NewDogsRepo(db)),
				data,
			)
			a.log.Info().Int("adopters", res.Adopters).Int("dogs", res.Dogs).Msg("seed applied")
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d adopters and %d dogs\n", res.Adopters, res.Dogs)
			return nil
		},
	}
}
