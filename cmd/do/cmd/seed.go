package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/bloglist/internal/db"
	"github.com/templui/bloglist/internal/seed"
)

func SeedCmd() *cobra.Command {
	var force bool

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all blogs with the example data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := open()
			if err != nil {
				return err
			}
			defer database.Close()

			if cfg.IsProduction() && !force {
				return fmt.Errorf("refusing to seed a production database without --force")
			}

			err = db.RunMigrations(cmd.Context(), database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}

			blogs, err := seed.Reset(cmd.Context(), database)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d blogs\n", len(blogs))
			return nil
		},
	}

	seedCmd.Flags().BoolVar(&force, "force", false, "allow seeding when APP_ENV=production")
	return seedCmd
}
