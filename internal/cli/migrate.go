package cli

import (
	"log"

	"github.com/YSWikcramatantri/Official-Website/internal/config"
	"github.com/YSWikcramatantri/Official-Website/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			log.Println("database migrated")
			return nil
		},
	}
}
