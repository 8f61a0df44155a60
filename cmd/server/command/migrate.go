package command

import (
	"fmt"

	"condopark/internal/db"
	"condopark/internal/utils"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the users, slots and bookings tables in Postgres",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.StorageDriver != "postgres" {
			return fmt.Errorf("migrate requires STORAGE_DRIVER=postgres")
		}
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := db.Migrate(cmd.Context(), conn); err != nil {
			return err
		}
		utils.Logger.Info("Schema applied")
		return nil
	},
}
