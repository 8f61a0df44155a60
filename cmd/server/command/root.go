package command

import (
	"condopark/internal/config"
	"condopark/internal/utils"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "condopark",
	Short: "Condominium parking slot reservations",
	Long: `condopark lets condominium owners list their parking slots,
parkers book them and guards validate bookings at the gate.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	utils.InitLogger("condopark", cfg.LogLevel)
	return cfg, nil
}
