package main

import (
	"bakery-storefront/internal/client"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the items, orders and settings tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := client.InitDBClient(cfg.Database)
		if err != nil {
			return err
		}
		if err := client.Migrate(db); err != nil {
			return err
		}

		logger.Info("database migrated")
		return nil
	},
}
