package commands

import (
	"car-rental-backend/internal/repository/postgres/migrations"

	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema (safe to run repeatedly)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := setup(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			return migrations.Apply(cmd.Context(), db)
		},
	}
}
