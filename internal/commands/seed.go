package commands

import (
	"time"

	"car-rental-backend/internal/repository/postgres"
	"car-rental-backend/internal/seed"
	"car-rental-backend/internal/service"

	"github.com/spf13/cobra"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo data into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := setup(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			sum, err := seed.Run(cmd.Context(), service.New(postgres.NewStore(db)), time.Now())
			if err != nil {
				return err
			}
			if sum.Skipped {
				cmd.Println("Database already has data, nothing seeded.")
				return nil
			}
			cmd.Printf("Seeded %d car models, %d vehicles and order %d.\n", sum.Models, sum.Vehicles, sum.OrderID)
			return nil
		},
	}
}
