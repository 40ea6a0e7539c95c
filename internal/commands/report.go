package commands

import (
	"fmt"
	"os"

	"car-rental-backend/internal/report"
	"car-rental-backend/internal/repository/postgres"
	"car-rental-backend/internal/service"

	"github.com/spf13/cobra"
)

func ReportCmd() *cobra.Command {
	var (
		params   report.Params
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the fleet and order reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.Class == "" && params.ClientName == "" && params.OrderID == 0 {
				return fmt.Errorf("select at least one of --class, --client or --order")
			}

			_, db, err := setup(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			svcs := service.New(postgres.NewStore(db))
			res, err := report.Collect(cmd.Context(), svcs.Reports, params)
			if err != nil {
				return err
			}
			if err := res.WriteText(cmd.OutOrStdout()); err != nil {
				return err
			}

			if xlsxPath == "" {
				return nil
			}
			f, err := os.Create(xlsxPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", xlsxPath, err)
			}
			defer f.Close()
			if err := res.WriteXLSX(f); err != nil {
				return err
			}
			cmd.Printf("Workbook written to %s\n", xlsxPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Class, "class", "", "List available vehicles of this class")
	cmd.Flags().StringVar(&params.ClientName, "client", "", "List open orders of the client with this full name")
	cmd.Flags().Int64Var(&params.OrderID, "order", 0, "Print the payments and fines of this order")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the reports to this XLSX file")
	return cmd
}
