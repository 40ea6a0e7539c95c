// Package report builds the operator reports: vehicles available in a class,
// a client's open orders and the money statement of one order.
package report

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/service"

	"github.com/xuri/excelize/v2"
)

const (
	sheetVehicles  = "Available vehicles"
	sheetOrders    = "Open orders"
	sheetStatement = "Order statement"
)

// Params selects what each report covers. A zero field skips its report.
type Params struct {
	Class      string
	ClientName string
	OrderID    int64
}

type Result struct {
	Params    Params
	Vehicles  []domain.VehicleListing
	Orders    []domain.OrderSummary
	Statement *domain.OrderStatement
}

// Collect runs the reports selected by p.
func Collect(ctx context.Context, svc service.ReportService, p Params) (*Result, error) {
	res := &Result{Params: p}
	var err error

	if p.Class != "" {
		if res.Vehicles, err = svc.AvailableVehiclesByClass(ctx, p.Class); err != nil {
			return nil, fmt.Errorf("available vehicles report: %w", err)
		}
	}
	if p.ClientName != "" {
		if res.Orders, err = svc.OpenOrdersByClient(ctx, p.ClientName); err != nil {
			return nil, fmt.Errorf("open orders report: %w", err)
		}
	}
	if p.OrderID != 0 {
		if res.Statement, err = svc.OrderFinancials(ctx, p.OrderID); err != nil {
			return nil, fmt.Errorf("order statement: %w", err)
		}
	}

	logger.Info("Reports collected",
		"vehicles", len(res.Vehicles),
		"open_orders", len(res.Orders),
		"statement", res.Statement != nil,
	)
	return res, nil
}

// WriteText prints every collected report as aligned columns.
func (r *Result) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if r.Params.Class != "" {
		fmt.Fprintf(tw, "Available vehicles, class %s\n", r.Params.Class)
		fmt.Fprintln(tw, "ID\tBrand\tModel\tPlate\tColor\tDaily rate")
		for _, v := range r.Vehicles {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				v.VehicleID, v.Brand, v.ModelName, v.LicensePlate, v.Color, v.DailyRate.StringFixed(2))
		}
		fmt.Fprintln(tw)
	}

	if r.Params.ClientName != "" {
		fmt.Fprintf(tw, "Open orders of %s\n", r.Params.ClientName)
		fmt.Fprintln(tw, "Order\tVehicle\tPlate\tStart\tPlanned end\tTotal")
		for _, o := range r.Orders {
			fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\t%s\n",
				o.OrderID, o.Brand, o.ModelName, o.LicensePlate,
				o.StartDate.Format(domain.DateLayout), o.EndDatePlanned.Format(domain.DateLayout), totalCost(o))
		}
		fmt.Fprintln(tw)
	}

	if st := r.Statement; st != nil {
		fmt.Fprintf(tw, "Statement of order %d\n", st.OrderID)
		fmt.Fprintln(tw, "Kind\tID\tDate\tDetail\tAmount")
		for _, p := range st.Payments {
			fmt.Fprintf(tw, "payment\t%d\t%s\t%s\t%s\n",
				p.ID, p.PaymentDate.Format(domain.DateLayout), p.Method, p.Amount.StringFixed(2))
		}
		for _, f := range st.Fines {
			fmt.Fprintf(tw, "fine\t%d\t%s\t%s\t%s\n",
				f.ID, f.IssueDate.Format(domain.DateLayout), f.ViolationType, f.Amount.StringFixed(2))
		}
		fmt.Fprintf(tw, "Total paid\t\t\t\t%s\n", st.TotalPaid.StringFixed(2))
		fmt.Fprintf(tw, "Total fines\t\t\t\t%s\n", st.TotalFines.StringFixed(2))
	}

	return tw.Flush()
}

// WriteXLSX writes a workbook with one sheet per collected report.
func (r *Result) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	var sheets [][][]any
	var names []string

	if r.Params.Class != "" {
		rows := [][]any{{"ID", "Brand", "Model", "Class", "Plate", "Color", "Daily rate"}}
		for _, v := range r.Vehicles {
			rows = append(rows, []any{v.VehicleID, v.Brand, v.ModelName, v.Class, v.LicensePlate, v.Color, v.DailyRate.InexactFloat64()})
		}
		names = append(names, sheetVehicles)
		sheets = append(sheets, rows)
	}
	if r.Params.ClientName != "" {
		rows := [][]any{{"Order", "Client", "Brand", "Model", "Plate", "Start", "Planned end", "Total"}}
		for _, o := range r.Orders {
			var total any
			if o.TotalCost != nil {
				total = o.TotalCost.InexactFloat64()
			}
			rows = append(rows, []any{o.OrderID, o.ClientName, o.Brand, o.ModelName, o.LicensePlate,
				o.StartDate.Format(domain.DateLayout), o.EndDatePlanned.Format(domain.DateLayout), total})
		}
		names = append(names, sheetOrders)
		sheets = append(sheets, rows)
	}
	if st := r.Statement; st != nil {
		rows := [][]any{{"Kind", "ID", "Date", "Detail", "Amount"}}
		for _, p := range st.Payments {
			rows = append(rows, []any{"payment", p.ID, p.PaymentDate.Format(domain.DateLayout), p.Method, p.Amount.InexactFloat64()})
		}
		for _, fine := range st.Fines {
			rows = append(rows, []any{"fine", fine.ID, fine.IssueDate.Format(domain.DateLayout), fine.ViolationType, fine.Amount.InexactFloat64()})
		}
		rows = append(rows,
			[]any{"Total paid", nil, nil, nil, st.TotalPaid.InexactFloat64()},
			[]any{"Total fines", nil, nil, nil, st.TotalFines.InexactFloat64()},
		)
		names = append(names, sheetStatement)
		sheets = append(sheets, rows)
	}

	if len(names) == 0 {
		return fmt.Errorf("no reports selected")
	}

	for i, name := range names {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}
		if err := writeRows(f, name, sheets[i]); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func totalCost(o domain.OrderSummary) string {
	if o.TotalCost == nil {
		return "-"
	}
	return o.TotalCost.StringFixed(2)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to fill sheet %q: %w", sheet, err)
		}
	}
	return nil
}
