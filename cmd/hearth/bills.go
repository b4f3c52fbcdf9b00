package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/hearthaudit/hearth/internal/cli"
	"github.com/hearthaudit/hearth/internal/model"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Manage energy bills",
	}
	cmd.AddCommand(billsAddCmd())
	cmd.AddCommand(billsListCmd())
	cmd.AddCommand(billsImportCmd())
	cmd.AddCommand(billsDeleteCmd())
	return cmd
}

const billDateLayout = "2006-01-02"

func billsAddCmd() *cobra.Command {
	var homeRef, start, end, utility string
	var kwh, cost, rate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record one energy bill",
		RunE: func(cmd *cobra.Command, _ []string) error {
			periodStart, err := time.Parse(billDateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid --start date %q: want YYYY-MM-DD", start)
			}
			periodEnd, err := time.Parse(billDateLayout, end)
			if err != nil {
				return fmt.Errorf("invalid --end date %q: want YYYY-MM-DD", end)
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			home, err := resolveHome(ctx, store, homeRef)
			if err != nil {
				return err
			}

			bill := model.EnergyBill{
				HomeID:      home.ID,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
				Utility:     utility,
				TotalKWh:    kwh,
				TotalCost:   cost,
				Rate:        rate,
			}
			if err := store.SaveBill(ctx, &bill); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded bill: %.0f kWh, $%.2f ($%.3f/kWh)",
				kwh, cost, bill.ComputedRate())))
			return nil
		},
	}

	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID (required)")
	cmd.Flags().StringVar(&start, "start", "", "period start, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "period end, YYYY-MM-DD (required)")
	cmd.Flags().Float64Var(&kwh, "kwh", 0, "total kWh used")
	cmd.Flags().Float64Var(&cost, "cost", 0, "total cost in dollars")
	cmd.Flags().Float64Var(&rate, "rate", 0, "explicit $/kWh rate (0 to derive from cost)")
	cmd.Flags().StringVar(&utility, "utility", "", "utility company name")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func billsImportCmd() *cobra.Command {
	var homeRef string

	cmd := &cobra.Command{
		Use:   "import CSV_FILE",
		Short: "Import bills from a CSV export",
		Long: `Import bills from a CSV file with a header row. Expected columns:

  period_start,period_end,total_kwh,total_cost[,rate[,utility]]

Dates use YYYY-MM-DD. All rows import in one transaction; a bad row
aborts the whole import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			home, err := resolveHome(ctx, store, homeRef)
			if err != nil {
				return err
			}

			bills, err := readBillsCSV(args[0], home.ID)
			if err != nil {
				return err
			}
			if len(bills) == 0 {
				fmt.Println(cli.FormatWarning("No bill rows found in file"))
				return nil
			}

			if err := store.SaveBills(ctx, bills); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d bills for %q", len(bills), home.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID (required)")
	_ = cmd.MarkFlagRequired("home")
	return cmd
}

func readBillsCSV(path string, homeID uuid.UUID) ([]model.EnergyBill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	bar := progressbar.Default(int64(len(records)-1), "reading bills")
	var bills []model.EnergyBill
	for i, rec := range records[1:] {
		rowNum := i + 2
		_ = bar.Add(1)
		if len(rec) < 4 {
			return nil, fmt.Errorf("row %d: want at least 4 columns, got %d", rowNum, len(rec))
		}

		start, err := time.Parse(billDateLayout, strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad period_start %q", rowNum, rec[0])
		}
		end, err := time.Parse(billDateLayout, strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad period_end %q", rowNum, rec[1])
		}
		kwh, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad total_kwh %q", rowNum, rec[2])
		}
		cost, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad total_cost %q", rowNum, rec[3])
		}

		bill := model.EnergyBill{
			HomeID:      homeID,
			PeriodStart: start,
			PeriodEnd:   end,
			TotalKWh:    kwh,
			TotalCost:   cost,
		}
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			if bill.Rate, err = strconv.ParseFloat(strings.TrimSpace(rec[4]), 64); err != nil {
				return nil, fmt.Errorf("row %d: bad rate %q", rowNum, rec[4])
			}
		}
		if len(rec) > 5 {
			bill.Utility = strings.TrimSpace(rec[5])
		}
		bills = append(bills, bill)
	}
	return bills, nil
}

func billsListCmd() *cobra.Command {
	var homeRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a home's bills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			home, err := resolveHome(ctx, store, homeRef)
			if err != nil {
				return err
			}
			if len(home.Bills) == 0 {
				fmt.Println(cli.FormatInfo("No bills yet. Add one with 'hearth bills add' or import a CSV."))
				return nil
			}

			fmt.Println(cli.FormatTitle(home.Name + " bills"))
			for _, b := range home.Bills {
				fmt.Printf("%s to %s  %7.0f kWh  $%8.2f  $%.3f/kWh\n",
					b.PeriodStart.Format(billDateLayout), b.PeriodEnd.Format(billDateLayout),
					b.TotalKWh, b.TotalCost, b.ComputedRate())
				fmt.Println(cli.SubtleStyle.Render("   " + b.ID.String()))
			}
			if annual, ok := home.BillBasedAnnualKWh(); ok {
				fmt.Printf("\n%s Annualized usage: %.0f kWh/yr at $%.3f/kWh\n",
					cli.ChartIcon, annual, home.ActualElectricityRate())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID (required)")
	_ = cmd.MarkFlagRequired("home")
	return cmd
}

func billsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BILL_ID",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg(args[0], "bill")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteBill(ctx, id); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted bill"))
			return nil
		},
	}
}
