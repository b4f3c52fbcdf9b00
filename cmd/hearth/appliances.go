package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/hearthaudit/hearth/internal/cli"
	"github.com/hearthaudit/hearth/internal/model"
)

func appliancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appliances",
		Short: "Manage the appliance and lighting inventory",
	}
	cmd.AddCommand(appliancesAddCmd())
	cmd.AddCommand(appliancesListCmd())
	cmd.AddCommand(appliancesDeleteCmd())
	return cmd
}

type applianceInput struct {
	Home     string  `validate:"required"`
	Name     string  `validate:"required,max=120"`
	Category string  ``
	Watts    float64 `validate:"gte=0,lte=20000"`
	Hours    float64 `validate:"gte=0,lte=24"`
	Quantity int     `validate:"gte=1,lte=200"`
}

func appliancesAddCmd() *cobra.Command {
	var in applianceInput

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an appliance or bulb group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			if err := validator.New().Struct(in); err != nil {
				return fmt.Errorf("invalid appliance: %w", err)
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			home, err := resolveHome(ctx, store, in.Home)
			if err != nil {
				return err
			}

			a := model.Appliance{
				HomeID:      home.ID,
				Name:        in.Name,
				Category:    model.ParseApplianceCategory(in.Category),
				Detection:   model.DetectionManual,
				Wattage:     in.Watts,
				HoursPerDay: in.Hours,
				Quantity:    in.Quantity,
			}
			if err := store.SaveAppliance(ctx, &a); err != nil {
				return err
			}

			rate := home.ActualElectricityRate()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s", a.Name)))
			fmt.Printf("  ~%.0f kWh/yr, $%.0f/yr at $%.2f/kWh\n", a.AnnualKWh(), a.AnnualCost(rate), rate)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Home, "home", "", "home name or ID (required)")
	cmd.Flags().StringVar(&in.Category, "category", "Other", "appliance category")
	cmd.Flags().Float64Var(&in.Watts, "watts", 0, "rated wattage")
	cmd.Flags().Float64Var(&in.Hours, "hours", 0, "hours of use per day")
	cmd.Flags().IntVar(&in.Quantity, "quantity", 1, "number of identical units")
	_ = cmd.MarkFlagRequired("home")

	return cmd
}

func appliancesListCmd() *cobra.Command {
	var homeRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a home's appliances with annual costs",
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
			if len(home.Appliances) == 0 {
				fmt.Println(cli.FormatInfo("No appliances yet. Add some with 'hearth appliances add'."))
				return nil
			}

			fmt.Println(cli.FormatTitle(home.Name + " appliances"))
			rate := home.ActualElectricityRate()
			var totalKWh float64
			for _, a := range home.Appliances {
				kwh := a.AnnualKWh()
				totalKWh += kwh
				qty := ""
				if a.Quantity > 1 {
					qty = fmt.Sprintf(" x%d", a.Quantity)
				}
				fmt.Printf("%-24s %-18s %7.0f kWh/yr  $%.0f/yr%s\n",
					a.Name, a.Category, kwh, a.AnnualCost(rate), qty)
				fmt.Println(cli.SubtleStyle.Render("   " + a.ID.String()))
			}
			fmt.Printf("\n%s Total: %.0f kWh/yr ($%.0f/yr)\n", cli.BoltIcon, totalKWh, totalKWh*rate)
			return nil
		},
	}

	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID (required)")
	_ = cmd.MarkFlagRequired("home")
	return cmd
}

func appliancesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete APPLIANCE_ID",
		Short: "Delete an appliance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg(args[0], "appliance")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteAppliance(ctx, id); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted appliance"))
			return nil
		},
	}
}
