package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/hearthaudit/hearth/internal/cli"
	"github.com/hearthaudit/hearth/internal/model"
)

func homesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homes",
		Short: "Manage audited homes",
	}
	cmd.AddCommand(homesAddCmd())
	cmd.AddCommand(homesListCmd())
	cmd.AddCommand(homesShowCmd())
	cmd.AddCommand(homesDeleteCmd())
	return cmd
}

// homeInput collects and validates the flags for homes add.
type homeInput struct {
	Name         string  `validate:"required,max=120"`
	Address      string  `validate:"max=250"`
	State        string  `validate:"omitempty,len=2,alpha"`
	Climate      string  `validate:"required,oneof=Hot Moderate Cold"`
	HomeType     string  `validate:"omitempty,oneof=House Townhouse Apartment/Condo"`
	YearBuilt    string  ``
	SqFt         float64 `validate:"gte=0,lte=50000"`
	BedroomCount int     `validate:"gte=0,lte=20"`
}

func homesAddCmd() *cobra.Command {
	var in homeInput

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a home",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			if err := validator.New().Struct(in); err != nil {
				return fmt.Errorf("invalid home: %w", err)
			}
			if in.State != "" {
				if _, ok := model.ParseUSState(in.State); !ok {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("state %q has no rebate data; home will be saved without rebate matching", in.State)))
				}
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			home := model.Home{
				Name:         in.Name,
				Address:      in.Address,
				State:        in.State,
				ClimateZone:  model.ParseClimateZone(in.Climate),
				YearBuilt:    model.ParseYearBuiltRange(in.YearBuilt),
				TotalSqFt:    in.SqFt,
				BedroomCount: in.BedroomCount,
			}
			if t, ok := model.ParseHomeType(in.HomeType); ok {
				home.HomeType = t
			}

			if err := store.SaveHome(ctx, &home); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added home %q (%s)", home.Name, home.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Address, "address", "", "street address")
	cmd.Flags().StringVar(&in.State, "state", "", "two-letter state code for rebate matching")
	cmd.Flags().StringVar(&in.Climate, "climate", "Moderate", "climate zone (Hot, Moderate, Cold)")
	cmd.Flags().StringVar(&in.HomeType, "type", "", "home type (House, Townhouse, Apartment/Condo)")
	cmd.Flags().StringVar(&in.YearBuilt, "year-built", "", "construction era (Pre-1970, 1970 to 1989, 1990 to 2005, 2006 to 2015, 2016+)")
	cmd.Flags().Float64Var(&in.SqFt, "sqft", 0, "total square footage (0 to derive from rooms)")
	cmd.Flags().IntVar(&in.BedroomCount, "bedrooms", 0, "bedroom count")

	return cmd
}

func homesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List homes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			homes, err := store.ListHomes(ctx)
			if err != nil {
				return err
			}
			if len(homes) == 0 {
				fmt.Println(cli.FormatInfo("No homes yet. Add one with 'hearth homes add'."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Homes"))
			for _, h := range homes {
				line := fmt.Sprintf("%s %s", cli.HomeIcon, h.Name)
				if h.State != "" {
					line += fmt.Sprintf(" (%s)", h.State)
				}
				if h.TotalSqFt > 0 {
					line += fmt.Sprintf("  %.0f sq ft", h.TotalSqFt)
				}
				fmt.Println(line)
				fmt.Println(cli.SubtleStyle.Render("   " + h.ID.String()))
			}
			return nil
		},
	}
}

func homesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show HOME",
		Short: "Show a home's audit data at a glance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			home, err := resolveHome(ctx, store, args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(home.Name))
			if home.Address != "" {
				fmt.Println("  " + home.Address)
			}
			if home.State != "" {
				fmt.Printf("  State: %s\n", home.State)
			}
			fmt.Printf("  Climate: %s\n", home.ClimateZone)
			if home.YearBuilt != "" {
				fmt.Printf("  Built: %s\n", home.YearBuilt)
			}
			if sqft := home.ComputedTotalSqFt(); sqft > 0 {
				fmt.Printf("  Size: %.0f sq ft\n", sqft)
			}

			fmt.Println()
			fmt.Printf("  Rooms: %d  Equipment: %d  Appliances: %d  Bills: %d\n",
				len(home.Rooms), len(home.Equipment), len(home.Appliances), len(home.Bills))
			if home.Envelope != nil {
				fmt.Println("  Envelope: assessed")
			}
			if btu := home.TotalBTU(); btu > 0 {
				fmt.Printf("  Cooling load: %.0f BTU/hr\n", btu)
			}

			checklist := model.BuildChecklist(*home)
			fmt.Printf("\n  Audit progress: %.0f%%", checklist.ProgressPercent())
			if step, ok := checklist.FirstIncomplete(); ok {
				fmt.Printf("  (next: %s)", step)
			}
			fmt.Println()
			fmt.Println(cli.SubtleStyle.Render("  " + home.ID.String()))
			return nil
		},
	}
}

func homesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete HOME",
		Short: "Delete a home and all of its audit data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			home, err := resolveHome(ctx, store, args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteHome(ctx, home.ID); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted home %q", home.Name)))
			return nil
		},
	}
}
