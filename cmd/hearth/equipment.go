package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/hearthaudit/hearth/internal/cli"
	"github.com/hearthaudit/hearth/internal/efficiency"
	"github.com/hearthaudit/hearth/internal/grade"
	"github.com/hearthaudit/hearth/internal/model"
)

func equipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Manage HVAC and appliance equipment",
	}
	cmd.AddCommand(equipmentAddCmd())
	cmd.AddCommand(equipmentListCmd())
	cmd.AddCommand(equipmentDeleteCmd())
	return cmd
}

type equipmentInput struct {
	Home       string  `validate:"required"`
	Type       string  `validate:"required"`
	Age        string  ``
	Notes      string  `validate:"max=500"`
	Efficiency float64 `validate:"gte=0,lte=100"`
}

func equipmentAddCmd() *cobra.Command {
	var in equipmentInput

	cmd := &cobra.Command{
		Use:   "add TYPE",
		Short: "Add an equipment item",
		Long: `Add a piece of equipment. When --efficiency is omitted, the rating
is estimated from the age bracket using typical installed-base values.

Types: ` + strings.Join(equipmentTypeNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Type = args[0]
			if err := validator.New().Struct(in); err != nil {
				return fmt.Errorf("invalid equipment: %w", err)
			}

			eqType, ok := model.ParseEquipmentType(in.Type)
			if !ok {
				return fmt.Errorf("unknown equipment type %q; valid types: %s", in.Type, strings.Join(equipmentTypeNames(), ", "))
			}
			age := model.ParseAgeBracket(in.Age)

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

			eff := in.Efficiency
			if !cmd.Flags().Changed("efficiency") {
				eff = efficiency.Lookup(eqType, age).Estimated
			} else if eff <= 0 {
				return fmt.Errorf("efficiency must be positive; omit --efficiency to estimate from age")
			}

			eq := model.Equipment{
				HomeID:              home.ID,
				Type:                eqType,
				Age:                 age,
				EstimatedEfficiency: eff,
				Notes:               in.Notes,
			}
			if err := store.SaveEquipment(ctx, &eq); err != nil {
				return err
			}

			g := grade.ForEquipment(eq)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s (%.1f %s)", eq.Type, eff, eqType.EfficiencyUnit())))
			fmt.Printf("  Grade: %s  %s\n", cli.FormatGrade(string(g.Letter)), g.Summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Home, "home", "", "home name or ID (required)")
	cmd.Flags().StringVar(&in.Age, "age", "10-15 years", "age bracket (0-5 years, 5-10 years, 10-15 years, 15-20 years, 20+ years)")
	cmd.Flags().Float64Var(&in.Efficiency, "efficiency", 0, "known efficiency rating (omit to estimate from age)")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("home")

	return cmd
}

func equipmentTypeNames() []string {
	names := make([]string, 0, len(model.EquipmentTypes))
	for _, t := range model.EquipmentTypes {
		names = append(names, string(t))
	}
	return names
}

func equipmentListCmd() *cobra.Command {
	var homeRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a home's equipment with grades",
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
			if len(home.Equipment) == 0 {
				fmt.Println(cli.FormatInfo("No equipment yet. Add some with 'hearth equipment add'."))
				return nil
			}

			fmt.Println(cli.FormatTitle(home.Name + " equipment"))
			sqFt := home.ComputedTotalSqFt()
			rate := home.ActualElectricityRate()
			for _, eq := range home.Equipment {
				g := grade.ForEquipment(eq)
				cost := efficiency.AnnualCost(eq.Type, eq.EstimatedEfficiency, sqFt, home.ClimateZone, rate, model.DefaultGasRate)
				fmt.Printf("%s %-22s %6.1f %-5s  ~$%.0f/yr  (%s)\n",
					cli.FormatGrade(string(g.Letter)), eq.Type, eq.EstimatedEfficiency,
					eq.Type.EfficiencyUnit(), cost, eq.Age)
				fmt.Println(cli.SubtleStyle.Render("   " + eq.ID.String()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID (required)")
	_ = cmd.MarkFlagRequired("home")
	return cmd
}

func equipmentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EQUIPMENT_ID",
		Short: "Delete an equipment item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg(args[0], "equipment")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteEquipment(ctx, id); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted equipment"))
			return nil
		},
	}
}
