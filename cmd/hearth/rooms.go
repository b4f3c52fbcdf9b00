package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/hearthaudit/hearth/internal/cli"
	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/thermal"
)

func roomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage rooms and their cooling loads",
	}
	cmd.AddCommand(roomsAddCmd())
	cmd.AddCommand(roomsListCmd())
	cmd.AddCommand(roomsDeleteCmd())
	return cmd
}

type roomInput struct {
	Home       string  `validate:"required"`
	Name       string  `validate:"required,max=120"`
	Climate    string  `validate:"omitempty,oneof=Hot Moderate Cold"`
	Insulation string  `validate:"omitempty,oneof=Poor Average Good Unknown"`
	SqFt       float64 `validate:"gt=0,lte=10000"`
	Ceiling    int     `validate:"oneof=8 9 10 12"`
}

func roomsAddCmd() *cobra.Command {
	var in roomInput
	var windowSpecs []string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a room",
		Long: `Add a room to a home. Windows are specified with repeated --window
flags of the form DIRECTION,SIZE[,PANE[,FRAME[,CONDITION]]], e.g.:

  hearth rooms add "Living Room" --home "Maple St" --sqft 320 \
      --window south,large,double,vinyl,good --window west,medium`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			if err := validator.New().Struct(in); err != nil {
				return fmt.Errorf("invalid room: %w", err)
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

			room := model.Room{
				HomeID:        home.ID,
				Name:          in.Name,
				SquareFootage: in.SqFt,
				CeilingHeight: model.ParseCeilingHeight(in.Ceiling),
				ClimateZone:   home.ClimateZone,
				Insulation:    model.ParseInsulationQuality(in.Insulation),
			}
			if in.Climate != "" {
				room.ClimateZone = model.ParseClimateZone(in.Climate)
			}
			for _, spec := range windowSpecs {
				w, err := parseWindowSpec(spec)
				if err != nil {
					return err
				}
				room.Windows = append(room.Windows, w)
			}

			b := thermal.CalculateRoom(room)
			room.CalculatedBTU = b.FinalBTU
			room.CalculatedTonnage = b.Tonnage

			if err := store.SaveRoom(ctx, &room); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added room %q", room.Name)))
			fmt.Printf("  Cooling load: %s BTU/hr (%.1f tons)\n", formatBTU(b.FinalBTU), b.Tonnage)
			if len(room.Windows) > 0 {
				fmt.Printf("  Window gain:  %.0f%% of load\n", b.WindowHeatGainPercentage())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Home, "home", "", "home name or ID (required)")
	cmd.Flags().Float64Var(&in.SqFt, "sqft", 0, "room square footage (required)")
	cmd.Flags().IntVar(&in.Ceiling, "ceiling", 8, "ceiling height in feet (8, 9, 10, 12)")
	cmd.Flags().StringVar(&in.Climate, "climate", "", "override the home's climate zone")
	cmd.Flags().StringVar(&in.Insulation, "insulation", "Average", "insulation quality (Poor, Average, Good)")
	cmd.Flags().StringArrayVar(&windowSpecs, "window", nil, "window spec: direction,size[,pane[,frame[,condition]]]")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("sqft")

	return cmd
}

// parseWindowSpec decodes direction,size[,pane[,frame[,condition]]].
// Tokens are case-insensitive; omitted fields take the standard window
// defaults. An unrecognized token is an error, never a silent default.
func parseWindowSpec(spec string) (model.Window, error) {
	parts := strings.Split(spec, ",")
	if len(parts) < 2 || len(parts) > 5 {
		return model.Window{}, fmt.Errorf("window spec %q: want direction,size[,pane[,frame[,condition]]]", spec)
	}

	w := model.NewWindow()
	var err error
	if w.Direction, err = windowDirectionToken(parts[0]); err != nil {
		return model.Window{}, fmt.Errorf("window spec %q: %w", spec, err)
	}
	if w.Size, err = windowSizeToken(parts[1]); err != nil {
		return model.Window{}, fmt.Errorf("window spec %q: %w", spec, err)
	}
	if len(parts) > 2 {
		if w.Pane, err = windowPaneToken(parts[2]); err != nil {
			return model.Window{}, fmt.Errorf("window spec %q: %w", spec, err)
		}
	}
	if len(parts) > 3 {
		if w.Frame, err = windowFrameToken(parts[3]); err != nil {
			return model.Window{}, fmt.Errorf("window spec %q: %w", spec, err)
		}
	}
	if len(parts) > 4 {
		if w.Condition, err = windowConditionToken(parts[4]); err != nil {
			return model.Window{}, fmt.Errorf("window spec %q: %w", spec, err)
		}
	}
	return w, nil
}

func windowDirectionToken(s string) (model.CardinalDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return model.DirectionNorth, nil
	case "s", "south":
		return model.DirectionSouth, nil
	case "e", "east":
		return model.DirectionEast, nil
	case "w", "west":
		return model.DirectionWest, nil
	}
	return "", fmt.Errorf("unknown direction %q (want north, south, east, or west)", strings.TrimSpace(s))
}

func windowSizeToken(s string) (model.WindowSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return model.WindowSmall, nil
	case "medium":
		return model.WindowMedium, nil
	case "large":
		return model.WindowLarge, nil
	}
	return "", fmt.Errorf("unknown size %q (want small, medium, or large)", strings.TrimSpace(s))
}

func windowPaneToken(s string) (model.PaneType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return model.PaneSingle, nil
	case "double":
		return model.PaneDouble, nil
	case "triple":
		return model.PaneTriple, nil
	}
	return "", fmt.Errorf("unknown pane type %q (want single, double, or triple)", strings.TrimSpace(s))
}

func windowFrameToken(s string) (model.FrameMaterial, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aluminum":
		return model.FrameAluminum, nil
	case "wood":
		return model.FrameWood, nil
	case "vinyl":
		return model.FrameVinyl, nil
	case "fiberglass":
		return model.FrameFiberglass, nil
	case "composite":
		return model.FrameComposite, nil
	}
	return "", fmt.Errorf("unknown frame material %q (want aluminum, wood, vinyl, fiberglass, or composite)", strings.TrimSpace(s))
}

func windowConditionToken(s string) (model.WindowCondition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good":
		return model.ConditionGood, nil
	case "fair":
		return model.ConditionFair, nil
	case "poor":
		return model.ConditionPoor, nil
	}
	return "", fmt.Errorf("unknown condition %q (want good, fair, or poor)", strings.TrimSpace(s))
}

func formatBTU(btu float64) string {
	if btu >= 1000 {
		return fmt.Sprintf("%.1fk", btu/1000)
	}
	return fmt.Sprintf("%.0f", btu)
}

func roomsListCmd() *cobra.Command {
	var homeRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a home's rooms",
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
			if len(home.Rooms) == 0 {
				fmt.Println(cli.FormatInfo("No rooms yet. Add one with 'hearth rooms add'."))
				return nil
			}

			fmt.Println(cli.FormatTitle(home.Name + " rooms"))
			var totalBTU, totalTons float64
			for _, r := range home.Rooms {
				b := thermal.CalculateRoom(r)
				totalBTU += b.FinalBTU
				totalTons += b.Tonnage
				fmt.Printf("%-20s %7.0f sq ft  %s BTU/hr  %.1f tons  %d windows\n",
					r.Name, r.SquareFootage, formatBTU(b.FinalBTU), b.Tonnage, len(r.Windows))
				fmt.Println(cli.SubtleStyle.Render("   " + r.ID.String()))
			}
			fmt.Printf("\n%s Total: %s BTU/hr, %.1f tons\n", cli.BoltIcon, formatBTU(totalBTU), totalTons)
			return nil
		},
	}

	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID (required)")
	_ = cmd.MarkFlagRequired("home")
	return cmd
}

func roomsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ROOM_ID",
		Short: "Delete a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg(args[0], "room")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteRoom(ctx, id); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted room"))
			return nil
		},
	}
}
