package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/hearthaudit/hearth/internal/cli"
	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/profile"
)

func envelopeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envelope",
		Short: "Assess the building envelope",
	}
	cmd.AddCommand(envelopeSetCmd())
	cmd.AddCommand(envelopeShowCmd())
	return cmd
}

type envelopeInput struct {
	Home             string `validate:"required"`
	Attic            string `validate:"oneof=Poor Average Good Unknown"`
	Walls            string `validate:"oneof=Poor Average Good Unknown"`
	Basement         string `validate:"oneof=Uninsulated Partial Full"`
	AirSealing       string `validate:"oneof=Good Fair Poor"`
	Weatherstripping string `validate:"oneof=Good Fair Poor"`
	Notes            string `validate:"max=500"`
}

func envelopeSetCmd() *cobra.Command {
	var in envelopeInput

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record the envelope questionnaire answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validator.New().Struct(in); err != nil {
				return fmt.Errorf("invalid envelope assessment: %w", err)
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

			env := model.EnvelopeInfo{
				AtticInsulation:  model.ParseInsulationQuality(in.Attic),
				WallInsulation:   model.ParseInsulationQuality(in.Walls),
				Basement:         in.Basement,
				AirSealing:       in.AirSealing,
				Weatherstripping: in.Weatherstripping,
				Notes:            in.Notes,
			}
			if err := store.SaveEnvelope(ctx, home.ID, &env); err != nil {
				return err
			}

			score := profile.ScoreEnvelope(&env)
			fmt.Println(cli.FormatSuccess("Envelope assessment saved"))
			printEnvelopeScore(score)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Home, "home", "", "home name or ID (required)")
	cmd.Flags().StringVar(&in.Attic, "attic", "Unknown", "attic insulation (Poor, Average, Good)")
	cmd.Flags().StringVar(&in.Walls, "walls", "Unknown", "wall insulation (Poor, Average, Good)")
	cmd.Flags().StringVar(&in.Basement, "basement", "Partial", "basement insulation (Uninsulated, Partial, Full)")
	cmd.Flags().StringVar(&in.AirSealing, "air-sealing", "Fair", "air sealing quality (Good, Fair, Poor)")
	cmd.Flags().StringVar(&in.Weatherstripping, "weatherstripping", "Fair", "weatherstripping quality (Good, Fair, Poor)")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("home")

	return cmd
}

func envelopeShowCmd() *cobra.Command {
	var homeRef string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the envelope score",
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
			if home.Envelope == nil {
				fmt.Println(cli.FormatInfo("Envelope not assessed yet. Run 'hearth envelope set'."))
				return nil
			}

			fmt.Println(cli.FormatTitle(home.Name + " envelope"))
			printEnvelopeScore(profile.ScoreEnvelope(home.Envelope))
			return nil
		},
	}

	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID (required)")
	_ = cmd.MarkFlagRequired("home")
	return cmd
}

func printEnvelopeScore(score *profile.EnvelopeScore) {
	if score == nil {
		return
	}
	fmt.Printf("  Grade %s (%.0f/100)\n", cli.FormatGrade(string(score.Grade)), score.Score)
	for _, d := range score.Details {
		fmt.Println("  " + d)
	}
	if score.WeakestArea != "" {
		fmt.Println(cli.WarningStyle.Render("  Weakest area: " + score.WeakestArea))
	}
}
