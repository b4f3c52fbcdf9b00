package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthaudit/hearth/internal/cli"
	"github.com/hearthaudit/hearth/internal/common"
	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/rebate"
)

func rebatesCmd() *cobra.Command {
	var stateFlag, homeRef string

	cmd := &cobra.Command{
		Use:   "rebates",
		Short: "List rebate programs for a state",
		Long: `List rebate programs. With --state alone, every program in that
state is shown. With --home, programs are filtered to the home's
logged equipment and the home's state is used unless --state
overrides it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var programs []rebate.Program
			stateCode := stateFlag

			if homeRef != "" {
				store, err := initStorage(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				home, err := resolveHome(ctx, store, homeRef)
				if err != nil {
					return err
				}
				if stateCode == "" {
					stateCode = home.State
				}
				state, ok := model.ParseUSState(stateCode)
				if !ok {
					return common.NewUserError(fmt.Sprintf("no rebate data for state %q", stateCode), common.ErrUnknownState)
				}

				types := make([]model.EquipmentType, 0, len(home.Equipment))
				for _, eq := range home.Equipment {
					types = append(types, eq.Type)
				}
				if programs, err = rebate.Match(state, types); err != nil {
					return err
				}
			} else {
				state, ok := model.ParseUSState(stateCode)
				if !ok {
					return common.NewUserError(
						fmt.Sprintf("no rebate data for state %q; covered states: %s", stateCode, coveredStates()),
						common.ErrUnknownState)
				}
				var err error
				if programs, err = rebate.ForState(state); err != nil {
					return err
				}
			}

			if len(programs) == 0 {
				fmt.Println(cli.FormatInfo("No matching rebate programs found"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Rebate programs"))
			for _, p := range programs {
				fmt.Printf("%s %s  %s\n", cli.MoneyIcon, cli.BoldStyle.Render(p.Title), p.Amount)
				fmt.Println("   " + p.Description)
				fmt.Println(cli.SubtleStyle.Render("   " + p.ProgramName + " · " + p.URL))
			}
			fmt.Println()
			fmt.Println(cli.SubtleStyle.Render("Amounts are program maximums; terms vary by income, model, and season."))
			return nil
		},
	}

	cmd.Flags().StringVar(&stateFlag, "state", "", "two-letter state code")
	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID to match equipment against")
	return cmd
}

func coveredStates() string {
	out := ""
	for i, s := range model.USStates {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}
