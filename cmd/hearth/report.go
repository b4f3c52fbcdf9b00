package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthaudit/hearth/internal/cli"
	"github.com/hearthaudit/hearth/internal/report"
	"github.com/hearthaudit/hearth/internal/upgrade"
)

func reportCmd() *cobra.Command {
	var homeRef, format string
	var showAllTiers bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the full audit report for a home",
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

			r, err := report.Generate(*home)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			case "table":
				printReport(r, showAllTiers)
				return nil
			default:
				return fmt.Errorf("unknown format %q: want table or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&homeRef, "home", "", "home name or ID (required)")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	cmd.Flags().BoolVar(&showAllTiers, "all-tiers", false, "show Good and Better upgrade tiers, not just Best")
	_ = cmd.MarkFlagRequired("home")
	return cmd
}

func printReport(r report.Report, showAllTiers bool) {
	fmt.Println(cli.FormatTitle("Energy Audit: " + r.Home.Name))

	// Checklist progress
	fmt.Printf("Audit progress: %.0f%%", r.Checklist.ProgressPercent())
	if step, ok := r.Checklist.FirstIncomplete(); ok {
		fmt.Printf("  (next: %s)", step)
	}
	fmt.Println()
	fmt.Println()

	// Home grade
	fmt.Printf("%s Home grade: %s", cli.HomeIcon, cli.FormatGrade(string(r.HomeGrade.Letter)))
	if r.HomeGrade.Summary != "" {
		fmt.Printf("  %s", cli.SubtleStyle.Render(r.HomeGrade.Summary))
	}
	fmt.Println()

	// Cooling loads
	if len(r.Rooms) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Cooling loads"))
		for _, rl := range r.Rooms {
			fmt.Printf("  %-20s %8.0f BTU/hr  %.1f tons\n", rl.Room.Name, rl.Breakdown.FinalBTU, rl.Breakdown.Tonnage)
		}
		fmt.Printf("  %-20s %8.0f BTU/hr  %.1f tons\n", "Total", r.TotalBTU, r.TotalTonnage)
	}

	// Profile breakdown
	if len(r.Profile.Breakdown) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Where the money goes (~$%.0f/yr)", r.Profile.TotalEstimatedAnnualCost)))
		for _, c := range r.Profile.Breakdown {
			fmt.Printf("  %s %-16s $%6.0f/yr  %4.1f%%\n", c.Icon, c.Name, c.AnnualCost, c.Percentage)
		}
	}
	if len(r.Profile.TopConsumers) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Top consumers"))
		for i, c := range r.Profile.TopConsumers {
			fmt.Printf("  %d. %s %-24s $%.0f/yr\n", i+1, c.Icon, c.Name, c.AnnualCost)
		}
	}
	if bc := r.Profile.BillComparison; bc != nil {
		fmt.Println()
		fmt.Printf("Estimate vs. bills: %s (%.0f%% gap, bills %.0f kWh/yr vs. estimate %.0f kWh/yr)\n",
			bc.AccuracyLabel, bc.GapPercentage, bc.BillAnnualKWh, bc.EstimatedAnnualKWh)
	}

	// Envelope
	if env := r.Profile.EnvelopeScore; env != nil {
		fmt.Println()
		fmt.Printf("%s Envelope: %s (%.0f/100)", cli.LeafIcon, cli.FormatGrade(string(env.Grade)), env.Score)
		if env.WeakestArea != "" {
			fmt.Printf("  weakest: %s", env.WeakestArea)
		}
		fmt.Println()
	}

	// Equipment and upgrades
	if len(r.Equipment) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Equipment"))
		for _, ea := range r.Equipment {
			fmt.Printf("  %s %-22s %6.1f %-5s  ~$%.0f/yr\n",
				cli.FormatGrade(string(ea.Grade.Letter)), ea.Equipment.Type,
				ea.Equipment.EstimatedEfficiency, ea.Equipment.Type.EfficiencyUnit(), ea.AnnualCost)
			for _, rec := range ea.Recommendations {
				if !showAllTiers && rec.Tier != upgrade.TierBest {
					continue
				}
				printRecommendation(rec)
			}
		}
	}

	// Tax credit totals
	if r.TaxCredits.GrandTotal > 0 {
		fmt.Println()
		fmt.Printf("%s Federal tax credits on Best-tier upgrades: $%.0f (25C: $%.0f, 25D: $%.0f)\n",
			cli.MoneyIcon, r.TaxCredits.GrandTotal, r.TaxCredits.Total25C, r.TaxCredits.Total25D)
	}

	// Rebates
	if len(r.Rebates) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Rebates in %s", r.Home.State)))
		for _, p := range r.Rebates {
			fmt.Printf("  %s (%s): %s\n", p.Title, p.ProgramName, p.Amount)
			fmt.Println(cli.SubtleStyle.Render("    " + p.URL))
		}
	}

	// Quick wins
	if len(r.Tips) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Quick wins"))
		for _, tip := range r.Tips {
			line := "  • " + tip.Title
			if tip.EstimatedSavings > 0 {
				line += fmt.Sprintf(" (~$%.0f/yr)", tip.EstimatedSavings)
			}
			fmt.Println(line)
			fmt.Println(cli.SubtleStyle.Render("    " + tip.Detail))
		}
	}

	// Battery synergy
	if bs := r.BatterySynergy; bs != nil && bs.ExportableGainKW > 0.01 {
		fmt.Println()
		fmt.Printf("%s With a battery: upgrades free ~%.1f kW of base load for export, worth $%.0f-$%.0f/yr in VPP programs\n",
			cli.BoltIcon, bs.ExportableGainKW, bs.AnnualRevenueLowUSD, bs.AnnualRevenueHighUSD)
	}
}

func printRecommendation(rec upgrade.Recommendation) {
	status := ""
	if rec.AlreadyMeetsThisTier {
		status = cli.SubtleStyle.Render(" (already meets)")
	}
	fmt.Printf("      [%s] %s: %s, $%.0f-%.0f%s\n",
		rec.Tier, rec.Title, rec.UpgradeTarget, rec.CostLow, rec.CostHigh, status)

	parts := []string{fmt.Sprintf("saves ~$%.0f/yr", rec.AnnualSavings)}
	if rec.TaxCreditEligible {
		parts = append(parts, fmt.Sprintf("$%.0f tax credit", rec.TaxCreditAmount))
	}
	if rec.EffectivePaybackYears != nil {
		parts = append(parts, fmt.Sprintf("%.1f yr payback after credit", *rec.EffectivePaybackYears))
	} else if rec.PaybackYears != nil {
		parts = append(parts, fmt.Sprintf("%.1f yr payback", *rec.PaybackYears))
	}
	fmt.Println(cli.SubtleStyle.Render("        " + strings.Join(parts, ", ")))
}
