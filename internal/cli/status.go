// Package cli provides the command-line interface for the growth calculator.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"growth-calculator/internal/ledger"
	"growth-calculator/internal/models"
	"growth-calculator/pkg/utils"
)

// addStatusCommands adds the status command.
func addStatusCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newStatusCmd(app))
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show account status",
		Long:  "Show the current balance, net P/L, distance to target and the suggested risk for the next trade.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			s := l.Summarize()
			if output.IsJSON() {
				return output.JSON(s)
			}

			sym := app.currencySymbol()
			output.Bold("Account Status")
			output.Printf("  Balance:        %s\n", utils.FormatCurrency(sym, s.Balance))
			output.Printf("  Net P/L:        %s (%s)\n",
				output.ColoredString(output.PnLColor(s.NetPL), utils.FormatPnL(sym, s.NetPL)),
				utils.FormatPercent(s.NetPLPct))
			output.Printf("  Target:         %s\n", utils.FormatCurrency(sym, s.Target))
			if s.TargetReached {
				output.Printf("  To Target:      %s\n", output.Green("reached"))
			} else {
				output.Printf("  To Target:      %s\n", utils.FormatCurrency(sym, s.DistanceToTarget))
			}
			output.Println()

			output.Bold("Trades")
			output.Printf("  Logged:         %d\n", s.Trades)
			output.Printf("  Wins:           %d (+%d partial)\n", s.Wins, s.PartialWins)
			output.Printf("  Losses:         %d\n", s.Losses)
			output.Printf("  Breakeven:      %d\n", s.Breakeven)
			output.Printf("  Pending:        %d\n", s.Pending)
			output.Println()

			if s.SuggestedRisk != nil {
				output.Info("Suggested risk for the next trade: %s at %s",
					utils.FormatRiskPercent(*s.SuggestedRisk),
					utils.FormatMultiplier(l.Plan().DefaultMultiplier))
			} else if s.TargetReached {
				output.Success("Profit target reached.")
			}
			return nil
		},
	}
}

// renderLedgerTable renders the annotated trade log.
func renderLedgerTable(output *Output, app *App, l *ledger.Ledger) {
	if l.Len() == 0 {
		return
	}

	sym := app.currencySymbol()
	table := NewTable(output, "#", "Outcome", "Start", "Risk %", "Risk", "R", "P/L", "End", "To Target", "Next Risk")
	for _, t := range l.Trades() {
		nextRisk := output.DimText("-")
		if t.SuggestedNextRisk != nil {
			nextRisk = utils.FormatRiskPercent(*t.SuggestedNextRisk)
		}
		table.AddRow(
			fmt.Sprintf("%d", t.Position),
			renderOutcome(output, t.Outcome),
			utils.FormatCurrency(sym, t.StartBalance),
			utils.FormatRiskPercent(t.RiskPct),
			utils.FormatCurrency(sym, t.RiskAmount),
			utils.FormatMultiplier(t.Multiplier),
			output.ColoredString(output.PnLColor(t.FloatingPL), utils.FormatPnL(sym, t.FloatingPL)),
			utils.FormatCurrency(sym, t.EndBalance),
			utils.FormatCurrency(sym, t.DistanceToTarget),
			nextRisk,
		)
	}
	table.Render()
}

func renderOutcome(output *Output, outcome models.Outcome) string {
	switch outcome {
	case models.OutcomeWin:
		return output.Green("WIN")
	case models.OutcomePartialWin:
		return output.Green("PARTIAL")
	case models.OutcomeLoss:
		return output.Red("LOSS")
	case models.OutcomeBreakeven:
		return output.Yellow("BE")
	default:
		return output.DimText("PENDING")
	}
}
