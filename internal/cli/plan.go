// Package cli provides the command-line interface for the growth calculator.
package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	apperrors "growth-calculator/internal/errors"
	"growth-calculator/internal/logging"
	"growth-calculator/internal/models"
	"growth-calculator/pkg/utils"
)

const commandTimeout = 10 * time.Second

// addPlanCommands adds plan management commands.
func addPlanCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "View and edit the account plan",
		Long:  "View and edit the initial balance, profit target, default risk percentage and default win multiplier.",
	}

	cmd.AddCommand(newPlanShowCmd(app))
	cmd.AddCommand(newPlanSetCmd(app))

	rootCmd.AddCommand(cmd)
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			plan := l.Plan()
			if output.IsJSON() {
				return output.JSON(plan)
			}

			sym := app.currencySymbol()
			output.Bold("Account Plan")
			output.Printf("  Initial Balance:   %s\n", utils.FormatCurrency(sym, plan.InitialBalance))
			output.Printf("  Profit Target:     %s", utils.FormatCurrency(sym, plan.Target()))
			if plan.ProfitTarget <= 0 {
				output.Printf(" %s", output.DimText("(default: +8%)"))
			}
			output.Println()
			output.Printf("  Default Risk:      %s\n", utils.FormatRiskPercent(plan.DefaultRiskPct))
			output.Printf("  Default Win R:     %s\n", utils.FormatMultiplier(plan.DefaultMultiplier))
			return nil
		},
	}
}

func newPlanSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit plan values",
		Long: `Edit one or more plan values.

Only the flags you pass change; everything else is kept. Any change
recomputes the whole trade log against the new plan.`,
		Example: `  growth plan set --balance 10000
  growth plan set --target 10800 --risk 1 --rr 6.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			plan := l.Plan()
			changed := false
			set := func(flag string, dst *float64) error {
				if !cmd.Flags().Changed(flag) {
					return nil
				}
				raw, _ := cmd.Flags().GetString(flag)
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil || v < 0 {
					output.Error("Invalid value for --%s: %q (must be a non-negative number). Previous value kept.", flag, raw)
					return apperrors.ErrInputValidation
				}
				*dst = v
				changed = true
				return nil
			}

			if err := set("balance", &plan.InitialBalance); err != nil {
				return err
			}
			if err := set("target", &plan.ProfitTarget); err != nil {
				return err
			}
			if err := set("risk", &plan.DefaultRiskPct); err != nil {
				return err
			}
			if err := set("rr", &plan.DefaultMultiplier); err != nil {
				return err
			}

			if !changed {
				output.Warning("Nothing to change. Pass at least one of --balance, --target, --risk, --rr.")
				return nil
			}

			if err := l.SetPlan(plan); err != nil {
				output.Error("%v. Previous plan kept.", err)
				return err
			}
			logging.LogMutation(app.Logger, "plan", 0, l.Balance())
			app.persist(ctx, l)

			if output.IsJSON() {
				return output.JSON(l.Plan())
			}
			output.Success("Plan updated.")
			renderLedgerTable(output, app, l)
			return nil
		},
	}

	// String flags so un-parsable input is rejected at the edit boundary
	// with the prior value retained, instead of failing flag parsing.
	cmd.Flags().String("balance", "", "initial account balance")
	cmd.Flags().String("target", "", "profit target (0 = 8% above initial balance)")
	cmd.Flags().String("risk", "", "default risk percentage per trade")
	cmd.Flags().String("rr", "", "default reward-to-risk win multiplier")
	return cmd
}

// parseOutcomeArg parses an outcome argument, reporting the valid spellings
// on failure.
func parseOutcomeArg(output *Output, arg string) (models.Outcome, bool) {
	outcome, ok := models.ParseOutcome(arg)
	if !ok {
		output.Error("Unknown outcome %q. Use one of: win, partial, loss, be, pending.", arg)
	}
	return outcome, ok
}
