// Package cli provides the command-line interface for the growth calculator.
package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "growth-calculator/internal/errors"
	"growth-calculator/internal/logging"
)

// addTradeCommands adds trade log commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newAddCmd(app))
	rootCmd.AddCommand(newOutcomeCmd(app))
	rootCmd.AddCommand(newEditCmd(app))
	rootCmd.AddCommand(newDeleteCmd(app))
	rootCmd.AddCommand(newLogCmd(app))
	rootCmd.AddCommand(newResetCmd(app))
}

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a pending trade",
		Long: `Append a pending trade to the log.

The win multiplier defaults to the plan default. The risk percentage is
pre-filled with the suggested risk for the current balance when the
suggestion is positive and below 50%, otherwise with the plan default.`,
		Example: `  growth add
  growth add --risk 1 --rr 6.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			riskPct, ok := parseAmountFlag(cmd, output, "risk")
			if !ok {
				return apperrors.ErrInputValidation
			}
			multiplier, ok := parseAmountFlag(cmd, output, "rr")
			if !ok {
				return apperrors.ErrInputValidation
			}

			t, err := l.Append(riskPct, multiplier)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			logging.LogMutation(app.Logger, "add", t.Position, l.Balance())
			app.persist(ctx, l)

			if output.IsJSON() {
				return output.JSON(t)
			}
			output.Success("Trade #%d added (pending).", t.Position)
			renderLedgerTable(output, app, l)
			return nil
		},
	}
	cmd.Flags().String("risk", "", "risk percentage (default: suggested risk)")
	cmd.Flags().String("rr", "", "win multiplier (default: plan default)")
	return cmd
}

func newOutcomeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "outcome <position> <win|partial|loss|be|pending>",
		Short: "Set a trade's outcome",
		Long: `Set the outcome of the trade at the given position.

Any outcome may replace any other. The trade and everything after it are
recomputed.`,
		Example: `  growth outcome 3 win
  growth outcome 3 partial
  growth outcome 1 pending`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			position, ok := parsePositionArg(output, args[0])
			if !ok {
				return apperrors.ErrInputValidation
			}
			outcome, ok := parseOutcomeArg(output, args[1])
			if !ok {
				return apperrors.ErrInvalidOutcome
			}

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			if err := l.SetOutcome(position, outcome); err != nil {
				output.Error("%v", err)
				return err
			}
			logging.LogMutation(app.Logger, "outcome", position, l.Balance())
			app.persist(ctx, l)

			if output.IsJSON() {
				return output.JSON(l.Trades())
			}
			output.Success("Trade #%d marked %s.", position, outcome)
			renderLedgerTable(output, app, l)
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <position>",
		Short: "Edit a trade's risk or win multiplier",
		Long: `Edit the risk percentage or win multiplier of the trade at the given
position. Invalid input is rejected and the previous value kept.`,
		Example: `  growth edit 2 --risk 0.5
  growth edit 2 --rr 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			position, ok := parsePositionArg(output, args[0])
			if !ok {
				return apperrors.ErrInputValidation
			}

			if !cmd.Flags().Changed("risk") && !cmd.Flags().Changed("rr") {
				output.Warning("Nothing to change. Pass --risk and/or --rr.")
				return nil
			}

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			if cmd.Flags().Changed("risk") {
				v, ok := parseAmountFlag(cmd, output, "risk")
				if !ok {
					return apperrors.ErrInputValidation
				}
				if err := l.SetRiskPct(position, v); err != nil {
					output.Error("%v. Previous value kept.", err)
					return err
				}
			}
			if cmd.Flags().Changed("rr") {
				v, ok := parseAmountFlag(cmd, output, "rr")
				if !ok {
					return apperrors.ErrInputValidation
				}
				if err := l.SetMultiplier(position, v); err != nil {
					output.Error("%v. Previous value kept.", err)
					return err
				}
			}
			logging.LogMutation(app.Logger, "edit", position, l.Balance())
			app.persist(ctx, l)

			if output.IsJSON() {
				return output.JSON(l.Trades())
			}
			output.Success("Trade #%d updated.", position)
			renderLedgerTable(output, app, l)
			return nil
		},
	}
	cmd.Flags().String("risk", "", "risk percentage")
	cmd.Flags().String("rr", "", "win multiplier")
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete a trade",
		Long:  "Delete the trade at the given position. Remaining trades are renumbered from 1 and recomputed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			position, ok := parsePositionArg(output, args[0])
			if !ok {
				return apperrors.ErrInputValidation
			}

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			if err := l.Delete(position); err != nil {
				output.Error("%v", err)
				return err
			}
			logging.LogMutation(app.Logger, "delete", position, l.Balance())
			app.persist(ctx, l)

			if output.IsJSON() {
				return output.JSON(l.Trades())
			}
			output.Success("Trade #%d deleted.", position)
			renderLedgerTable(output, app, l)
			return nil
		},
	}
}

func newLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the trade log",
		Long:  "Show the annotated trade log: balances, risk, P/L, distance to target and suggested next risk.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(l.Trades())
			}
			if l.Len() == 0 {
				output.Info("No trades yet. Use 'growth add' to log one.")
				return nil
			}
			renderLedgerTable(output, app, l)
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the trade log",
		Long:  "Delete every trade. With --plan the plan is also reset to the configured defaults.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				output.Warning("This deletes every logged trade. Re-run with --yes to confirm.")
				return nil
			}

			l, err := app.loadLedger(ctx)
			if err != nil {
				output.Error("Failed to load ledger: %v", err)
				return err
			}

			l.Clear()
			if resetPlan, _ := cmd.Flags().GetBool("plan"); resetPlan {
				if err := l.SetPlan(app.defaultPlan()); err != nil {
					output.Error("%v", err)
					return err
				}
			}
			logging.LogMutation(app.Logger, "reset", 0, l.Balance())
			app.persist(ctx, l)

			if output.IsJSON() {
				return output.JSON(l.Summarize())
			}
			output.Success("Trade log cleared.")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "confirm the reset")
	cmd.Flags().Bool("plan", false, "also reset the plan to configured defaults")
	return cmd
}

// parsePositionArg parses a 1-based trade position argument.
func parsePositionArg(output *Output, arg string) (int, bool) {
	position, err := strconv.Atoi(arg)
	if err != nil || position < 1 {
		output.Error("Invalid trade position: %q", arg)
		return 0, false
	}
	return position, true
}

// parseAmountFlag parses an optional non-negative numeric flag. An unset
// flag returns 0; an un-parsable or negative value is reported and rejected.
func parseAmountFlag(cmd *cobra.Command, output *Output, name string) (float64, bool) {
	if !cmd.Flags().Changed(name) {
		return 0, true
	}
	raw, _ := cmd.Flags().GetString(name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		output.Error("Invalid value for --%s: %q (must be a non-negative number). Previous value kept.", name, raw)
		return 0, false
	}
	return v, true
}
