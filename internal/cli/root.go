// Package cli provides the command-line interface for the growth calculator.
package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"growth-calculator/internal/config"
	"growth-calculator/internal/ledger"
	"growth-calculator/internal/logging"
	"growth-calculator/internal/models"
	"growth-calculator/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize SQLite store
	dataStore, err := store.NewSQLiteStore(config.DBPath(""))
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, changes will not be saved")
	} else {
		app.Store = dataStore
		logger.Debug().Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "growth",
		Short: "Trading growth calculator",
		Long: `Growth is a trading growth calculator.

Configure an account balance, profit target, default risk percentage and win
multiplier, then log trades one by one. Profit/loss, running balance, distance
to target and the suggested risk for the next trade are recomputed after every
change and saved locally.

Use 'growth help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addPlanCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addStatusCommands(rootCmd, app)
	addCoreCommands(rootCmd, app)

	return rootCmd
}

// loadLedger builds the ledger from the persisted plan and trade log. An
// empty store is seeded from the configured plan defaults.
func (a *App) loadLedger(ctx context.Context) (*ledger.Ledger, error) {
	if a.Store == nil {
		return ledger.New(a.defaultPlan()), nil
	}

	plan, err := a.Store.LoadPlan(ctx)
	if err != nil {
		return nil, err
	}
	if (plan == models.Plan{}) {
		plan = a.defaultPlan()
	}

	trades, err := a.Store.LoadTrades(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Load(plan, trades), nil
}

func (a *App) defaultPlan() models.Plan {
	return models.Plan{
		InitialBalance:    a.Config.Plan.InitialBalance,
		ProfitTarget:      a.Config.Plan.ProfitTarget,
		DefaultRiskPct:    a.Config.Plan.DefaultRiskPct,
		DefaultMultiplier: a.Config.Plan.DefaultMultiplier,
	}
}

// persist saves the ledger. Persistence is a side effect of every mutation,
// never a reason to fail one: errors are logged and the command proceeds.
func (a *App) persist(ctx context.Context, l *ledger.Ledger) {
	if a.Store == nil {
		return
	}
	if err := a.Store.SavePlan(ctx, l.Plan()); err != nil {
		logging.LogPersistFailure(a.Logger, "plan", err)
	}
	if err := a.Store.SaveTrades(ctx, l.Trades()); err != nil {
		logging.LogPersistFailure(a.Logger, "trades", err)
	}
}

func (a *App) currencySymbol() string {
	if a.Config != nil && a.Config.UI.CurrencySymbol != "" {
		return a.Config.UI.CurrencySymbol
	}
	return "$"
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("growth v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Plan Defaults")
			output.Printf("  Initial Balance:  %.2f\n", app.Config.Plan.InitialBalance)
			output.Printf("  Profit Target:    %.2f\n", app.Config.Plan.ProfitTarget)
			output.Printf("  Default Risk:     %.2f%%\n", app.Config.Plan.DefaultRiskPct)
			output.Printf("  Default R:        %.2f\n", app.Config.Plan.DefaultMultiplier)
			output.Println()
			output.Bold("UI")
			output.Printf("  Color:            %v\n", app.Config.UI.ColorEnabled)
			output.Printf("  Currency Symbol:  %s\n", app.Config.UI.CurrencySymbol)
			output.Println()
			output.Bold("Logging")
			output.Printf("  Level:            %s\n", app.Config.Logging.Level)
			output.Printf("  File:             %v\n", app.Config.Logging.File)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	return cmd
}
