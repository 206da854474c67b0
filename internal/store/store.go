// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"growth-calculator/internal/models"
)

// Settings keys. The names match the original calculator's saved state, so
// a plan written by one version remains readable by the next.
const (
	KeyInitialBalance    = "initialBalance"
	KeyProfitTarget      = "profitTarget"
	KeyDefaultRiskPct    = "defaultRiskPercentage"
	KeyDefaultMultiplier = "defaultWinMultiplier"
)

// DataStore defines the interface for data persistence. Plan values travel
// as decimal strings through a key-value settings table; the trade log is
// persisted without derived fields, which are recomputed on load.
type DataStore interface {
	LoadPlan(ctx context.Context) (models.Plan, error)
	SavePlan(ctx context.Context, plan models.Plan) error

	LoadTrades(ctx context.Context) ([]models.Trade, error)
	SaveTrades(ctx context.Context, trades []models.Trade) error

	Close() error
}
