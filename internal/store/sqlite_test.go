package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth-calculator/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPlanRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	plan := models.Plan{
		InitialBalance:    10000,
		ProfitTarget:      10800,
		DefaultRiskPct:    1,
		DefaultMultiplier: 6.5,
	}
	require.NoError(t, s.SavePlan(ctx, plan))

	got, err := s.LoadPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, plan, got)
}

func TestLoadPlanEmptyStore(t *testing.T) {
	s := newTestStore(t)

	plan, err := s.LoadPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Plan{}, plan)
}

func TestLoadPlanLenientValues(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Corrupt entries degrade to zero instead of failing the load.
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?), (?, ?)`,
		KeyInitialBalance, "not-a-number",
		KeyProfitTarget, "10,800")
	require.NoError(t, err)

	plan, err := s.LoadPlan(ctx)
	require.NoError(t, err)
	assert.Zero(t, plan.InitialBalance)
	assert.Equal(t, 10800.0, plan.ProfitTarget)
}

func TestSavePlanOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SavePlan(ctx, models.Plan{InitialBalance: 1000}))
	require.NoError(t, s.SavePlan(ctx, models.Plan{InitialBalance: 2500, DefaultRiskPct: 2}))

	plan, err := s.LoadPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, plan.InitialBalance)
	assert.Equal(t, 2.0, plan.DefaultRiskPct)
}

func TestTradesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	trades := []models.Trade{
		{ID: "a", Position: 1, Outcome: models.OutcomeWin, RiskPct: 1, Multiplier: 6.5, CreatedAt: now},
		{ID: "b", Position: 2, Outcome: models.OutcomePending, RiskPct: 0.5, Multiplier: 2, CreatedAt: now},
	}
	require.NoError(t, s.SaveTrades(ctx, trades))

	got, err := s.LoadTrades(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range trades {
		assert.Equal(t, trades[i].ID, got[i].ID)
		assert.Equal(t, trades[i].Outcome, got[i].Outcome)
		assert.Equal(t, trades[i].RiskPct, got[i].RiskPct)
		assert.Equal(t, trades[i].Multiplier, got[i].Multiplier)
	}
}

func TestSaveTradesReplaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, s.SaveTrades(ctx, []models.Trade{
		{ID: "a", Position: 1, Outcome: models.OutcomeWin, CreatedAt: now},
		{ID: "b", Position: 2, Outcome: models.OutcomeLoss, CreatedAt: now},
		{ID: "c", Position: 3, Outcome: models.OutcomePending, CreatedAt: now},
	}))

	// Deleting the middle trade persists as a full rewrite.
	require.NoError(t, s.SaveTrades(ctx, []models.Trade{
		{ID: "a", Position: 1, Outcome: models.OutcomeWin, CreatedAt: now},
		{ID: "c", Position: 2, Outcome: models.OutcomePending, CreatedAt: now},
	}))

	got, err := s.LoadTrades(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestLoadTradesOrdersByPosition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, s.SaveTrades(ctx, []models.Trade{
		{ID: "second", Position: 2, Outcome: models.OutcomeWin, CreatedAt: now},
		{ID: "first", Position: 1, Outcome: models.OutcomeLoss, CreatedAt: now},
	}))

	got, err := s.LoadTrades(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
}

func TestLoadTradesUnknownOutcome(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.Exec(`INSERT INTO trades (id, position, outcome, risk_pct, multiplier, created_at)
		VALUES ('x', 1, 'MYSTERY', 'oops', '2', ?)`, time.Now())
	require.NoError(t, err)

	got, err := s.LoadTrades(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.OutcomePending, got[0].Outcome)
	assert.Zero(t, got[0].RiskPct)
	assert.Equal(t, 2.0, got[0].Multiplier)
}
