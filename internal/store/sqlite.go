// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "growth-calculator/internal/errors"
	"growth-calculator/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-writer CLI; one connection avoids lock contention entirely.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Plan values as decimal strings, keyed by the original setting names
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Trade log; derived balances are recomputed on load, never stored
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		risk_pct TEXT NOT NULL,
		multiplier TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_trades_position ON trades(position);
	`
	_, err := s.db.Exec(schema)
	return err
}

// LoadPlan reads the plan from the settings table. Missing keys and
// un-parsable values degrade to zero; they never fail the load.
func (s *SQLiteStore) LoadPlan(ctx context.Context) (models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := map[string]string{}
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return models.Plan{}, apperrors.NewStoreError("load", "settings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return models.Plan{}, apperrors.NewStoreError("load", "settings", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return models.Plan{}, apperrors.NewStoreError("load", "settings", err)
	}

	return models.Plan{
		InitialBalance:    models.ParseAmount(values[KeyInitialBalance]),
		ProfitTarget:      models.ParseAmount(values[KeyProfitTarget]),
		DefaultRiskPct:    models.ParseAmount(values[KeyDefaultRiskPct]),
		DefaultMultiplier: models.ParseAmount(values[KeyDefaultMultiplier]),
	}, nil
}

// SavePlan writes all four plan values as decimal strings.
func (s *SQLiteStore) SavePlan(ctx context.Context, plan models.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStoreError("save", "settings", err)
	}
	defer tx.Rollback()

	stmt := `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	now := time.Now()
	pairs := map[string]float64{
		KeyInitialBalance:    plan.InitialBalance,
		KeyProfitTarget:      plan.ProfitTarget,
		KeyDefaultRiskPct:    plan.DefaultRiskPct,
		KeyDefaultMultiplier: plan.DefaultMultiplier,
	}
	for key, value := range pairs {
		if _, err := tx.ExecContext(ctx, stmt, key, models.FormatAmount(value), now); err != nil {
			return apperrors.NewStoreError("save", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStoreError("save", "settings", err)
	}
	return nil
}

// LoadTrades reads the trade log in position order. Unknown outcomes load
// as PENDING and bad numeric strings as zero, matching the lenient policy
// for plan values.
func (s *SQLiteStore) LoadTrades(ctx context.Context) ([]models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, outcome, risk_pct, multiplier, created_at FROM trades ORDER BY position ASC`)
	if err != nil {
		return nil, apperrors.NewStoreError("load", "trades", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		var outcome, riskPct, multiplier string
		if err := rows.Scan(&t.ID, &outcome, &riskPct, &multiplier, &t.CreatedAt); err != nil {
			return nil, apperrors.NewStoreError("load", "trades", err)
		}
		o, ok := models.ParseOutcome(outcome)
		if !ok {
			o = models.OutcomePending
		}
		t.Outcome = o
		t.RiskPct = models.ParseAmount(riskPct)
		t.Multiplier = models.ParseAmount(multiplier)
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("load", "trades", err)
	}
	return trades, nil
}

// SaveTrades replaces the persisted trade log with the given sequence.
func (s *SQLiteStore) SaveTrades(ctx context.Context, trades []models.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStoreError("save", "trades", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades`); err != nil {
		return apperrors.NewStoreError("save", "trades", err)
	}

	stmt := `INSERT INTO trades (id, position, outcome, risk_pct, multiplier, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, t := range trades {
		_, err := tx.ExecContext(ctx, stmt,
			t.ID, t.Position, string(t.Outcome),
			models.FormatAmount(t.RiskPct), models.FormatAmount(t.Multiplier), t.CreatedAt)
		if err != nil {
			return apperrors.NewStoreError("save", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStoreError("save", "trades", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
