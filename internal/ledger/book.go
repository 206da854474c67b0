package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"

	apperrors "growth-calculator/internal/errors"
	"growth-calculator/internal/models"
)

// maxSeedRiskPct is the sanity ceiling for pre-filling a new trade's risk
// from the current suggestion. Above it the plan default is used instead.
const maxSeedRiskPct = 50

// Ledger owns a plan and its ordered trade sequence. Every mutation is
// followed synchronously by a full recompute, so the trades it exposes are
// always consistent. It is not safe for concurrent use; the CLI is the only
// caller and is single-threaded.
type Ledger struct {
	plan   models.Plan
	trades []models.Trade
}

// New creates an empty ledger for the given plan.
func New(plan models.Plan) *Ledger {
	return &Ledger{plan: plan}
}

// Load builds a ledger from persisted trades, recomputing every derived
// field. Stored positions are ignored; sequence order is authoritative.
func Load(plan models.Plan, trades []models.Trade) *Ledger {
	return &Ledger{
		plan:   plan,
		trades: Recompute(plan, trades),
	}
}

// Plan returns the current plan.
func (l *Ledger) Plan() models.Plan {
	return l.plan
}

// SetPlan replaces the plan and recomputes the sequence. Negative or
// non-finite fields are rejected and the prior plan retained.
func (l *Ledger) SetPlan(plan models.Plan) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"initial balance", plan.InitialBalance},
		{"profit target", plan.ProfitTarget},
		{"default risk percentage", plan.DefaultRiskPct},
		{"default win multiplier", plan.DefaultMultiplier},
	}
	for _, f := range fields {
		if f.value < 0 || !isFinite(f.value) {
			return apperrors.NewValidationError(f.name, f.value, "must be a non-negative number")
		}
	}
	l.plan = plan
	l.recompute()
	return nil
}

// Trades returns a copy of the annotated trade sequence.
func (l *Ledger) Trades() []models.Trade {
	out := make([]models.Trade, len(l.trades))
	copy(out, l.trades)
	return out
}

// Len returns the number of trades.
func (l *Ledger) Len() int {
	return len(l.trades)
}

// Balance returns the ledger's current ending balance: the last trade's end
// balance, or the plan's initial balance when the ledger is empty.
func (l *Ledger) Balance() float64 {
	if n := len(l.trades); n > 0 {
		return l.trades[n-1].EndBalance
	}
	return l.plan.InitialBalance
}

// SuggestedRisk returns the risk suggestion for the next trade at the
// given multiplier, applied to the current ending balance.
func (l *Ledger) SuggestedRisk(multiplier float64) (float64, bool) {
	return SuggestRisk(l.Balance(), l.plan.Target(), multiplier)
}

// Append adds a pending trade to the end of the sequence and returns its
// annotated form. The win multiplier defaults to the plan default; the risk
// percentage is pre-filled from the current suggestion when it is positive
// and below the sanity ceiling, otherwise from the plan default.
func (l *Ledger) Append(riskPct, multiplier float64) (models.Trade, error) {
	if riskPct < 0 || !isFinite(riskPct) {
		return models.Trade{}, apperrors.NewValidationError("risk percentage", riskPct, "must be a non-negative number")
	}
	if multiplier < 0 || !isFinite(multiplier) {
		return models.Trade{}, apperrors.NewValidationError("win multiplier", multiplier, "must be a non-negative number")
	}
	if multiplier == 0 {
		multiplier = l.plan.DefaultMultiplier
	}
	if riskPct == 0 {
		riskPct = l.seedRisk(multiplier)
	}

	t := models.Trade{
		ID:         ulid.Make().String(),
		Outcome:    models.OutcomePending,
		RiskPct:    riskPct,
		Multiplier: multiplier,
		CreatedAt:  time.Now(),
	}
	l.trades = append(l.trades, t)
	l.recompute()
	return l.trades[len(l.trades)-1], nil
}

func (l *Ledger) seedRisk(multiplier float64) float64 {
	if pct, ok := l.SuggestedRisk(multiplier); ok && pct < maxSeedRiskPct {
		return pct
	}
	return l.plan.DefaultRiskPct
}

// Delete removes the trade at the 1-based position, renumbers the remaining
// trades contiguously and recomputes their balances.
func (l *Ledger) Delete(position int) error {
	i, err := l.index(position)
	if err != nil {
		return err
	}
	l.trades = append(l.trades[:i], l.trades[i+1:]...)
	l.recompute()
	return nil
}

// Clear removes every trade. The plan is untouched.
func (l *Ledger) Clear() {
	l.trades = nil
}

// SetOutcome sets the outcome of the trade at the 1-based position. Any
// outcome may replace any other; downstream trades are recomputed.
func (l *Ledger) SetOutcome(position int, outcome models.Outcome) error {
	i, err := l.index(position)
	if err != nil {
		return err
	}
	if !outcome.Valid() {
		return apperrors.NewValidationError("outcome", outcome, "unknown outcome")
	}
	l.trades[i].Outcome = outcome
	l.recompute()
	return nil
}

// SetRiskPct sets the risk percentage of the trade at the 1-based position.
// Negative or non-finite input is rejected and the prior value retained.
func (l *Ledger) SetRiskPct(position int, pct float64) error {
	i, err := l.index(position)
	if err != nil {
		return err
	}
	if pct < 0 || !isFinite(pct) {
		return apperrors.NewValidationError("risk percentage", pct, "must be a non-negative number")
	}
	l.trades[i].RiskPct = pct
	l.recompute()
	return nil
}

// SetMultiplier sets the win multiplier of the trade at the 1-based
// position. Negative or non-finite input is rejected and the prior value
// retained.
func (l *Ledger) SetMultiplier(position int, multiplier float64) error {
	i, err := l.index(position)
	if err != nil {
		return err
	}
	if multiplier < 0 || !isFinite(multiplier) {
		return apperrors.NewValidationError("win multiplier", multiplier, "must be a non-negative number")
	}
	l.trades[i].Multiplier = multiplier
	l.recompute()
	return nil
}

func (l *Ledger) index(position int) (int, error) {
	if position < 1 || position > len(l.trades) {
		return 0, apperrors.Wrapf(apperrors.ErrTradeNotFound, "position %d", position)
	}
	return position - 1, nil
}

func (l *Ledger) recompute() {
	l.trades = Recompute(l.plan, l.trades)
}

// TargetReached reports whether the current balance meets the profit target.
func (l *Ledger) TargetReached() bool {
	return l.Balance() >= l.plan.Target() && l.plan.Target() > 0
}
