// Package models provides domain models for the growth calculator.
package models

import (
	"time"
)

// Outcome represents the resolved result of a trade.
type Outcome string

const (
	OutcomeWin        Outcome = "WIN"
	OutcomePartialWin Outcome = "PARTIAL_WIN"
	OutcomeLoss       Outcome = "LOSS"
	OutcomeBreakeven  Outcome = "BREAKEVEN"
	OutcomePending    Outcome = "PENDING"
)

// plFactors maps every outcome to the multiple of (riskAmount × winMultiplier)
// it realizes. Loss ignores the win multiplier, so its factor applies to the
// risk amount directly; see Trade.FloatingPL computation in the ledger package.
var plFactors = map[Outcome]float64{
	OutcomeWin:        1,
	OutcomePartialWin: 0.5,
	OutcomeLoss:       -1,
	OutcomeBreakeven:  0,
	OutcomePending:    0,
}

// Outcomes lists all valid outcomes in display order.
func Outcomes() []Outcome {
	return []Outcome{OutcomeWin, OutcomePartialWin, OutcomeLoss, OutcomeBreakeven, OutcomePending}
}

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	_, ok := plFactors[o]
	return ok
}

// PLFactor returns the profit multiple for the outcome. For winning outcomes
// the factor scales riskAmount × winMultiplier; for a loss it scales the
// risk amount alone.
func (o Outcome) PLFactor() float64 {
	return plFactors[o]
}

// Resolved reports whether the outcome is anything other than PENDING.
func (o Outcome) Resolved() bool {
	return o.Valid() && o != OutcomePending
}

// Plan holds the account configuration a ledger is computed against.
// It is immutable during a recompute pass and user-editable between passes.
type Plan struct {
	InitialBalance    float64
	ProfitTarget      float64
	DefaultRiskPct    float64
	DefaultMultiplier float64
}

// defaultTargetGrowth is applied to the initial balance when no explicit
// profit target is configured.
const defaultTargetGrowth = 1.08

// Target returns the effective profit target. An unset or non-positive
// target falls back to 8% growth over the initial balance.
func (p Plan) Target() float64 {
	if p.ProfitTarget > 0 {
		return p.ProfitTarget
	}
	return p.InitialBalance * defaultTargetGrowth
}

// Trade is one entry in the ledger. Outcome, RiskPct and Multiplier are
// user-editable; every other numeric field is derived by the recalculator
// and must never be edited directly.
type Trade struct {
	ID         string
	Position   int // 1-based, assigned by sequence order
	Outcome    Outcome
	RiskPct    float64
	Multiplier float64
	CreatedAt  time.Time

	// Derived by ledger.Recompute.
	StartBalance     float64
	RiskAmount       float64
	FloatingPL       float64
	EndBalance       float64
	DistanceToTarget float64
	// SuggestedNextRisk is the risk percentage that would close the remaining
	// distance to target if the next trade wins at this trade's multiplier.
	// Nil when the target is already met or the inputs are degenerate.
	SuggestedNextRisk *float64
}
