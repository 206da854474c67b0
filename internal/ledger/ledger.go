// Package ledger implements the growth calculator core: sequential
// recalculation of a trade ledger and risk suggestion toward a profit target.
package ledger

import (
	"math"

	"growth-calculator/internal/models"
)

// Recompute derives every computed field of the trade sequence in order,
// chaining balances from the plan's initial balance. The input slice is not
// modified; the returned slice carries the annotations. The function is pure
// and reentrant.
func Recompute(plan models.Plan, trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	copy(out, trades)

	balance := plan.InitialBalance
	target := plan.Target()

	for i := range out {
		t := &out[i]
		t.Position = i + 1
		t.StartBalance = balance

		t.RiskAmount = finiteOr(balance*(t.RiskPct/100), 0)
		t.FloatingPL = finiteOr(floatingPL(t.Outcome, t.RiskAmount, t.Multiplier), 0)
		t.EndBalance = finiteOr(balance+t.FloatingPL, balance)
		t.DistanceToTarget = target - t.EndBalance

		if pct, ok := SuggestRisk(t.EndBalance, target, t.Multiplier); ok {
			t.SuggestedNextRisk = &pct
		} else {
			t.SuggestedNextRisk = nil
		}

		balance = t.EndBalance
	}

	return out
}

// floatingPL maps an outcome to the profit or loss it realizes. Winning
// factors scale risk × multiplier; a loss forfeits the risk amount alone.
func floatingPL(outcome models.Outcome, riskAmount, multiplier float64) float64 {
	factor := outcome.PLFactor()
	switch {
	case factor > 0:
		return riskAmount * multiplier * factor
	case factor < 0:
		return riskAmount * factor
	default:
		return 0
	}
}

// SuggestRisk returns the risk percentage that would close the remaining
// distance to target exactly, assuming the next trade wins at the given
// multiplier. The second return value is false when the target is already
// met, the balance or multiplier is degenerate, or the result is not finite.
func SuggestRisk(balance, target, multiplier float64) (float64, bool) {
	remaining := target - balance
	if remaining <= 0 || balance <= 0 || multiplier <= 0 {
		return 0, false
	}
	pct := remaining / (balance * multiplier) * 100
	if !isFinite(pct) || pct <= 0 {
		return 0, false
	}
	return pct, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteOr substitutes fallback for NaN and infinities so one bad input
// zeroes a single derived value instead of poisoning the rest of the chain.
func finiteOr(v, fallback float64) float64 {
	if isFinite(v) {
		return v
	}
	return fallback
}
