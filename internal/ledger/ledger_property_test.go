package ledger

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"growth-calculator/internal/models"
)

// genOutcome picks one of the five outcomes.
func genOutcome() gopter.Gen {
	return gen.OneConstOf(
		models.OutcomeWin,
		models.OutcomePartialWin,
		models.OutcomeLoss,
		models.OutcomeBreakeven,
		models.OutcomePending,
	)
}

// buildTrades zips independently generated slices into a trade sequence,
// truncating to the shortest.
func buildTrades(risks, mults []float64, outcomes []models.Outcome) []models.Trade {
	n := len(risks)
	if len(mults) < n {
		n = len(mults)
	}
	if len(outcomes) < n {
		n = len(outcomes)
	}
	trades := make([]models.Trade, n)
	for i := 0; i < n; i++ {
		trades[i] = models.Trade{
			Outcome:    outcomes[i],
			RiskPct:    risks[i],
			Multiplier: mults[i],
		}
	}
	return trades
}

// Property: every trade's starting balance equals the previous trade's
// ending balance, with the first chained to the plan's initial balance.
func TestProperty_BalancesChain(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("endBalance(i) == startBalance(i+1)", prop.ForAll(
		func(initial float64, risks, mults []float64, outcomes []models.Outcome) bool {
			plan := models.Plan{InitialBalance: initial, ProfitTarget: initial * 1.2}
			out := Recompute(plan, buildTrades(risks, mults, outcomes))

			balance := plan.InitialBalance
			for i, tr := range out {
				if tr.StartBalance != balance {
					t.Logf("trade %d: start=%v, want %v", i+1, tr.StartBalance, balance)
					return false
				}
				if tr.Position != i+1 {
					return false
				}
				balance = tr.EndBalance
			}
			return true
		},
		gen.Float64Range(1, 1e6),
		gen.SliceOf(gen.Float64Range(0, 100)),
		gen.SliceOf(gen.Float64Range(0, 20)),
		gen.SliceOf(genOutcome()),
	))

	properties.TestingRun(t)
}

// Property: floating P/L sign matches the outcome whenever the trade has a
// positive risk amount: positive for wins, negative for losses, zero for
// breakeven and pending.
func TestProperty_PLSignMatchesOutcome(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("sign(floatingPL) follows outcome", prop.ForAll(
		func(risk, mult float64, outcome models.Outcome) bool {
			plan := models.Plan{InitialBalance: 10000, ProfitTarget: 12000}
			out := Recompute(plan, []models.Trade{
				{Outcome: outcome, RiskPct: risk, Multiplier: mult},
			})
			pl := out[0].FloatingPL

			switch outcome {
			case models.OutcomeWin, models.OutcomePartialWin:
				return pl >= 0
			case models.OutcomeLoss:
				return pl <= 0
			default:
				return pl == 0
			}
		},
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 20),
		genOutcome(),
	))

	properties.TestingRun(t)
}

// Property: the suggested next risk is undefined whenever the ending balance
// already meets the profit target, and positive whenever it is defined.
func TestProperty_SuggestionUndefinedAtTarget(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("no suggestion once target reached", prop.ForAll(
		func(initial, target float64, risks, mults []float64, outcomes []models.Outcome) bool {
			plan := models.Plan{InitialBalance: initial, ProfitTarget: target}
			out := Recompute(plan, buildTrades(risks, mults, outcomes))

			for _, tr := range out {
				if tr.EndBalance >= plan.Target() && tr.SuggestedNextRisk != nil {
					return false
				}
				if tr.SuggestedNextRisk != nil && *tr.SuggestedNextRisk <= 0 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1, 1e6),
		gen.Float64Range(1, 1e6),
		gen.SliceOf(gen.Float64Range(0, 100)),
		gen.SliceOf(gen.Float64Range(0, 20)),
		gen.SliceOf(genOutcome()),
	))

	properties.TestingRun(t)
}

// Property: recomputing an already-consistent sequence changes nothing.
func TestProperty_RecomputeIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("Recompute(Recompute(x)) == Recompute(x)", prop.ForAll(
		func(initial float64, risks, mults []float64, outcomes []models.Outcome) bool {
			plan := models.Plan{InitialBalance: initial, ProfitTarget: initial * 1.1}
			once := Recompute(plan, buildTrades(risks, mults, outcomes))
			twice := Recompute(plan, once)

			if len(once) != len(twice) {
				return false
			}
			for i := range once {
				a, b := once[i], twice[i]
				// Compare pointer targets, not pointers.
				if (a.SuggestedNextRisk == nil) != (b.SuggestedNextRisk == nil) {
					return false
				}
				if a.SuggestedNextRisk != nil && *a.SuggestedNextRisk != *b.SuggestedNextRisk {
					return false
				}
				a.SuggestedNextRisk, b.SuggestedNextRisk = nil, nil
				if a != b {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1, 1e6),
		gen.SliceOf(gen.Float64Range(0, 100)),
		gen.SliceOf(gen.Float64Range(0, 20)),
		gen.SliceOf(genOutcome()),
	))

	properties.TestingRun(t)
}

// Property: deleting any trade leaves positions contiguous from 1 and the
// first trade anchored to the initial balance.
func TestProperty_DeleteRenumbers(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("delete keeps positions contiguous", prop.ForAll(
		func(count, deleteAt int, risk float64) bool {
			l := New(models.Plan{InitialBalance: 10000, ProfitTarget: 20000, DefaultRiskPct: 1, DefaultMultiplier: 2})
			for i := 0; i < count; i++ {
				if _, err := l.Append(risk, 2); err != nil {
					return false
				}
			}
			pos := deleteAt%count + 1
			if err := l.Delete(pos); err != nil {
				return false
			}

			trades := l.Trades()
			if len(trades) != count-1 {
				return false
			}
			balance := 10000.0
			for i, tr := range trades {
				if tr.Position != i+1 || tr.StartBalance != balance {
					return false
				}
				balance = tr.EndBalance
			}
			return true
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 1000),
		gen.Float64Range(0, 10),
	))

	properties.TestingRun(t)
}
