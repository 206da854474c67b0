package ledger

import "growth-calculator/internal/models"

// Summary aggregates the ledger for the status panel.
type Summary struct {
	InitialBalance   float64
	Balance          float64
	Target           float64
	NetPL            float64
	NetPLPct         float64
	DistanceToTarget float64
	TargetReached    bool
	Trades           int
	Wins             int
	PartialWins      int
	Losses           int
	Breakeven        int
	Pending          int
	// SuggestedRisk is the pre-fill suggestion for the next trade at the
	// plan's default multiplier; nil when the target is met or degenerate.
	SuggestedRisk *float64
}

// Summarize computes the summary for the ledger's current state.
func (l *Ledger) Summarize() Summary {
	s := Summary{
		InitialBalance: l.plan.InitialBalance,
		Balance:        l.Balance(),
		Target:         l.plan.Target(),
		Trades:         len(l.trades),
	}
	s.NetPL = s.Balance - s.InitialBalance
	if s.InitialBalance > 0 {
		s.NetPLPct = s.NetPL / s.InitialBalance * 100
	}
	s.DistanceToTarget = s.Target - s.Balance
	s.TargetReached = s.DistanceToTarget <= 0

	for _, t := range l.trades {
		switch t.Outcome {
		case models.OutcomeWin:
			s.Wins++
		case models.OutcomePartialWin:
			s.PartialWins++
		case models.OutcomeLoss:
			s.Losses++
		case models.OutcomeBreakeven:
			s.Breakeven++
		default:
			s.Pending++
		}
	}

	if pct, ok := l.SuggestedRisk(l.plan.DefaultMultiplier); ok {
		s.SuggestedRisk = &pct
	}
	return s
}
