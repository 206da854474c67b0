package models

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a stored decimal string leniently. Grouping commas and
// a leading currency symbol are stripped before parsing. Un-parsable or
// negative values collapse to 0 so a corrupt store entry degrades to a zeroed
// field instead of an error.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "$€£₹")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// FormatAmount renders a value the way the settings store persists it: a
// plain decimal string, shortest form that round-trips the value.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return decimal.NewFromFloat(v).String()
}

// outcomeAliases maps accepted user spellings to canonical outcomes.
var outcomeAliases = map[string]Outcome{
	"win":        OutcomeWin,
	"w":          OutcomeWin,
	"partial":    OutcomePartialWin,
	"partialwin": OutcomePartialWin,
	"pw":         OutcomePartialWin,
	"loss":       OutcomeLoss,
	"lose":       OutcomeLoss,
	"l":          OutcomeLoss,
	"breakeven":  OutcomeBreakeven,
	"be":         OutcomeBreakeven,
	"pending":    OutcomePending,
	"open":       OutcomePending,
}

// ParseOutcome parses a user-supplied outcome string. Matching is
// case-insensitive and tolerates separators ("partial win", "partial-win").
func ParseOutcome(s string) (Outcome, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if o, ok := outcomeAliases[key]; ok {
		return o, true
	}
	o := Outcome(strings.ToUpper(strings.TrimSpace(s)))
	if o.Valid() {
		return o, true
	}
	return "", false
}
