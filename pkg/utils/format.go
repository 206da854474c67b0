// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency formats an amount with a currency symbol and thousands
// grouping, two decimal places.
func FormatCurrency(symbol string, amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := groupThousands(parts[0])

	result := symbol + intPart + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 3 {
		result = s[len(s)-3:] + "," + result
		s = s[:len(s)-3]
	}
	return s + "," + result
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatRiskPercent formats a risk percentage without a sign, keeping
// enough precision for small suggested risks.
func FormatRiskPercent(value float64) string {
	if value != 0 && value < 0.01 {
		return fmt.Sprintf("%.4f%%", value)
	}
	return fmt.Sprintf("%.2f%%", value)
}

// FormatPnL formats a P&L amount with an explicit sign.
func FormatPnL(symbol string, pnl float64) string {
	formatted := FormatCurrency(symbol, pnl)
	if pnl > 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatMultiplier renders a win multiplier like "6.5R".
func FormatMultiplier(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + "R"
}
