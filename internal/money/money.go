// Package money renders monetary amounts for display. Formatting is fixed by
// product decision: the currency's symbol always prefixes the number, grouping
// and decimals follow the en-US convention with exactly two fraction digits,
// and the active display language has no effect on any of it.
package money

import (
	"math"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/kobofi/kobo-cli/internal/domain"
)

// symbols is the fixed, non-localized symbol table keyed by currency.
var symbols = map[domain.Currency]string{
	domain.CurrencyNGN: "₦",
	domain.CurrencyGHS: "GH₵",
	domain.CurrencyKES: "KSh",
	domain.CurrencyXAF: "FCFA",
	domain.CurrencyUSD: "$",
}

// Symbol returns the display symbol for a currency. Unknown currencies render
// with their code so a bad value stays visible instead of blank.
func Symbol(c domain.Currency) string {
	if sym, ok := symbols[c]; ok {
		return sym
	}
	return string(c)
}

func formatter(c domain.Currency) *gomoney.Formatter {
	return gomoney.NewFormatter(2, ".", ",", Symbol(c), "$1")
}

// Format renders amount under currency c. NaN and infinite amounts render as
// zero; a nil-ish caller value should be passed as NaN to get the same
// treatment.
func Format(c domain.Currency, amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return FormatDecimal(c, decimal.NewFromFloat(amount))
}

// FormatDecimal renders an exact decimal amount under currency c, rounded to
// two fraction digits.
func FormatDecimal(c domain.Currency, amount decimal.Decimal) string {
	minor := amount.Round(2).Shift(2).IntPart()
	return formatter(c).Format(minor)
}
