package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionTopUp      TransactionKind = "topup"
	TransactionWithdraw   TransactionKind = "withdraw"
	TransactionSavings    TransactionKind = "savings"
	TransactionInvestment TransactionKind = "investment"
	TransactionCircle     TransactionKind = "circle"
)

func TransactionKinds() []TransactionKind {
	return []TransactionKind{
		TransactionTopUp,
		TransactionWithdraw,
		TransactionSavings,
		TransactionInvestment,
		TransactionCircle,
	}
}

func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionTopUp, TransactionWithdraw, TransactionSavings, TransactionInvestment, TransactionCircle:
		return true
	}
	return false
}

func ParseTransactionKind(s string) (TransactionKind, error) {
	kind := TransactionKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionKind, s)
	}
	return kind, nil
}

// Apply returns a copy of the profile with the transaction's deltas applied:
//
//	topup       balance+amount
//	withdraw    balance-amount
//	savings     balance-amount, savings+amount
//	investment  balance-amount, portfolio+amount
//	circle      balance-amount
//
// Amounts are not bounds-checked; withdraw, savings, investment and circle can
// drive the balance negative and callers rely on that staying possible.
func (k TransactionKind) Apply(p Profile, amount decimal.Decimal) Profile {
	switch k {
	case TransactionTopUp:
		p.Balance = p.Balance.Add(amount)
	case TransactionWithdraw:
		p.Balance = p.Balance.Sub(amount)
	case TransactionSavings:
		p.Balance = p.Balance.Sub(amount)
		p.Savings = p.Savings.Add(amount)
	case TransactionInvestment:
		p.Balance = p.Balance.Sub(amount)
		p.PortfolioValue = p.PortfolioValue.Add(amount)
	case TransactionCircle:
		p.Balance = p.Balance.Sub(amount)
	}
	return p
}
