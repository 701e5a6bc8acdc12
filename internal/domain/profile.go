package domain

import "github.com/shopspring/decimal"

// Profile is the financial identity record for the active user. Balance,
// Savings and PortfolioValue are three independent counters: nothing
// reconciles them against a transaction ledger, and no floor stops Balance
// from going negative. Both behaviors are load-bearing for callers.
type Profile struct {
	Name           string
	Email          string
	Phone          string
	Avatar         string
	Balance        decimal.Decimal
	Savings        decimal.Decimal
	PortfolioValue decimal.Decimal
	Goal           *SavingsGoal
}

// SavingsGoal captures the target chosen during the onboarding goal-setting
// step. Display metadata only; no operation checks progress against it.
type SavingsGoal struct {
	Name         string
	TargetAmount decimal.Decimal
	Horizon      string
}
