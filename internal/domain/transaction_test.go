package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTransactionKindApplyEffectTable(t *testing.T) {
	base := Profile{
		Name:           "Ada",
		Balance:        dec("100000"),
		Savings:        dec("0"),
		PortfolioValue: dec("50000"),
	}
	amount := dec("10000")

	tests := []struct {
		name          string
		kind          TransactionKind
		wantBalance   string
		wantSavings   string
		wantPortfolio string
	}{
		{name: "topup credits balance only", kind: TransactionTopUp, wantBalance: "110000", wantSavings: "0", wantPortfolio: "50000"},
		{name: "withdraw debits balance only", kind: TransactionWithdraw, wantBalance: "90000", wantSavings: "0", wantPortfolio: "50000"},
		{name: "savings moves balance into savings", kind: TransactionSavings, wantBalance: "90000", wantSavings: "10000", wantPortfolio: "50000"},
		{name: "investment moves balance into portfolio", kind: TransactionInvestment, wantBalance: "90000", wantSavings: "0", wantPortfolio: "60000"},
		{name: "circle contribution debits balance only", kind: TransactionCircle, wantBalance: "90000", wantSavings: "0", wantPortfolio: "50000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.kind.Apply(base, amount)
			assert.True(t, got.Balance.Equal(dec(tt.wantBalance)), "balance %s", got.Balance)
			assert.True(t, got.Savings.Equal(dec(tt.wantSavings)), "savings %s", got.Savings)
			assert.True(t, got.PortfolioValue.Equal(dec(tt.wantPortfolio)), "portfolio %s", got.PortfolioValue)
			assert.True(t, base.Balance.Equal(dec("100000")), "input profile must not be mutated")
		})
	}
}

func TestTransactionKindApplyAllowsNegativeBalance(t *testing.T) {
	p := Profile{Balance: dec("500")}

	p = TransactionWithdraw.Apply(p, dec("300"))
	p = TransactionInvestment.Apply(p, dec("300"))
	p = TransactionCircle.Apply(p, dec("300"))

	assert.True(t, p.Balance.Equal(dec("-400")), "balance %s", p.Balance)
	assert.True(t, p.PortfolioValue.Equal(dec("300")))
}

func TestParseTransactionKind(t *testing.T) {
	kind, err := ParseTransactionKind(" Savings ")
	require.NoError(t, err)
	assert.Equal(t, TransactionSavings, kind)

	_, err = ParseTransactionKind("loan")
	assert.ErrorIs(t, err, ErrUnknownTransactionKind)
}
