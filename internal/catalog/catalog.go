// Package catalog holds the static product and content listings the screens
// browse: bonds, funds, savings circles and educational articles. Display
// data only; nothing here feeds back into balances.
package catalog

import "github.com/kobofi/kobo-cli/internal/domain"

type Bond struct {
	ID         string
	Name       string
	Issuer     string
	CouponRate float64
	TenorYears int
	MinAmount  float64
	Currency   domain.Currency
}

type Fund struct {
	ID          string
	Name        string
	Category    domain.RiskCategory
	AnnualYield float64
	MinAmount   float64
	Currency    domain.Currency
}

type Article struct {
	ID       string
	TitleKey string
	Title    string
	Topic    string
	Minutes  int
}

type Circle struct {
	ID           string
	Name         string
	Members      int
	Contribution float64
	Frequency    string
	Currency     domain.Currency
}

func Bonds() []Bond {
	return []Bond{
		{ID: "bond-fgn-2y", Name: "FGN Savings Bond 2Y", Issuer: "Federal Government of Nigeria", CouponRate: 12.5, TenorYears: 2, MinAmount: 5000, Currency: domain.CurrencyNGN},
		{ID: "bond-fgn-3y", Name: "FGN Savings Bond 3Y", Issuer: "Federal Government of Nigeria", CouponRate: 13.5, TenorYears: 3, MinAmount: 5000, Currency: domain.CurrencyNGN},
		{ID: "bond-gog-5y", Name: "Ghana Treasury Note 5Y", Issuer: "Government of Ghana", CouponRate: 19.0, TenorYears: 5, MinAmount: 100, Currency: domain.CurrencyGHS},
		{ID: "bond-ifb-10y", Name: "Kenya Infrastructure Bond 10Y", Issuer: "Central Bank of Kenya", CouponRate: 14.4, TenorYears: 10, MinAmount: 50000, Currency: domain.CurrencyKES},
	}
}

func Funds() []Fund {
	return []Fund{
		{ID: "fund-mm", Name: "Kobo Money Market Fund", Category: domain.RiskConservative, AnnualYield: 10.2, MinAmount: 1000, Currency: domain.CurrencyNGN},
		{ID: "fund-tbill", Name: "Treasury Bill Ladder", Category: domain.RiskConservative, AnnualYield: 11.8, MinAmount: 10000, Currency: domain.CurrencyNGN},
		{ID: "fund-balanced", Name: "Kobo Balanced Fund", Category: domain.RiskModerate, AnnualYield: 14.5, MinAmount: 5000, Currency: domain.CurrencyNGN},
		{ID: "fund-ndx", Name: "Frontier Index Fund", Category: domain.RiskModerate, AnnualYield: 16.0, MinAmount: 5000, Currency: domain.CurrencyUSD},
		{ID: "fund-equity", Name: "Pan-African Equity Fund", Category: domain.RiskAggressive, AnnualYield: 22.3, MinAmount: 10000, Currency: domain.CurrencyNGN},
		{ID: "fund-usd", Name: "Dollar Growth Fund", Category: domain.RiskAggressive, AnnualYield: 18.9, MinAmount: 100, Currency: domain.CurrencyUSD},
	}
}

func Articles() []Article {
	return []Article{
		{ID: "art-1", TitleKey: "learn.article.budgeting", Title: "Budgeting with the 50/30/20 rule", Topic: "budgeting", Minutes: 4},
		{ID: "art-2", TitleKey: "learn.article.emergency", Title: "Why you need an emergency fund", Topic: "savings", Minutes: 3},
		{ID: "art-3", TitleKey: "learn.article.compound", Title: "Compound interest, explained", Topic: "investing", Minutes: 5},
		{ID: "art-4", TitleKey: "learn.article.ajo", Title: "Ajo, esusu and chama: group savings that work", Topic: "circles", Minutes: 6},
		{ID: "art-5", TitleKey: "learn.article.inflation", Title: "Beating inflation with your savings", Topic: "investing", Minutes: 4},
	}
}

func Circles() []Circle {
	return []Circle{
		{ID: "cir-1", Name: "Lagos Hustlers", Members: 12, Contribution: 5000, Frequency: "weekly", Currency: domain.CurrencyNGN},
		{ID: "cir-2", Name: "Accra Traders Chama", Members: 8, Contribution: 200, Frequency: "monthly", Currency: domain.CurrencyGHS},
		{ID: "cir-3", Name: "Nairobi Tech Savers", Members: 15, Contribution: 2500, Frequency: "monthly", Currency: domain.CurrencyKES},
	}
}

// FindCircle returns the circle with the given id.
func FindCircle(id string) (Circle, bool) {
	for _, c := range Circles() {
		if c.ID == id {
			return c, true
		}
	}
	return Circle{}, false
}

// FindArticle returns the article with the given id.
func FindArticle(id string) (Article, bool) {
	for _, a := range Articles() {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}
