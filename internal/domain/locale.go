package domain

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageSwahili Language = "sw"
	LanguagePidgin  Language = "pidgin"
	LanguageArabic  Language = "ar"
)

const DefaultLanguage = LanguageEnglish

func SupportedLanguages() []Language {
	return []Language{
		LanguageEnglish,
		LanguageFrench,
		LanguageSwahili,
		LanguagePidgin,
		LanguageArabic,
	}
}

// RTL reports whether text for the language reads right to left.
// Arabic is the only supported right-to-left locale.
func (l Language) RTL() bool {
	return l == LanguageArabic
}

type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyGHS Currency = "GHS"
	CurrencyKES Currency = "KES"
	CurrencyXAF Currency = "XAF"
	CurrencyUSD Currency = "USD"
)

const DefaultCurrency = CurrencyNGN

func SupportedCurrencies() []Currency {
	return []Currency{
		CurrencyNGN,
		CurrencyGHS,
		CurrencyKES,
		CurrencyXAF,
		CurrencyUSD,
	}
}

// CountrySuggestion pairs a country with the language and currency a new user
// from that country is most likely to want. Reference data only: language and
// currency remain independently settable and no pairing is enforced.
type CountrySuggestion struct {
	Country  string
	Language Language
	Currency Currency
}

func CountrySuggestions() []CountrySuggestion {
	return []CountrySuggestion{
		{Country: "Nigeria", Language: LanguagePidgin, Currency: CurrencyNGN},
		{Country: "Ghana", Language: LanguageEnglish, Currency: CurrencyGHS},
		{Country: "Kenya", Language: LanguageSwahili, Currency: CurrencyKES},
		{Country: "Cameroon", Language: LanguageFrench, Currency: CurrencyXAF},
		{Country: "Senegal", Language: LanguageFrench, Currency: CurrencyXAF},
		{Country: "Egypt", Language: LanguageArabic, Currency: CurrencyUSD},
	}
}
