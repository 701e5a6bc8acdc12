// Package i18n holds the flat per-language string tables and the lookup rule
// every caller shares: a missing key comes back verbatim, never an error, so
// an untranslated label can degrade the display but never break a session.
package i18n

import "github.com/kobofi/kobo-cli/internal/domain"

// Translate resolves key in lang's table. Unknown languages and unknown keys
// both fall back to returning the key unchanged.
func Translate(lang domain.Language, key string) string {
	table, ok := tables[lang]
	if !ok {
		return key
	}
	if text, ok := table[key]; ok {
		return text
	}
	return key
}

// Has reports whether lang carries its own text for key.
func Has(lang domain.Language, key string) bool {
	_, ok := tables[lang][key]
	return ok
}
