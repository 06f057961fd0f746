// Package language holds the language catalog, the table of permitted
// translation pairs and the speech locale table.
package language

import (
	"slices"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Option describes a language offered in the selectors.
type Option struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Flag   string `json:"flag"`
	Native string `json:"native"`
}

// fallbackFlag is shown for codes missing from the catalog.
const fallbackFlag = "🌐"

// catalog is ordered for display.
var catalog = []Option{
	{Code: "en", Label: "English", Flag: "🇺🇸"},
	{Code: "es", Label: "Spanish", Flag: "🇪🇸"},
	{Code: "ru", Label: "Russian", Flag: "🇷🇺"},
	{Code: "zh", Label: "Chinese", Flag: "🇨🇳"},
	{Code: "fr", Label: "French", Flag: "🇫🇷"},
	{Code: "de", Label: "German", Flag: "🇩🇪"},
	{Code: "it", Label: "Italian", Flag: "🇮🇹"},
	{Code: "ar", Label: "Arabic", Flag: "🇸🇦"},
	{Code: "hi", Label: "Hindi", Flag: "🇮🇳"},
	{Code: "ja", Label: "Japanese", Flag: "🇯🇵"},
	{Code: "ko", Label: "Korean", Flag: "🇰🇷"},
	{Code: "ur", Label: "Urdu", Flag: "🇵🇰"},
}

var optionByCode = buildOptionByCode()

func buildOptionByCode() map[string]Option {
	out := make(map[string]Option, len(catalog))
	for i := range catalog {
		catalog[i].Native = display.Self.Name(xlang.Make(catalog[i].Code))
		out[catalog[i].Code] = catalog[i]
	}
	return out
}

// Catalog returns every known language in display order.
func Catalog() []Option {
	return slices.Clone(catalog)
}

// Lookup returns the catalog entry for code.
func Lookup(code string) (Option, bool) {
	opt, ok := optionByCode[code]
	return opt, ok
}

// Describe returns the catalog entry for code, or a placeholder that shows
// the raw code with a globe flag.
func Describe(code string) Option {
	if opt, ok := optionByCode[code]; ok {
		return opt
	}
	return Option{Code: code, Label: code, Flag: fallbackFlag, Native: code}
}

// Known reports whether code is in the catalog.
func Known(code string) bool {
	_, ok := optionByCode[code]
	return ok
}
