package domain

import "strings"

// Language is a target language understood by the phrase generator.
type Language struct {
	Code string
	Name string
}

var (
	LanguageSpanish = Language{Code: "es", Name: "Español"}
	LanguageItalian = Language{Code: "it", Name: "Italiano"}
)

// DefaultLanguage is used when the client sends no language or an unknown one.
var DefaultLanguage = LanguageSpanish

var languages = map[string]Language{
	LanguageSpanish.Code: LanguageSpanish,
	LanguageItalian.Code: LanguageItalian,
}

// ResolveLanguage maps a client language preference ("es", "it", "it-IT", ...)
// to a supported Language, falling back to DefaultLanguage.
func ResolveLanguage(pref string) Language {
	code := strings.ToLower(strings.TrimSpace(pref))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	if lang, ok := languages[code]; ok {
		return lang
	}
	return DefaultLanguage
}
