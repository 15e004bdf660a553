package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no preference is stored and as the translation fallback.
const DefaultLanguage = "fr"

// Language describes one entry of the language selector
type Language struct {
	Code string
	Name string
	Flag string
}

// Languages lists the supported languages in selector order.
var Languages = []Language{
	{Code: "fr", Name: "Français", Flag: "fi-fr"},
	{Code: "en", Name: "English", Flag: "fi-gb"},
	{Code: "de", Name: "Deutsch", Flag: "fi-de"},
	{Code: "es", Name: "Español", Flag: "fi-es"},
}

var matcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
	language.German,
	language.Spanish,
})

// Match maps an arbitrary BCP 47 tag onto a supported language code.
// Regional variants match their base language; anything else yields DefaultLanguage.
func Match(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage
	}
	return Languages[index].Code
}

// IsSupported reports whether code names a supported language exactly
func IsSupported(code string) bool {
	for _, lang := range Languages {
		if lang.Code == code {
			return true
		}
	}
	return false
}

func lookup(code string) Language {
	code = Match(code)
	for _, lang := range Languages {
		if lang.Code == code {
			return lang
		}
	}
	return Languages[0]
}

// LanguageName returns the native display name for code
func LanguageName(code string) string {
	return lookup(code).Name
}

// LanguageFlag returns the flag-icons class for code
func LanguageFlag(code string) string {
	return lookup(code).Flag
}

// NextLanguage returns the language following code in selector order, wrapping around.
func NextLanguage(code string) string {
	code = Match(code)
	for i, lang := range Languages {
		if lang.Code == code {
			return Languages[(i+1)%len(Languages)].Code
		}
	}
	return DefaultLanguage
}
