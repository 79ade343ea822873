package i18n

import "strings"

// Language describes one supported message catalog.
type Language struct {
	// Code is the locale identifier stored in the preference store.
	Code string
	// Label is the exact keyboard button text shown by /settings. Selection
	// messages are matched against it case-sensitively.
	Label string
	// Name is the language's native name, used in confirmations.
	Name string
}

// The closed set of supported languages. Every entry must have a catalog
// file under catalogs/.
var languages = []Language{
	{Code: "en_US", Label: "🇺🇸 English (US)", Name: "English (US)"},
	{Code: "pt_BR", Label: "🇧🇷 Português (Brasil)", Name: "Português (Brasil)"},
	{Code: "ru_RU", Label: "🇷🇺 Русский", Name: "Русский"},
}

// Supported returns the enumerated set of languages in display order.
func Supported() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// IsSupported reports whether code is one of the enumerated language codes.
func IsSupported(code string) bool {
	for _, l := range languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// ByCode returns the language for code, if supported.
func ByCode(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// CodeForLabel matches text against the fixed set of keyboard labels. The
// match is exact and case-sensitive; anything else is not a selection.
func CodeForLabel(text string) (string, bool) {
	for _, l := range languages {
		if l.Label == text {
			return l.Code, true
		}
	}
	return "", false
}

// LooksLikeSelection reports whether text starts like one of the known
// labels (the flag prefix) without matching any of them exactly. Such
// messages get a "pick again" reply instead of being treated as a ticket.
func LooksLikeSelection(text string) bool {
	if _, ok := CodeForLabel(text); ok {
		return false
	}
	for _, l := range languages {
		flag, _, found := strings.Cut(l.Label, " ")
		if found && strings.HasPrefix(text, flag) {
			return true
		}
	}
	return false
}
