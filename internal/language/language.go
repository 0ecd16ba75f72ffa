// Package language renders TMDB language codes as human-readable names.
package language

import (
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var english = display.English.Languages()

// DisplayName returns the English name for an ISO 639-1 code, e.g. "ko" →
// "Korean". Empty input yields "Unknown"; unrecognized codes fall back to the
// uppercased code, matching how records store original_language.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	tag, err := xlang.Parse(trimmed)
	if err != nil {
		return strings.ToUpper(trimmed)
	}
	if name := english.Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(trimmed)
}
