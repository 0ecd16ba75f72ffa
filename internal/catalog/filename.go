package catalog

import (
	"strconv"
	"strings"
)

// SanitizeTitle reduces a movie title to its filename-safe form: letters,
// digits, spaces, and hyphens survive, trailing spaces are trimmed, and the
// remaining spaces become hyphens. Case is preserved.
func SanitizeTitle(title string) string {
	var cleaned strings.Builder
	for _, r := range title {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			cleaned.WriteRune(r)
		default:
			// drop other runes
		}
	}
	trimmed := strings.TrimRight(cleaned.String(), " ")
	return strings.ReplaceAll(trimmed, " ", "-")
}

// FileYear derives the year segment of a filename from a release date.
// Empty dates map to "0000"; dates shorter than four characters pass
// through unchanged.
func FileYear(releaseDate string) string {
	if releaseDate == "" {
		return "0000"
	}
	if len(releaseDate) >= 4 {
		return releaseDate[:4]
	}
	return releaseDate
}

// Year extracts the numeric year from a release date, 0 when unknown.
func Year(releaseDate string) int {
	year, err := strconv.Atoi(FileYear(releaseDate))
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

// Filename returns the deterministic on-disk name for a title and release
// date, for example "Parasite-2019.md". The name doubles as the record key:
// two imports of the same movie resolve to the same filename.
func Filename(title, releaseDate string) string {
	return SanitizeTitle(title) + "-" + FileYear(releaseDate) + RecordExtension
}
