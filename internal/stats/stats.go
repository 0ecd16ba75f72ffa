package stats

import (
	"math"
	"sort"
	"strings"

	"movielog/internal/catalog"
	"movielog/internal/language"
)

// DefaultTop is the leaderboard size used when the caller passes none.
const DefaultTop = 5

// LabelCount is one leaderboard entry.
type LabelCount struct {
	Label string
	Count int
}

// RatingBucket is one histogram bucket keyed by the rounded rating.
type RatingBucket struct {
	Rating int
	Count  int
}

// DecadeCount is one decade bucket, keyed by the decade's starting year.
type DecadeCount struct {
	Decade int
	Count  int
}

// Summary aggregates the watched slice of a library.
type Summary struct {
	MoviesWatched int
	TotalHours    float64
	AverageRating float64
	Ratings       []RatingBucket
	TopGenres     []LabelCount
	TopDirectors  []LabelCount
	Decades       []DecadeCount
	TopLanguages  []LabelCount
}

// Compute builds the stats summary over every watched record. Leaderboards
// are capped at top entries; histogram and decade charts are never capped.
// Unrated records stay out of the rating figures, and records without a
// known year stay out of the decade chart.
func Compute(records []*catalog.Record, top int) *Summary {
	if top <= 0 {
		top = DefaultTop
	}

	summary := &Summary{}
	totalMinutes := 0
	ratingSum := 0.0
	rated := 0
	ratingBuckets := make(map[int]int)
	genres := make(map[string]int)
	directors := make(map[string]int)
	decades := make(map[int]int)
	languages := make(map[string]int)

	for _, record := range records {
		if !record.Watched() {
			continue
		}
		summary.MoviesWatched++
		totalMinutes += record.Runtime

		if record.Rating > 0 {
			ratingSum += record.Rating
			rated++
			ratingBuckets[int(math.Round(record.Rating))]++
		}
		for _, genre := range record.Genres {
			if genre = strings.TrimSpace(genre); genre != "" {
				genres[genre]++
			}
		}
		if director := strings.TrimSpace(record.Director); director != "" {
			directors[director]++
		}
		if record.Year > 0 {
			decades[record.Year/10*10]++
		}
		if code := strings.TrimSpace(record.OriginalLanguage); code != "" {
			languages[code]++
		}
	}

	summary.TotalHours = float64(totalMinutes) / 60
	if rated > 0 {
		summary.AverageRating = ratingSum / float64(rated)
	}
	summary.Ratings = sortRatings(ratingBuckets)
	summary.TopGenres = topCounts(genres, top)
	summary.TopDirectors = topCounts(directors, top)
	summary.Decades = sortDecades(decades)
	summary.TopLanguages = topLanguageCounts(languages, top)
	return summary
}

func sortRatings(buckets map[int]int) []RatingBucket {
	out := make([]RatingBucket, 0, len(buckets))
	for rating, count := range buckets {
		out = append(out, RatingBucket{Rating: rating, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	return out
}

func sortDecades(buckets map[int]int) []DecadeCount {
	out := make([]DecadeCount, 0, len(buckets))
	for decade, count := range buckets {
		out = append(out, DecadeCount{Decade: decade, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Decade > out[j].Decade })
	return out
}

func topCounts(counts map[string]int, top int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > top {
		out = out[:top]
	}
	return out
}

func topLanguageCounts(counts map[string]int, top int) []LabelCount {
	named := make(map[string]int, len(counts))
	for code, count := range counts {
		named[language.DisplayName(code)] += count
	}
	return topCounts(named, top)
}

// BarWidth scales a bucket count so the largest bucket spans width cells.
// Counts too small for a full cell truncate to zero, matching integer math.
func BarWidth(count, maxCount, width int) int {
	if maxCount <= 0 || count <= 0 || width <= 0 {
		return 0
	}
	return count * width / maxCount
}

// MaxCount returns the largest bucket count in the histogram.
func MaxCount(buckets []RatingBucket) int {
	max := 0
	for _, bucket := range buckets {
		if bucket.Count > max {
			max = bucket.Count
		}
	}
	return max
}
