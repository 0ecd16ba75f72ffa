package main

import (
	"strconv"
	"strings"
)

func formatYear(year int) string {
	if year <= 0 {
		return "n/a"
	}
	return strconv.Itoa(year)
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}

// pageBounds clamps a 1-based page number into range and returns the slice
// bounds for it along with the effective page and page count. An empty list
// still reports one page so footers stay sensible.
func pageBounds(total, page, size int) (start, end, effectivePage, pages int) {
	if size <= 0 {
		size = 1
	}
	pages = (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start = (page - 1) * size
	end = start + size
	if end > total {
		end = total
	}
	return start, end, page, pages
}
