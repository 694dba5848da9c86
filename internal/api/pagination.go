package api

import "net/http"

// parsePagination reads page and per_page, writing a 400 for values that are
// not positive integers. per_page is clamped to maxPerPage.
func parsePagination(w http.ResponseWriter, r *http.Request, defaultPerPage, maxPerPage int) (page, perPage int, ok bool) {
	page, ok = parseOptionalQueryPositiveInt(w, r, "page", "page", 1)
	if !ok {
		return 0, 0, false
	}
	perPage, ok = parseOptionalQueryPositiveInt(w, r, "per_page", "per_page", defaultPerPage)
	if !ok {
		return 0, 0, false
	}
	return page, min(perPage, maxPerPage), true
}

// paginateSlice returns the 1-based page of items. Pages past the end are
// empty; the bound is checked before multiplying so huge pages cannot wrap.
func paginateSlice[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		return items
	}
	if page < 1 || page-1 >= len(items)/perPage+1 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+perPage, len(items))
	return items[start:end]
}
