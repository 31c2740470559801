package helpers

import (
	"net/http"
	"strconv"
)

// Result limit query parameter defaults and bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseLimit reads limit from the request query string and clamps it to
// [1, MaxLimit]. Invalid or missing values fall back to DefaultLimit.
func ParseLimit(r *http.Request) int {
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}
	return limit
}
