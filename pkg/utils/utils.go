// Package utils provides the formatting, validation and collection helpers
// shared by the storefront front-end and API.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
)

// GenerateID generates a random hex ID
func GenerateID(prefix string) string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	id := hex.EncodeToString(bytes)
	if prefix != "" {
		return fmt.Sprintf("%s_%s", prefix, id)
	}
	return id
}

// Float64Ptr returns a pointer to a float64 value
func Float64Ptr(f float64) *float64 {
	return &f
}

// Float64Value safely dereferences a float64 pointer
func Float64Value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// Contains checks if a slice contains a value
func Contains[T comparable](slice []T, item T) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// Paginate sanitizes page and limit and returns the matching offset.
// Pages start at 1; a non-positive limit falls back to defaultLimit and
// limits above maxLimit are capped. page is capped so page*limit fits in an int.
func Paginate(page, limit, defaultLimit, maxLimit int) (offset, actualPage, actualLimit int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if limit < 1 {
		limit = 1
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	offset = (page - 1) * limit
	return offset, page, limit
}

// CalculateTotalPages calculates total pages for pagination
func CalculateTotalPages(total, limit int) int {
	if limit == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// DefaultInt returns the default value if the int is zero
func DefaultInt(value, defaultValue int) int {
	if value == 0 {
		return defaultValue
	}
	return value
}
