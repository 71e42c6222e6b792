package utils

import "math"

// CartLine is the part of a cart entry that shipping weight depends on.
// A nil Weight means the product has no weight on record.
type CartLine struct {
	Weight   *float64 `json:"weight"`
	Quantity int      `json:"quantity"`
}

// PaginationInfo describes one page of a listing. StartIndex and EndIndex
// are 1-based and inclusive.
type PaginationInfo struct {
	Page        int  `json:"page"`
	TotalPages  int  `json:"totalPages"`
	HasMore     bool `json:"hasMore"`
	HasPrevious bool `json:"hasPrevious"`
	StartIndex  int  `json:"startIndex"`
	EndIndex    int  `json:"endIndex"`
}

// CalculateTotalWeight sums weight * quantity over the cart.
func CalculateTotalWeight(items []CartLine) float64 {
	var total float64
	for _, item := range items {
		total += Float64Value(item.Weight) * float64(item.Quantity)
	}
	return total
}

// CalculateDiscountPercentage returns the rounded percentage saved going from
// original to discounted. A markup yields a negative percentage.
func CalculateDiscountPercentage(original, discounted float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Floor((original-discounted)/original*100 + 0.5))
}

// GetPaginationInfo computes page metadata. page and limit are not validated;
// see Paginate for sanitizing request input.
func GetPaginationInfo(page, limit, total int) PaginationInfo {
	totalPages := CalculateTotalPages(total, limit)

	endIndex := page * limit
	if endIndex > total {
		endIndex = total
	}

	return PaginationInfo{
		Page:        page,
		TotalPages:  totalPages,
		HasMore:     page < totalPages,
		HasPrevious: page > 1,
		StartIndex:  (page-1)*limit + 1,
		EndIndex:    endIndex,
	}
}
