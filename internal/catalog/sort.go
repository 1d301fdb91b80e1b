package catalog

import (
	"sort"
	"strings"
)

// SortMode selects a product ordering.
type SortMode string

// Sort modes offered by the product filter.
const (
	SortPriceAsc  SortMode = "priceAsc"
	SortPriceDesc SortMode = "priceDesc"
	SortPopular   SortMode = "popular"
)

// Sort reorders cards in place by the given mode, using the cards' list
// metadata. The sort is stable and an unknown mode leaves the order as-is.
func Sort(cards []Card, mode SortMode) {
	var less func(a, b Card) bool
	switch mode {
	case SortPriceAsc:
		less = func(a, b Card) bool { return a.ListPrice < b.ListPrice }
	case SortPriceDesc:
		less = func(a, b Card) bool { return a.ListPrice > b.ListPrice }
	case SortPopular:
		less = func(a, b Card) bool { return a.Popularity > b.Popularity }
	default:
		return
	}
	sort.SliceStable(cards, func(i, j int) bool { return less(cards[i], cards[j]) })
}

// Search returns the cards whose name contains the query, case-insensitive.
// An empty query matches everything.
func Search(cards []Card, query string) []Card {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cards
	}
	var matched []Card
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Name), query) {
			matched = append(matched, card)
		}
	}
	return matched
}
