// Package catalog reads displayed products and turns them into cart-ready
// line items.
//
// The cart never touches markup directly: it consumes Card, a narrow
// descriptor of one product's presentational node, and Extract validates a
// Card into a models.LineItem. Parse builds Cards from storefront markup so
// hosts with real HTML have a ready-made producer.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nhattran/techmart/internal/models"
)

// ErrExtraction indicates a product card was missing or malformed a field
// the cart needs. The failure is aggregate: callers get pass/fail, not a
// field-by-field report.
var ErrExtraction = errors.New("catalog: extraction failed")

// Card describes one displayed product. Name, PriceText, and ImageRef are
// what the cart needs; ListPrice and Popularity are sort metadata from the
// card's data attributes, zero when absent.
type Card struct {
	Name       string
	PriceText  string
	ImageRef   string
	ListPrice  int64
	Popularity int
}

// Extract validates a card into a line-item descriptor with quantity 1.
// Every missing or malformed field folds into one ErrExtraction outcome.
func Extract(card Card) (models.LineItem, error) {
	var problems []string

	name := strings.TrimSpace(card.Name)
	if name == "" {
		problems = append(problems, "empty name")
	}

	price, err := ParsePrice(card.PriceText)
	if err != nil {
		problems = append(problems, err.Error())
	}

	if card.ImageRef == "" {
		problems = append(problems, "empty image ref")
	}

	if len(problems) > 0 {
		return models.LineItem{}, fmt.Errorf("%w: %s", ErrExtraction, strings.Join(problems, "; "))
	}

	return models.LineItem{
		Name:      name,
		UnitPrice: price,
		ImageRef:  card.ImageRef,
		Quantity:  1,
	}, nil
}

// ParsePrice parses a displayed price fragment ("12.000₫", "12,000 đ") into
// đồng by stripping every non-digit rune and integer-parsing the rest.
func ParsePrice(text string) (int64, error) {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("no digits in price %q", text)
	}

	price, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q", text)
	}
	return price, nil
}
