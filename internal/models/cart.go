package models

// LineItem represents one distinct product in the cart.
// Repeat adds of the same product increment Quantity instead of creating a
// second entry.
type LineItem struct {
	// Name is the product display name and the unique key within a cart.
	Name string `json:"name" validate:"required"`

	// UnitPrice is the per-unit price in đồng. Immutable after the item is
	// first added; a later price change on the page does not retroactively
	// reprice the cart.
	UnitPrice int64 `json:"price" validate:"gte=0"`

	// ImageRef is an opaque reference to the product image. Kept so a cart
	// page can render thumbnails without re-resolving the catalog.
	ImageRef string `json:"img" validate:"required"`

	// Quantity is how many units of this product are in the cart.
	Quantity int64 `json:"quantity" validate:"gte=1"`
}

// Subtotal returns UnitPrice * Quantity for this line.
func (li LineItem) Subtotal() int64 {
	return li.UnitPrice * li.Quantity
}

// Cart is an ordered collection of line items. Insertion order is first-add
// order; incrementing an existing line never reorders it.
type Cart struct {
	Items []LineItem
}

// Find returns the line item with the given product name, or nil.
func (c *Cart) Find(name string) *LineItem {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return &c.Items[i]
		}
	}
	return nil
}

// Add merges one unit of the given item into the cart: an existing line with
// the same name gets Quantity+1, otherwise the item is appended with
// Quantity 1. Reports whether a new line was created.
func (c *Cart) Add(item LineItem) bool {
	if existing := c.Find(item.Name); existing != nil {
		existing.Quantity++
		return false
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
	return true
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int64 {
	var count int64
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total returns the cart total in đồng.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.Items)
}
