package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nhattran/techmart/internal/catalog"
	"github.com/nhattran/techmart/internal/models"
)

// AddToCart merges one unit of the described product into the cart and runs
// the full pipeline. A descriptor failing validation (empty name, negative
// price, empty image ref) rejects the whole operation with one notification
// and no mutation. Persistence failure does not undo the mutation.
//
// The returned error reports the outcome for callers that care (tests,
// hosts); the user has already been notified by the time it returns.
func (s *Session) AddToCart(ctx context.Context, item models.LineItem) error {
	// The entry point always adds exactly one unit per call.
	item.Quantity = 1
	if err := s.validate.Struct(item); err != nil {
		slog.Warn("add to cart rejected", "session_id", s.id, "product", item.Name, "error", err)
		s.metrics.ValidationRejections.Inc()
		s.sink.Notify("Lỗi: Không thể thêm sản phẩm vào giỏ hàng.")
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	newLine := s.cart.Add(item)
	s.metrics.CartAdds.Inc()

	payload, err := encodeCart(&s.cart)
	s.persist(ctx, keyCart, payload, err,
		"Không thể lưu giỏ hàng. Vui lòng kiểm tra cài đặt trình duyệt.")

	s.project()
	s.sink.Notify(fmt.Sprintf("%s đã được thêm vào giỏ hàng!", item.Name))

	slog.Info("product added to cart",
		"session_id", s.id,
		"product", item.Name,
		"new_line", newLine,
		"cart_count", s.cart.Count(),
		"cart_total", s.cart.Total(),
	)
	return nil
}

// AddCard extracts a displayed product card and adds it to the cart.
// Extraction failure rejects the operation with one notification and no
// mutation, mirroring AddToCart's contract.
func (s *Session) AddCard(ctx context.Context, card catalog.Card) error {
	item, err := catalog.Extract(card)
	if err != nil {
		slog.Warn("card extraction failed", "session_id", s.id, "card", card.Name, "error", err)
		s.metrics.ValidationRejections.Inc()
		s.sink.Notify("Lỗi: Không thể thêm sản phẩm vào giỏ hàng.")
		return err
	}
	return s.AddToCart(ctx, item)
}

// CartCount returns the total number of units in the cart.
func (s *Session) CartCount() int64 {
	return s.cart.Count()
}

// CartTotal returns the cart total in đồng.
func (s *Session) CartTotal() int64 {
	return s.cart.Total()
}

// CartLines returns a copy of the cart's line items in insertion order.
func (s *Session) CartLines() []models.LineItem {
	out := make([]models.LineItem, len(s.cart.Items))
	copy(out, s.cart.Items)
	return out
}
