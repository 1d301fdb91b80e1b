package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// ToggleFavorite adds the product to the favorite set if absent and removes
// it if present, then persists, projects, and notifies. The identifier is
// the product name, the same key the cart uses.
//
// The storefront page never shipped a favorites mutation (its button only
// shows a toast), so this entry point defines the missing semantics; see
// DESIGN.md.
func (s *Session) ToggleFavorite(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		slog.Warn("favorite toggle rejected", "session_id", s.id)
		s.metrics.ValidationRejections.Inc()
		s.sink.Notify("Lỗi: Không thể cập nhật danh sách yêu thích.")
		return fmt.Errorf("%w: empty product id", ErrValidation)
	}

	nowFavorite := s.favorites.Toggle(productID)
	s.metrics.FavoriteToggles.Inc()

	payload, err := encodeFavorites(&s.favorites)
	s.persist(ctx, keyFavorites, payload, err,
		"Không thể lưu danh sách yêu thích.")

	s.project()
	if nowFavorite {
		s.sink.Notify(fmt.Sprintf("Đã thêm %s vào danh sách yêu thích", productID))
	} else {
		s.sink.Notify(fmt.Sprintf("Đã xóa %s khỏi danh sách yêu thích", productID))
	}

	slog.Info("favorite toggled",
		"session_id", s.id,
		"product", productID,
		"favorited", nowFavorite,
		"favorites", s.favorites.Len(),
	)
	return nil
}

// FavoriteCount returns the number of favorited products.
func (s *Session) FavoriteCount() int {
	return s.favorites.Len()
}

// IsFavorite reports whether the product is currently favorited.
func (s *Session) IsFavorite(productID string) bool {
	return s.favorites.Has(productID)
}
