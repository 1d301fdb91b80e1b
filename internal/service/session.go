// Package service implements the storefront session: the cart and favorites
// ledgers, their hydration from the profile store, and the
// validate → mutate → persist → project → notify pipeline every mutation
// runs through.
//
// A Session is single-owner state. The host's event loop serializes calls;
// the session itself holds no locks and is not goroutine-safe.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nhattran/techmart/internal/metrics"
	"github.com/nhattran/techmart/internal/models"
	"github.com/nhattran/techmart/internal/notify"
	"github.com/nhattran/techmart/internal/storage"
	"github.com/nhattran/techmart/internal/ui"
)

// ErrValidation indicates a caller-supplied descriptor violated a field
// constraint. The operation was rejected without mutating any ledger.
var ErrValidation = errors.New("invalid descriptor")

// Profile keys. Key names are part of the persisted contract: profiles
// written by earlier releases use exactly these.
const (
	keyCart      = "cart"
	keyFavorites = "favorites"
)

// Session owns one shopper's cart and favorites for the lifetime of the
// process. State flows one way: mutations land in memory first, are
// persisted best-effort, then projected to the display.
type Session struct {
	id        string
	cart      models.Cart
	favorites models.FavoriteSet

	store     storage.Store
	projector *ui.Projector
	sink      notify.Sink
	validate  *validator.Validate
	metrics   *metrics.Metrics
}

// NewSession creates an empty session against the given collaborators.
// Pass nil metrics to get a private, unexposed registry.
func NewSession(store storage.Store, projector *ui.Projector, sink notify.Sink, m *metrics.Metrics) *Session {
	if m == nil {
		m = metrics.New()
	}
	return &Session{
		id:        uuid.New().String(),
		store:     store,
		projector: projector,
		sink:      sink,
		validate:  validator.New(),
		metrics:   m,
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Hydrate loads both ledgers from the profile store and projects the
// result. Unavailable storage or malformed payloads fall back to empty
// collections with one notification each; an absent key is simply a fresh
// profile and stays silent. Hydrate is never fatal.
func (s *Session) Hydrate(ctx context.Context) {
	s.cart = s.hydrateCart(ctx)
	s.favorites = s.hydrateFavorites(ctx)
	s.project()
	slog.Info("session hydrated",
		"session_id", s.id,
		"cart_lines", s.cart.Len(),
		"cart_count", s.cart.Count(),
		"favorites", s.favorites.Len(),
	)
}

func (s *Session) hydrateCart(ctx context.Context) models.Cart {
	raw, found, err := s.store.Get(ctx, keyCart)
	if err != nil {
		slog.Warn("cart hydration: store unavailable", "session_id", s.id, "error", err)
		s.metrics.HydrationFallbacks.Inc()
		s.sink.Notify("Không thể truy cập giỏ hàng. Vui lòng kiểm tra cài đặt trình duyệt.")
		return models.Cart{}
	}
	if !found {
		return models.Cart{}
	}

	cart, err := decodeCart(raw)
	if err != nil {
		slog.Warn("cart hydration: discarding malformed payload", "session_id", s.id, "error", err)
		s.metrics.HydrationFallbacks.Inc()
		s.sink.Notify("Không thể truy cập giỏ hàng. Vui lòng kiểm tra cài đặt trình duyệt.")
		return models.Cart{}
	}
	return cart
}

func (s *Session) hydrateFavorites(ctx context.Context) models.FavoriteSet {
	raw, found, err := s.store.Get(ctx, keyFavorites)
	if err != nil {
		slog.Warn("favorites hydration: store unavailable", "session_id", s.id, "error", err)
		s.metrics.HydrationFallbacks.Inc()
		s.sink.Notify("Không thể truy cập danh sách yêu thích.")
		return models.FavoriteSet{}
	}
	if !found {
		return models.FavoriteSet{}
	}

	favorites, err := decodeFavorites(raw)
	if err != nil {
		slog.Warn("favorites hydration: discarding malformed payload", "session_id", s.id, "error", err)
		s.metrics.HydrationFallbacks.Inc()
		s.sink.Notify("Không thể truy cập danh sách yêu thích.")
		return models.FavoriteSet{}
	}
	return favorites
}

// persist writes one ledger's payload to the profile store. Failure is
// best-effort territory: the in-memory mutation stays authoritative, the
// user hears about it once, and the session carries on memory-only.
func (s *Session) persist(ctx context.Context, key string, payload []byte, err error, failureMsg string) {
	if err == nil {
		err = s.store.Put(ctx, key, payload)
	}
	if err != nil {
		slog.Warn("best-effort persist failed", "session_id", s.id, "key", key, "error", err)
		s.metrics.PersistFailures.Inc()
		s.sink.Notify(failureMsg)
	}
}

func (s *Session) project() {
	s.projector.Project(ui.View{
		ItemCount:     s.cart.Count(),
		CartTotal:     s.cart.Total(),
		FavoriteCount: s.favorites.Len(),
	})
}
