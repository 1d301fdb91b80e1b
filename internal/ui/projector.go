// Package ui projects ledger state into named display targets.
//
// Projection is strictly one-way: the projector reads derived values and
// writes formatted text. It never mutates ledgers and is safe to call
// redundantly — re-projecting unchanged state writes identical text.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/nhattran/techmart/internal/notify"
)

// Mount point names the storefront layout provides.
const (
	TargetCartCount = "cartCount"
	TargetCartTotal = "cartTotal"
	TargetFavCount  = "favCount"
)

// Target is one mount point accepting rendered text.
type Target interface {
	SetText(text string)
}

// Display resolves mount points by name. A missing target is an expected
// condition (host not fully mounted), not an error.
type Display interface {
	Target(name string) (Target, bool)
}

// View is the snapshot of derived values the projector renders.
type View struct {
	ItemCount     int64
	CartTotal     int64
	FavoriteCount int
}

// Projector renders session state into a Display.
type Projector struct {
	display Display
	sink    notify.Sink
}

// NewProjector creates a projector writing to the given display.
// Missing-target notices go to sink.
func NewProjector(display Display, sink notify.Sink) *Projector {
	return &Projector{display: display, sink: sink}
}

// Project writes the view into the cart and favorites targets. Missing
// targets are skipped — the cart pair with a single notification, the
// favorites counter with just a log line. Project itself never fails,
// since it runs inside event handlers.
func (p *Projector) Project(view View) {
	count, countOK := p.display.Target(TargetCartCount)
	total, totalOK := p.display.Target(TargetCartTotal)
	if countOK && totalOK {
		count.SetText(fmt.Sprintf("%d", view.ItemCount))
		total.SetText(FormatVND(view.CartTotal))
	} else {
		slog.Warn("cart display targets missing",
			"count_found", countOK,
			"total_found", totalOK,
		)
		p.sink.Notify("Lỗi: Không thể cập nhật giỏ hàng.")
	}

	if fav, ok := p.display.Target(TargetFavCount); ok {
		fav.SetText(fmt.Sprintf("(%d)", view.FavoriteCount))
	} else {
		slog.Warn("favorites display target missing")
	}
}
