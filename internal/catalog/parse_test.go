package catalog

import (
	"strings"
	"testing"
)

const sampleMarkup = `
<html><body>
  <section class="products">
    <div class="product-grid">
      <article class="product-card" data-price="12000" data-popularity="87">
        <img src="/img/phonex.png" alt="PhoneX">
        <h3>PhoneX</h3>
        <p class="price"><span class="old">15.000₫</span> <span class="new">12.000₫</span></p>
        <button class="add-cart">Thêm vào giỏ</button>
      </article>
      <article class="product-card" data-price="24000" data-popularity="95">
        <img src="/img/tablety.png" alt="TabletY">
        <h3>TabletY</h3>
        <p class="price"><span class="new">24.000₫</span></p>
      </article>
      <article class="product-card">
        <h3>Hàng sắp về</h3>
      </article>
    </div>
  </section>
</body></html>`

func TestParse(t *testing.T) {
	cards, err := Parse(strings.NewReader(sampleMarkup))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}

	first := cards[0]
	if first.Name != "PhoneX" {
		t.Errorf("Name = %q, want PhoneX", first.Name)
	}
	if first.PriceText != "12.000₫" {
		t.Errorf("PriceText = %q, want 12.000₫ (must pick .new, not .old)", first.PriceText)
	}
	if first.ImageRef != "/img/phonex.png" {
		t.Errorf("ImageRef = %q", first.ImageRef)
	}
	if first.ListPrice != 12000 || first.Popularity != 87 {
		t.Errorf("metadata = (%d, %d), want (12000, 87)", first.ListPrice, first.Popularity)
	}

	// Incomplete card still parses; Extract is the gatekeeper.
	incomplete := cards[2]
	if incomplete.Name != "Hàng sắp về" {
		t.Errorf("Name = %q", incomplete.Name)
	}
	if _, err := Extract(incomplete); err == nil {
		t.Error("Expected extraction of incomplete card to fail")
	}
}

func TestSortAndSearch(t *testing.T) {
	cards, err := Parse(strings.NewReader(sampleMarkup))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	t.Run("price ascending keeps zero-priced first", func(t *testing.T) {
		sorted := append([]Card(nil), cards...)
		Sort(sorted, SortPriceAsc)
		if sorted[0].Name != "Hàng sắp về" || sorted[1].Name != "PhoneX" || sorted[2].Name != "TabletY" {
			t.Errorf("unexpected order: %s, %s, %s", sorted[0].Name, sorted[1].Name, sorted[2].Name)
		}
	})

	t.Run("price descending", func(t *testing.T) {
		sorted := append([]Card(nil), cards...)
		Sort(sorted, SortPriceDesc)
		if sorted[0].Name != "TabletY" {
			t.Errorf("expected TabletY first, got %s", sorted[0].Name)
		}
	})

	t.Run("popularity", func(t *testing.T) {
		sorted := append([]Card(nil), cards...)
		Sort(sorted, SortPopular)
		if sorted[0].Name != "TabletY" {
			t.Errorf("expected TabletY first, got %s", sorted[0].Name)
		}
	})

	t.Run("unknown mode keeps document order", func(t *testing.T) {
		sorted := append([]Card(nil), cards...)
		Sort(sorted, SortMode("newest"))
		if sorted[0].Name != "PhoneX" {
			t.Errorf("expected document order untouched, got %s first", sorted[0].Name)
		}
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		matched := Search(cards, "phone")
		if len(matched) != 1 || matched[0].Name != "PhoneX" {
			t.Errorf("Search(phone) = %v", matched)
		}
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		if got := len(Search(cards, "  ")); got != 3 {
			t.Errorf("Expected all 3 cards, got %d", got)
		}
	})
}
