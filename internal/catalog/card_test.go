package catalog

import (
	"errors"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		card      Card
		wantErr   bool
		wantPrice int64
	}{
		{
			name:      "well-formed card",
			card:      Card{Name: "PhoneX", PriceText: "12.000đ", ImageRef: "/x.png"},
			wantPrice: 12000,
		},
		{
			name:      "price with currency sign and spaces",
			card:      Card{Name: "TabletY", PriceText: " 1.250.000 ₫ ", ImageRef: "/y.png"},
			wantPrice: 1250000,
		},
		{
			name:    "missing name",
			card:    Card{Name: "  ", PriceText: "12.000đ", ImageRef: "/x.png"},
			wantErr: true,
		},
		{
			name:    "missing image ref",
			card:    Card{Name: "PhoneX", PriceText: "12.000đ"},
			wantErr: true,
		},
		{
			name:    "price without digits",
			card:    Card{Name: "PhoneX", PriceText: "Liên hệ", ImageRef: "/x.png"},
			wantErr: true,
		},
		{
			name:    "everything missing still one failure",
			card:    Card{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := Extract(tt.card)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected extraction to fail")
				}
				if !errors.Is(err, ErrExtraction) {
					t.Errorf("Expected ErrExtraction, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if item.UnitPrice != tt.wantPrice {
				t.Errorf("UnitPrice = %d, want %d", item.UnitPrice, tt.wantPrice)
			}
			if item.Quantity != 1 {
				t.Errorf("Quantity = %d, want 1", item.Quantity)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		text    string
		want    int64
		wantErr bool
	}{
		{"12.000đ", 12000, false},
		{"12,000₫", 12000, false},
		{"499000", 499000, false},
		{"", 0, true},
		{"₫", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.text)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePrice(%q): expected error", tt.text)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%q) failed: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
