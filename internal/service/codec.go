package service

import (
	"encoding/json"
	"fmt"

	"github.com/nhattran/techmart/internal/models"
)

// Persisted payloads keep the JSON layout existing profiles already use:
// cart is an array of {name, price, img, quantity} objects, favorites an
// array of product-name strings. Decoding is lenient in one direction only:
// a payload that is not wholly well-formed hydrates as the empty default,
// never as a partial salvage.

func encodeCart(cart *models.Cart) ([]byte, error) {
	if cart.Len() == 0 {
		// Empty cart persists as [], matching existing profiles.
		return []byte("[]"), nil
	}
	return json.Marshal(cart.Items)
}

func decodeCart(raw []byte) (models.Cart, error) {
	var items []models.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return models.Cart{}, fmt.Errorf("cart payload is not a line-item array: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		switch {
		case item.Name == "":
			return models.Cart{}, fmt.Errorf("cart payload has a line without a name")
		case item.ImageRef == "":
			return models.Cart{}, fmt.Errorf("cart line %q has no image ref", item.Name)
		case item.UnitPrice < 0:
			return models.Cart{}, fmt.Errorf("cart line %q has negative price %d", item.Name, item.UnitPrice)
		case item.Quantity < 1:
			return models.Cart{}, fmt.Errorf("cart line %q has quantity %d", item.Name, item.Quantity)
		case seen[item.Name]:
			return models.Cart{}, fmt.Errorf("cart payload repeats product %q", item.Name)
		}
		seen[item.Name] = true
	}

	return models.Cart{Items: items}, nil
}

func encodeFavorites(favorites *models.FavoriteSet) ([]byte, error) {
	if favorites.Len() == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(favorites.IDs())
}

func decodeFavorites(raw []byte) (models.FavoriteSet, error) {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return models.FavoriteSet{}, fmt.Errorf("favorites payload is not a string array: %w", err)
	}
	// Duplicates and empties are dropped, not rejected; the set invariant
	// wins over byte-level fidelity here.
	return models.NewFavoriteSet(ids), nil
}
