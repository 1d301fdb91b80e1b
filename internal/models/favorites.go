package models

// FavoriteSet is a duplicate-free collection of favorited product names.
// Iteration order is insertion order so the persisted form is stable, but
// callers must not rely on it: only the size is surfaced to the UI.
type FavoriteSet struct {
	ids []string
}

// NewFavoriteSet builds a set from a list of product names, dropping
// duplicates and empty entries.
func NewFavoriteSet(ids []string) FavoriteSet {
	var fs FavoriteSet
	for _, id := range ids {
		if id == "" || fs.Has(id) {
			continue
		}
		fs.ids = append(fs.ids, id)
	}
	return fs
}

// Has reports whether the product is favorited.
func (fs *FavoriteSet) Has(id string) bool {
	for _, existing := range fs.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Toggle adds the product if absent and removes it if present.
// Reports whether the product is favorited after the call.
func (fs *FavoriteSet) Toggle(id string) bool {
	for i, existing := range fs.ids {
		if existing == id {
			fs.ids = append(fs.ids[:i], fs.ids[i+1:]...)
			return false
		}
	}
	fs.ids = append(fs.ids, id)
	return true
}

// Len returns the number of favorited products.
func (fs *FavoriteSet) Len() int {
	return len(fs.ids)
}

// IDs returns a copy of the favorited product names in insertion order.
func (fs *FavoriteSet) IDs() []string {
	out := make([]string, len(fs.ids))
	copy(out, fs.ids)
	return out
}
