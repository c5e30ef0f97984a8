package models

import "sort"

// FavoriteSet is a set of exercise ids. Values are treated as immutable:
// operations that change membership return a new set.
type FavoriteSet map[string]struct{}

// NewFavoriteSet builds a set from ids, ignoring empty strings.
func NewFavoriteSet(ids ...string) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

func (f FavoriteSet) Has(id string) bool {
	_, ok := f[id]
	return ok
}

func (f FavoriteSet) Len() int {
	return len(f)
}

// IDs returns the members in sorted order.
func (f FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy.
func (f FavoriteSet) Clone() FavoriteSet {
	out := make(FavoriteSet, len(f))
	for id := range f {
		out[id] = struct{}{}
	}
	return out
}
