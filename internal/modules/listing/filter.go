// README: Pure conjunctive filter predicate applied to the published set.
package listing

import "strings"

// Filter holds the slots extracted from a search intent. An unset field
// (empty string, nil pointer, empty slice) imposes no constraint; it is
// never read as "must be empty". The predicate is independent of how
// listings were retrieved, so a store-side pushdown could replace the
// in-memory pass without touching callers.
type Filter struct {
	// Location is matched as a case-sensitive substring of either the
	// address or the title; either field is sufficient.
	Location string
	// MaxPrice is an inclusive upper bound.
	MaxPrice *float64
	// RoomType must match the listing type exactly.
	RoomType string
	// Amenities must all be present on the listing (superset check).
	Amenities []string
}

// Matches reports whether l satisfies every set field of f.
func (f Filter) Matches(l Listing) bool {
	if f.Location != "" {
		if !strings.Contains(l.Address, f.Location) && !strings.Contains(l.Title, f.Location) {
			return false
		}
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.RoomType != "" && l.Type != f.RoomType {
		return false
	}
	for _, want := range f.Amenities {
		if !containsTag(l.Amenities, want) {
			return false
		}
	}
	return true
}

// Apply returns the listings matching f, preserving input order.
func Apply(ls []Listing, f Filter) []Listing {
	var out []Listing
	for _, l := range ls {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
