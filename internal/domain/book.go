// Package domain contains the core business entities for the Shelfmark catalogue.
package domain

// Book represents a catalogue entry.
type Book struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       string  `json:"genre"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
}

// BookFilter holds the optional predicates for a catalogue search.
// Nil fields are no-ops; set fields compose with logical AND.
type BookFilter struct {
	Title     *string  // case-insensitive substring match
	Author    *string  // case-insensitive substring match
	Genre     *string  // case-insensitive substring match
	MinRating *float64 // inclusive lower bound
}

// IsEmpty reports whether no predicate is set.
func (f BookFilter) IsEmpty() bool {
	return f.Title == nil && f.Author == nil && f.Genre == nil && f.MinRating == nil
}
