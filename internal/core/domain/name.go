package domain

import "strings"

// Name is a case-insensitive node identifier. The display casing of the
// first occurrence is retained for output; lookups and ordering use the
// lower-cased key.
type Name struct {
	display string
	key     string
}

// NewName creates a Name from its display form.
func NewName(s string) Name {
	return Name{display: s, key: strings.ToLower(s)}
}

// String returns the original display form.
func (n Name) String() string {
	return n.display
}

// Key returns the canonical lower-cased lookup key.
func (n Name) Key() string {
	return n.key
}

// Equal reports whether two names refer to the same node identity.
func (n Name) Equal(o Name) bool {
	return n.key == o.key
}

// Compare orders names case-insensitively by their canonical keys.
func (n Name) Compare(o Name) int {
	return strings.Compare(n.key, o.key)
}
