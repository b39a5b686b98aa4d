package service

import (
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz"
	slugSuffixLength   = 5
)

// newSlug derives a URL-safe identifier from name plus a random five-letter
// suffix. The suffix disambiguates equal names; with ~11.9M combinations per
// name the pair is treated as unique by construction, not checked against
// the store.
func newSlug(name string) string {
	return slug.Make(name) + "-" + gonanoid.MustGenerate(slugSuffixAlphabet, slugSuffixLength)
}

// searchSlug normalizes a free-text search query the same way orchid names
// are slugged, so substring matching runs in slug space.
func searchSlug(query string) string {
	return slug.Make(query)
}
