package domain

import "time"

// Comment is an embedded remark on an orchid. Comments live and die with
// their parent orchid and are only ever appended through the aggregate;
// each author gets at most one comment per orchid.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Orchid is the catalog aggregate root. The slug is derived from the name
// plus a random suffix and is recomputed whenever the name changes, so old
// slugs are abandoned on rename.
type Orchid struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	IsNatural  bool      `json:"is_natural"`
	Origin     string    `json:"origin"`
	Slug       string    `json:"slug"`
	CategoryID string    `json:"category_id"`
	Comments   []Comment `json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasCommentBy reports whether author already commented on the orchid.
// The authoritative check happens as a conditional update in the store;
// this is the same scan applied to an in-memory copy.
func (o *Orchid) HasCommentBy(authorID string) bool {
	for _, c := range o.Comments {
		if c.AuthorID == authorID {
			return true
		}
	}
	return false
}
