package domain

import "time"

// Collection is a user's record collection. Albums belong to exactly one
// collection; deleting the collection cascades to its albums.
type Collection struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
