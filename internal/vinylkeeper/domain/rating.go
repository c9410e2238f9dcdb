package domain

import "time"

// Rating is a user's score for an album, 0 to 5. One rating per user and
// album; re-rating replaces the previous value.
type Rating struct {
	ID        string
	UserID    string
	AlbumID   string
	Score     int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Loan records an album lent out to someone. ReturnedAt is nil while the
// album is still out.
type Loan struct {
	ID         string
	UserID     string
	AlbumID    string
	Borrower   string
	LoanedAt   time.Time
	ReturnedAt *time.Time
}

// WishlistEntry marks an album a user wants. CreatedAt orders the list.
type WishlistEntry struct {
	ID        string
	UserID    string
	AlbumID   string
	CreatedAt time.Time
}
