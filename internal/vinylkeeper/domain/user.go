package domain

import "time"

// User is the authenticated principal. UserUUID is the stable external
// identifier: it is assigned once at registration, never changes, and is the
// only value ever embedded in a token subject. The internal ID stays out of
// everything client-visible.
type User struct {
	ID              string
	UserUUID        string // external identifier, token subject
	Username        string
	Email           string
	PasswordHash    string // argon2 encoded
	IsActive        bool
	IsAcceptedTerms bool
	IsSuperuser     bool
	Timezone        string
	RoleID          string
	LastLogin       *time.Time
	RegisteredAt    time.Time
}

// Role groups users for authorisation purposes.
type Role struct {
	ID   string
	Name string
}
