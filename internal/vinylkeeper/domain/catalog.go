package domain

import "time"

// Condition grades the physical state of a sleeve or record.
type Condition string

const (
	ConditionMint     Condition = "mint"
	ConditionNearMint Condition = "near_mint"
	ConditionVeryGood Condition = "very_good"
	ConditionGood     Condition = "good"
	ConditionFair     Condition = "fair"
	ConditionPoor     Condition = "poor"
)

// Album is a single record in a collection.
type Album struct {
	ID              string
	CollectionID    string
	Title           string
	ArtistID        string
	GenreID         string
	ReleaseYear     *int
	Description     string
	CoverCondition  Condition
	RecordCondition Condition
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Artist is shared reference data; albums point at it by id.
type Artist struct {
	ID        string
	Name      string
	Country   string
	Biography string
}

// Genre is shared reference data.
type Genre struct {
	ID   string
	Name string
}
