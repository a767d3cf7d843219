package domain

import (
	"errors"
	"time"
)

// Category is one of the two vote partitions on the ballot.
type Category string

const (
	CategoryFemale Category = "female"
	CategoryMale   Category = "male"
)

var (
	ErrInvalidCategory  = errors.New("invalid category")
	ErrUnknownCandidate = errors.New("unknown candidate")
)

// ParseCategory converts a raw value into a Category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryFemale, CategoryMale:
		return c, nil
	}
	return "", ErrInvalidCategory
}

// Vote is a single cast ballot entry. Votes carry no reference to the voter:
// the portal records them anonymously by construction.
type Vote struct {
	ID        int64     `json:"id"`
	Candidate string    `json:"candidate"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// Candidates holds the configured candidate lists per category.
type Candidates struct {
	Female []string `json:"female"`
	Male   []string `json:"male"`
}

// Contains reports whether name is on the list for the given category.
func (c Candidates) Contains(category Category, name string) bool {
	list := c.Female
	if category == CategoryMale {
		list = c.Male
	}
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
