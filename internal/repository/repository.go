package repository

import (
	"time"

	"lexicon/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	GetLanguage(userID int64) (string, error)
	SetLanguage(userID int64, language string) error
}

// LookupRepository defines lookup history operations
type LookupRepository interface {
	SaveLookup(userID int64, word, language string, found bool) error
	GetDaysWithLookups(userID int64, limit, offset int) ([]domain.Day, error)
	GetTotalDaysCount(userID int64) (int, error)
	GetLookupsByDate(userID int64, date time.Time) ([]domain.Lookup, error)
	CleanOldLookups(days int) error
}
