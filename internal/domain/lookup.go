package domain

import "time"

// Lookup is one word a user asked the bot about
type Lookup struct {
	ID        int
	UserID    int64
	Word      string
	Language  string
	Found     bool
	CreatedAt time.Time
}
