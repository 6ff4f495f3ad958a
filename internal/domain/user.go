package domain

import "time"

// User represents a bot user
type User struct {
	UserID     int64
	Authorized bool
	Language   string
	CreatedAt  time.Time
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingLanguage UserState = "waiting_language"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State    UserState
	LastWord string
}
