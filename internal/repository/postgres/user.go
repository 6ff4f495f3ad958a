package postgres

import (
	"database/sql"

	"lexicon/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetLanguage returns user's lookup language, or the default for unknown users
func (r *UserRepo) GetLanguage(userID int64) (string, error) {
	var language string
	query := `SELECT language FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&language)

	if err == sql.ErrNoRows || (err == nil && language == "") {
		return domain.DefaultLanguage, nil
	}
	if err != nil {
		return "", err
	}

	return language, nil
}

// SetLanguage stores user's lookup language
func (r *UserRepo) SetLanguage(userID int64, language string) error {
	query := `
		INSERT INTO users (user_id, authorized, language)
		VALUES ($1, FALSE, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET language = EXCLUDED.language
	`
	_, err := r.db.Exec(query, userID, language)
	return err
}
