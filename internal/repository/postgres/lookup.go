package postgres

import (
	"database/sql"
	"time"

	"lexicon/internal/domain"
)

// LookupRepo implements repository.LookupRepository.
// Days are computed in the configured time zone and only the last
// windowDays days are listed.
type LookupRepo struct {
	db         *sql.DB
	timezone   string
	windowDays int
}

// NewLookupRepo creates a new lookup history repository
func NewLookupRepo(db *sql.DB, timezone string, windowDays int) *LookupRepo {
	return &LookupRepo{
		db:         db,
		timezone:   timezone,
		windowDays: windowDays,
	}
}

// SaveLookup records that a user looked a word up
func (r *LookupRepo) SaveLookup(userID int64, word, language string, found bool) error {
	query := `
		INSERT INTO lookups (user_id, word, language, found)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, userID, word, language, found)
	return err
}

// GetDaysWithLookups returns days that have lookups with counts, newest first
func (r *LookupRepo) GetDaysWithLookups(userID int64, limit, offset int) ([]domain.Day, error) {
	query := `
		SELECT DATE(created_at AT TIME ZONE $2) AS day, COUNT(*) AS count
		FROM lookups
		WHERE user_id = $1
			AND created_at >= NOW() - INTERVAL '1 day' * $3
		GROUP BY DATE(created_at AT TIME ZONE $2)
		ORDER BY day DESC
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(query, userID, r.timezone, r.windowDays, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.LookupCount); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns number of distinct days with lookups
func (r *LookupRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(created_at AT TIME ZONE $2))
		FROM lookups
		WHERE user_id = $1
			AND created_at >= NOW() - INTERVAL '1 day' * $3
	`

	var count int
	err := r.db.QueryRow(query, userID, r.timezone, r.windowDays).Scan(&count)
	return count, err
}

// GetLookupsByDate returns lookups made on the given calendar day
func (r *LookupRepo) GetLookupsByDate(userID int64, date time.Time) ([]domain.Lookup, error) {
	query := `
		SELECT id, user_id, word, language, found, created_at
		FROM lookups
		WHERE user_id = $1
			AND DATE(created_at AT TIME ZONE $2) = $3::date
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID, r.timezone, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []domain.Lookup
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(&l.ID, &l.UserID, &l.Word, &l.Language, &l.Found, &l.CreatedAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}

	return lookups, rows.Err()
}

// CleanOldLookups deletes lookups older than specified days
func (r *LookupRepo) CleanOldLookups(days int) error {
	query := `
		DELETE FROM lookups
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
