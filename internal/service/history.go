package service

import (
	"fmt"
	"time"

	"lexicon/internal/domain"
	"lexicon/internal/repository"
)

// HistoryPageSize is the number of days shown per page
const HistoryPageSize = 7

// HistoryService serves the per-user lookup history
type HistoryService struct {
	lookupRepo repository.LookupRepository
	location   *time.Location
}

// NewHistoryService creates a new history service. Days are calendar days in
// location, the zone the repository groups lookups by; nil means UTC.
func NewHistoryService(lookupRepo repository.LookupRepository, location *time.Location) *HistoryService {
	if location == nil {
		location = time.UTC
	}
	return &HistoryService{lookupRepo: lookupRepo, location: location}
}

// Location returns the zone history days are counted in
func (s *HistoryService) Location() *time.Location {
	return s.location
}

// GetDaysList returns a page of days with lookup counts and the total page count
func (s *HistoryService) GetDaysList(userID int64, page int) ([]domain.Day, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * HistoryPageSize
	days, err := s.lookupRepo.GetDaysWithLookups(userID, HistoryPageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get days: %w", err)
	}

	totalDays, err := s.lookupRepo.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count days: %w", err)
	}

	totalPages := (totalDays + HistoryPageSize - 1) / HistoryPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return days, totalPages, nil
}

// GetLookupsByDate returns lookups for a day given in YYYYMMDD format
func (s *HistoryService) GetLookupsByDate(userID int64, dateStr string) ([]domain.Lookup, error) {
	date, err := domain.ParseDateString(dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.lookupRepo.GetLookupsByDate(userID, date)
}
