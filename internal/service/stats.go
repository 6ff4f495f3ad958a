package service

import (
	"fmt"

	"lexicon/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles history retention
type StatsService struct {
	lookupRepo    repository.LookupRepository
	retentionDays int
	logger        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(lookupRepo repository.LookupRepository, retentionDays int, logger *zap.Logger) *StatsService {
	return &StatsService{
		lookupRepo:    lookupRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes lookups older than the retention period
func (s *StatsService) CleanupOldData() error {
	// A zero window would wipe the whole history
	if s.retentionDays < 1 {
		return fmt.Errorf("retention must be at least 1 day, got %d", s.retentionDays)
	}

	s.logger.Info("Starting cleanup of old lookups", zap.Int("retention_days", s.retentionDays))

	if err := s.lookupRepo.CleanOldLookups(s.retentionDays); err != nil {
		s.logger.Error("Failed to cleanup old lookups", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
