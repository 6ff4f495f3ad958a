package service

import (
	"fmt"
	"testing"
	"time"

	"lexicon/internal/domain"
	"lexicon/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHistoryService_GetDaysList(t *testing.T) {
	tests := []struct {
		name               string
		page               int
		mockDays           []domain.Day
		mockTotalDays      int
		mockError          error
		mockTotalDaysError error
		expectedPages      int
		expectedDaysCount  int
		expectedError      bool
	}{
		{
			name:              "first page of two",
			page:              1,
			mockDays:          []domain.Day{testutil.NewTestDay(time.Now(), 5), testutil.NewTestDay(time.Now().AddDate(0, 0, -1), 3)},
			mockTotalDays:     14,
			expectedPages:     2,
			expectedDaysCount: 2,
		},
		{
			name:              "partial last page rounds up",
			page:              2,
			mockDays:          []domain.Day{testutil.NewTestDay(time.Now().AddDate(0, 0, -8), 1)},
			mockTotalDays:     8,
			expectedPages:     2,
			expectedDaysCount: 1,
		},
		{
			name:              "negative page defaults to 1",
			page:              -1,
			mockDays:          []domain.Day{},
			mockTotalDays:     7,
			expectedPages:     1,
			expectedDaysCount: 0,
		},
		{
			name:              "zero total days sets totalPages to 1",
			page:              1,
			mockDays:          []domain.Day{},
			mockTotalDays:     0,
			expectedPages:     1,
			expectedDaysCount: 0,
		},
		{
			name:          "database error on days",
			page:          1,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:               "database error on total count",
			page:               1,
			mockDays:           []domain.Day{testutil.NewTestDay(time.Now(), 5)},
			mockTotalDaysError: fmt.Errorf("db error"),
			expectedError:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockLookupRepository)

			page := tt.page
			if page < 1 {
				page = 1
			}
			offset := (page - 1) * HistoryPageSize

			mockRepo.On("GetDaysWithLookups", int64(123), HistoryPageSize, offset).Return(tt.mockDays, tt.mockError)
			if tt.mockError == nil {
				mockRepo.On("GetTotalDaysCount", int64(123)).Return(tt.mockTotalDays, tt.mockTotalDaysError)
			}

			service := NewHistoryService(mockRepo, time.UTC)

			days, totalPages, err := service.GetDaysList(123, tt.page)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPages, totalPages)
				assert.Len(t, days, tt.expectedDaysCount)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHistoryService_GetLookupsByDate(t *testing.T) {
	tests := []struct {
		name          string
		dateStr       string
		mockLookups   []domain.Lookup
		expectedError bool
	}{
		{
			name:    "valid date",
			dateStr: "20241212",
			mockLookups: []domain.Lookup{
				testutil.NewTestLookup(1, 123, "hello", true),
			},
		},
		{
			name:          "invalid date format",
			dateStr:       "2024-12-12",
			expectedError: true,
		},
		{
			name:          "empty date",
			dateStr:       "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockLookupRepository)

			if !tt.expectedError {
				expected := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)
				mockRepo.On("GetLookupsByDate", int64(123), mock.MatchedBy(func(d time.Time) bool {
					return d.Equal(expected)
				})).Return(tt.mockLookups, nil)
			}

			service := NewHistoryService(mockRepo, time.UTC)

			lookups, err := service.GetLookupsByDate(123, tt.dateStr)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockLookups, lookups)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHistoryService_Location(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	assert.Equal(t, moscow, NewHistoryService(new(testutil.MockLookupRepository), moscow).Location())
	assert.Equal(t, time.UTC, NewHistoryService(new(testutil.MockLookupRepository), nil).Location())
}
