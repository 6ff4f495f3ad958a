package testutil

import (
	"context"
	"time"

	"lexicon/internal/domain"
	"lexicon/pkg/dictionary"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetLanguage(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) SetLanguage(userID int64, language string) error {
	args := m.Called(userID, language)
	return args.Error(0)
}

// MockLookupRepository is a mock for LookupRepository
type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) SaveLookup(userID int64, word, language string, found bool) error {
	args := m.Called(userID, word, language, found)
	return args.Error(0)
}

func (m *MockLookupRepository) GetDaysWithLookups(userID int64, limit, offset int) ([]domain.Day, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Day), args.Error(1)
}

func (m *MockLookupRepository) GetTotalDaysCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockLookupRepository) GetLookupsByDate(userID int64, date time.Time) ([]domain.Lookup, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lookup), args.Error(1)
}

func (m *MockLookupRepository) CleanOldLookups(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockDictionary is a mock for service.Dictionary
type MockDictionary struct {
	mock.Mock
}

func (m *MockDictionary) FetchDefinition(ctx context.Context, word, language string) (dictionary.Result[dictionary.DefinitionItem], error) {
	args := m.Called(ctx, word, language)
	return args.Get(0).(dictionary.Result[dictionary.DefinitionItem]), args.Error(1)
}

func (m *MockDictionary) FetchSynonyms(ctx context.Context, word, language string) (dictionary.Result[dictionary.SynonymGroup], error) {
	args := m.Called(ctx, word, language)
	return args.Get(0).(dictionary.Result[dictionary.SynonymGroup]), args.Error(1)
}

func (m *MockDictionary) FetchAntonyms(ctx context.Context, word, language string) (dictionary.Result[dictionary.AntonymGroup], error) {
	args := m.Called(ctx, word, language)
	return args.Get(0).(dictionary.Result[dictionary.AntonymGroup]), args.Error(1)
}

func (m *MockDictionary) FetchPhonetics(ctx context.Context, word, language string) (dictionary.Result[dictionary.PhoneticEntry], error) {
	args := m.Called(ctx, word, language)
	return args.Get(0).(dictionary.Result[dictionary.PhoneticEntry]), args.Error(1)
}
