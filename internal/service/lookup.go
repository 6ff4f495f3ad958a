package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexicon/internal/domain"
	"lexicon/internal/repository"
	"lexicon/pkg/dictionary"

	"go.uber.org/zap"
)

// ErrEmptyWord is returned when the user sends nothing to look up
var ErrEmptyWord = errors.New("word cannot be empty")

// ErrInvalidLanguage is returned for language codes the bot does not accept
var ErrInvalidLanguage = errors.New("invalid language code")

// Dictionary is the part of *dictionary.Client used by the bot
type Dictionary interface {
	FetchDefinition(ctx context.Context, word, language string) (dictionary.Result[dictionary.DefinitionItem], error)
	FetchSynonyms(ctx context.Context, word, language string) (dictionary.Result[dictionary.SynonymGroup], error)
	FetchAntonyms(ctx context.Context, word, language string) (dictionary.Result[dictionary.AntonymGroup], error)
	FetchPhonetics(ctx context.Context, word, language string) (dictionary.Result[dictionary.PhoneticEntry], error)
}

// LookupService resolves words for a user in the user's language.
// Definition lookups are recorded in history; the follow-up lookups
// (synonyms, antonyms, phonetics) are not.
type LookupService struct {
	dict       Dictionary
	userRepo   repository.UserRepository
	lookupRepo repository.LookupRepository
	logger     *zap.Logger
}

// NewLookupService creates a new lookup service
func NewLookupService(
	dict Dictionary,
	userRepo repository.UserRepository,
	lookupRepo repository.LookupRepository,
	logger *zap.Logger,
) *LookupService {
	return &LookupService{
		dict:       dict,
		userRepo:   userRepo,
		lookupRepo: lookupRepo,
		logger:     logger,
	}
}

// NormalizeWord trims the word and lowercases it
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Define looks up definitions and records the lookup.
// A word the dictionary does not know is recorded as not found and the
// dictionary's not-found error is returned.
func (s *LookupService) Define(ctx context.Context, userID int64, word string) ([]dictionary.DefinitionItem, error) {
	word = NormalizeWord(word)
	if word == "" {
		return nil, ErrEmptyWord
	}

	language, err := s.userRepo.GetLanguage(userID)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	result, err := s.dict.FetchDefinition(ctx, word, language)
	if err != nil && !dictionary.IsNotFound(err) {
		return nil, err
	}

	if saveErr := s.lookupRepo.SaveLookup(userID, word, language, err == nil); saveErr != nil {
		s.logger.Error("Failed to save lookup",
			zap.Error(saveErr),
			zap.Int64("user_id", userID),
			zap.String("word", word),
		)
	}

	if err != nil {
		return nil, err
	}
	return result.Items(), nil
}

// Synonyms returns synonym groups of the word
func (s *LookupService) Synonyms(ctx context.Context, userID int64, word string) ([]dictionary.SynonymGroup, error) {
	word, language, err := s.prepare(userID, word)
	if err != nil {
		return nil, err
	}
	result, err := s.dict.FetchSynonyms(ctx, word, language)
	if err != nil {
		return nil, err
	}
	return result.Items(), nil
}

// Antonyms returns antonym groups of the word
func (s *LookupService) Antonyms(ctx context.Context, userID int64, word string) ([]dictionary.AntonymGroup, error) {
	word, language, err := s.prepare(userID, word)
	if err != nil {
		return nil, err
	}
	result, err := s.dict.FetchAntonyms(ctx, word, language)
	if err != nil {
		return nil, err
	}
	return result.Items(), nil
}

// Phonetics returns pronunciations of the word
func (s *LookupService) Phonetics(ctx context.Context, userID int64, word string) ([]dictionary.PhoneticEntry, error) {
	word, language, err := s.prepare(userID, word)
	if err != nil {
		return nil, err
	}
	result, err := s.dict.FetchPhonetics(ctx, word, language)
	if err != nil {
		return nil, err
	}
	return result.Items(), nil
}

// Language returns user's current lookup language
func (s *LookupService) Language(userID int64) (string, error) {
	return s.userRepo.GetLanguage(userID)
}

// SetLanguage validates and stores user's lookup language
func (s *LookupService) SetLanguage(userID int64, code string) (string, error) {
	language, ok := domain.NormalizeLanguage(code)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
	}
	if err := s.userRepo.SetLanguage(userID, language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	return language, nil
}

func (s *LookupService) prepare(userID int64, word string) (string, string, error) {
	word = NormalizeWord(word)
	if word == "" {
		return "", "", ErrEmptyWord
	}
	language, err := s.userRepo.GetLanguage(userID)
	if err != nil {
		return "", "", fmt.Errorf("get language: %w", err)
	}
	return word, language, nil
}
