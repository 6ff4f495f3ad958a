package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lexicon/internal/domain"
	"lexicon/internal/testutil"
	"lexicon/pkg/dictionary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLookupService() (*LookupService, *testutil.MockDictionary, *testutil.MockUserRepository, *testutil.MockLookupRepository) {
	dict := new(testutil.MockDictionary)
	userRepo := new(testutil.MockUserRepository)
	lookupRepo := new(testutil.MockLookupRepository)
	return NewLookupService(dict, userRepo, lookupRepo, testutil.NewTestLogger()), dict, userRepo, lookupRepo
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "hello", NormalizeWord("  Hello\n"))
	assert.Equal(t, "ice cream", NormalizeWord("Ice Cream"))
	assert.Equal(t, "", NormalizeWord("   "))
}

func TestLookupService_Define(t *testing.T) {
	ctx := context.Background()

	t.Run("found word is recorded", func(t *testing.T) {
		service, dict, userRepo, lookupRepo := newLookupService()

		userRepo.On("GetLanguage", int64(123)).Return("en", nil)
		dict.On("FetchDefinition", ctx, "hello", "en").
			Return(testutil.NewTestDefinitions("noun", "A greeting."), nil)
		lookupRepo.On("SaveLookup", int64(123), "hello", "en", true).Return(nil)

		items, err := service.Define(ctx, 123, " Hello ")

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "noun", items[0].PartOfSpeech)
		dict.AssertExpectations(t)
		lookupRepo.AssertExpectations(t)
	})

	t.Run("unknown word is recorded as not found", func(t *testing.T) {
		service, dict, userRepo, lookupRepo := newLookupService()

		userRepo.On("GetLanguage", int64(123)).Return("en", nil)
		dict.On("FetchDefinition", ctx, "asdfxyz", "en").
			Return(dictionary.Result[dictionary.DefinitionItem]{}, testutil.NewNotFoundError())
		lookupRepo.On("SaveLookup", int64(123), "asdfxyz", "en", false).Return(nil)

		items, err := service.Define(ctx, 123, "asdfxyz")

		assert.Nil(t, items)
		assert.True(t, dictionary.IsNotFound(err))
		lookupRepo.AssertExpectations(t)
	})

	t.Run("transport error is not recorded", func(t *testing.T) {
		service, dict, userRepo, lookupRepo := newLookupService()

		userRepo.On("GetLanguage", int64(123)).Return("de", nil)
		dict.On("FetchDefinition", ctx, "haus", "de").
			Return(dictionary.Result[dictionary.DefinitionItem]{}, &dictionary.Error{Kind: dictionary.KindTransport})

		_, err := service.Define(ctx, 123, "Haus")

		assert.ErrorIs(t, err, dictionary.ErrTransport)
		lookupRepo.AssertNotCalled(t, "SaveLookup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("history failure does not fail the lookup", func(t *testing.T) {
		service, dict, userRepo, lookupRepo := newLookupService()

		userRepo.On("GetLanguage", int64(123)).Return("en", nil)
		dict.On("FetchDefinition", ctx, "hello", "en").
			Return(testutil.NewTestDefinitions("noun", "A greeting."), nil)
		lookupRepo.On("SaveLookup", int64(123), "hello", "en", true).Return(fmt.Errorf("db error"))

		items, err := service.Define(ctx, 123, "hello")

		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("empty word", func(t *testing.T) {
		service, dict, userRepo, _ := newLookupService()

		_, err := service.Define(ctx, 123, "   ")

		assert.ErrorIs(t, err, ErrEmptyWord)
		userRepo.AssertNotCalled(t, "GetLanguage", mock.Anything)
		dict.AssertNotCalled(t, "FetchDefinition", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("language lookup fails", func(t *testing.T) {
		service, dict, userRepo, _ := newLookupService()

		userRepo.On("GetLanguage", int64(123)).Return("", fmt.Errorf("db error"))

		_, err := service.Define(ctx, 123, "hello")

		assert.Error(t, err)
		dict.AssertNotCalled(t, "FetchDefinition", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLookupService_FollowUps(t *testing.T) {
	ctx := context.Background()
	service, dict, userRepo, lookupRepo := newLookupService()

	audio := "https://example.com/hello.mp3"
	userRepo.On("GetLanguage", int64(123)).Return("en", nil)
	dict.On("FetchSynonyms", ctx, "hello", "en").Return(dictionary.NewResult([]dictionary.SynonymGroup{
		{Index: 0, Definition: "A greeting.", Synonyms: []string{"greeting"}},
	}), nil)
	dict.On("FetchAntonyms", ctx, "hello", "en").Return(dictionary.NewResult([]dictionary.AntonymGroup{
		{Index: 0, Definition: "A greeting.", Antonyms: []string{"goodbye"}},
		{Index: 1, Definition: "To greet.", Antonyms: []string{}},
	}), nil)
	dict.On("FetchPhonetics", ctx, "hello", "en").Return(dictionary.NewResult([]dictionary.PhoneticEntry{
		{Index: 0, Pronunciation: "/həˈləʊ/", Audio: &audio},
	}), nil)

	synonyms, err := service.Synonyms(ctx, 123, "hello")
	assert.NoError(t, err)
	assert.Equal(t, []string{"greeting"}, synonyms[0].Synonyms)

	antonyms, err := service.Antonyms(ctx, 123, "HELLO")
	assert.NoError(t, err)
	assert.Len(t, antonyms, 2)

	phonetics, err := service.Phonetics(ctx, 123, "hello")
	assert.NoError(t, err)
	assert.Equal(t, &audio, phonetics[0].Audio)

	dict.AssertExpectations(t)
	lookupRepo.AssertNotCalled(t, "SaveLookup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLookupService_SetLanguage(t *testing.T) {
	tests := []struct {
		name             string
		code             string
		mockError        error
		expectedLanguage string
		expectedInvalid  bool
		expectedError    bool
	}{
		{
			name:             "valid code",
			code:             "ES",
			expectedLanguage: "es",
		},
		{
			name:            "invalid code",
			code:            "english",
			expectedInvalid: true,
			expectedError:   true,
		},
		{
			name:          "database error",
			code:          "fr",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, userRepo, _ := newLookupService()

			if !tt.expectedInvalid {
				normalized, _ := domain.NormalizeLanguage(tt.code)
				userRepo.On("SetLanguage", int64(123), normalized).Return(tt.mockError)
			}

			language, err := service.SetLanguage(123, tt.code)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedInvalid, errors.Is(err, ErrInvalidLanguage))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLanguage, language)
			}

			userRepo.AssertExpectations(t)
		})
	}
}
