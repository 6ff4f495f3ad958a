package testutil

import (
	"time"

	"lexicon/internal/domain"
	"lexicon/pkg/dictionary"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestLookup creates a test lookup
func NewTestLookup(id int, userID int64, word string, found bool) domain.Lookup {
	return domain.Lookup{
		ID:        id,
		UserID:    userID,
		Word:      word,
		Language:  domain.DefaultLanguage,
		Found:     found,
		CreatedAt: time.Now(),
	}
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, lookupCount int) domain.Day {
	return domain.Day{
		Date:        date,
		LookupCount: lookupCount,
	}
}

// NewTestDefinitions builds a definition result with one sense per text
func NewTestDefinitions(partOfSpeech string, texts ...string) dictionary.Result[dictionary.DefinitionItem] {
	senses := make([]dictionary.Sense, 0, len(texts))
	for i, text := range texts {
		senses = append(senses, dictionary.Sense{Index: i, Text: text})
	}
	return dictionary.NewResult([]dictionary.DefinitionItem{
		{PartOfSpeech: partOfSpeech, Definitions: senses},
	})
}

// NewNotFoundError mimics the dictionary's answer for an unknown word
func NewNotFoundError() error {
	return &dictionary.Error{
		Kind:       dictionary.KindUpstreamNotFound,
		Message:    "No Definitions Found",
		StatusCode: 404,
	}
}
