package dictionary

import (
	"context"
	"encoding/json"
)

// DefaultClient is used by the package-level Fetch functions
var DefaultClient = NewClient()

// FetchDefinition calls DefaultClient.FetchDefinition
func FetchDefinition(ctx context.Context, word, language string) (Result[DefinitionItem], error) {
	return DefaultClient.FetchDefinition(ctx, word, language)
}

// FetchSynonyms calls DefaultClient.FetchSynonyms
func FetchSynonyms(ctx context.Context, word, language string) (Result[SynonymGroup], error) {
	return DefaultClient.FetchSynonyms(ctx, word, language)
}

// FetchAntonyms calls DefaultClient.FetchAntonyms
func FetchAntonyms(ctx context.Context, word, language string) (Result[AntonymGroup], error) {
	return DefaultClient.FetchAntonyms(ctx, word, language)
}

// FetchPhonetics calls DefaultClient.FetchPhonetics
func FetchPhonetics(ctx context.Context, word, language string) (Result[PhoneticEntry], error) {
	return DefaultClient.FetchPhonetics(ctx, word, language)
}

// FetchRaw calls DefaultClient.FetchRaw
func FetchRaw(ctx context.Context, word, language string) (json.RawMessage, error) {
	return DefaultClient.FetchRaw(ctx, word, language)
}
