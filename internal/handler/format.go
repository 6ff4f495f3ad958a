package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lexicon/internal/domain"
	"lexicon/pkg/dictionary"
)

// Telegram rejects messages longer than 4096 characters
const maxMessageLength = 4000

func formatDefinitions(word string, items []dictionary.DefinitionItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 %s\n", word)

	for _, item := range items {
		fmt.Fprintf(&b, "\n%s\n", item.PartOfSpeech)
		for _, sense := range item.Definitions {
			fmt.Fprintf(&b, "%d. %s\n", sense.Index+1, sense.Text)
		}
	}

	return truncateMessage(strings.TrimRight(b.String(), "\n"))
}

// relatedGroup is a definition with its synonyms or antonyms
type relatedGroup struct {
	definition string
	words      []string
}

func formatSynonyms(word string, groups []dictionary.SynonymGroup) string {
	related := make([]relatedGroup, 0, len(groups))
	for _, g := range groups {
		related = append(related, relatedGroup{definition: g.Definition, words: g.Synonyms})
	}
	return formatRelated(
		fmt.Sprintf("🔁 Синонимы к «%s»:", word),
		fmt.Sprintf("Синонимов для «%s» не нашлось", word),
		related,
	)
}

func formatAntonyms(word string, groups []dictionary.AntonymGroup) string {
	related := make([]relatedGroup, 0, len(groups))
	for _, g := range groups {
		related = append(related, relatedGroup{definition: g.Definition, words: g.Antonyms})
	}
	return formatRelated(
		fmt.Sprintf("↔️ Антонимы к «%s»:", word),
		fmt.Sprintf("Антонимов для «%s» не нашлось", word),
		related,
	)
}

// formatRelated skips definitions without related words
func formatRelated(title, empty string, groups []relatedGroup) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	found := false
	for _, g := range groups {
		if len(g.words) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(&b, "\n• %s\n  → %s\n", g.definition, strings.Join(g.words, ", "))
	}

	if !found {
		return empty
	}
	return truncateMessage(strings.TrimRight(b.String(), "\n"))
}

func formatPhonetics(word string, entries []dictionary.PhoneticEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔊 %s\n", word)

	found := false
	for _, e := range entries {
		if e.Pronunciation == "" && !e.HasAudio() {
			continue
		}
		found = true

		pronunciation := e.Pronunciation
		if pronunciation == "" {
			pronunciation = "—"
		}
		fmt.Fprintf(&b, "\n%s", pronunciation)
		if e.HasAudio() {
			fmt.Fprintf(&b, "\n%s", *e.Audio)
		}
		b.WriteString("\n")
	}

	if !found {
		return fmt.Sprintf("Произношение для «%s» не найдено", word)
	}
	return truncateMessage(strings.TrimRight(b.String(), "\n"))
}

func formatLookups(lookups []domain.Lookup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Слова за выбранный день (%d):\n\n", len(lookups))

	for i, l := range lookups {
		fmt.Fprintf(&b, "%d. %s", i+1, l.Word)
		if l.Language != domain.DefaultLanguage {
			fmt.Fprintf(&b, " [%s]", l.Language)
		}
		if !l.Found {
			b.WriteString(" — не найдено")
		}
		b.WriteString("\n")
	}

	return truncateMessage(strings.TrimRight(b.String(), "\n"))
}

func truncateMessage(s string) string {
	if utf8.RuneCountInString(s) <= maxMessageLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxMessageLength-1]) + "…"
}
