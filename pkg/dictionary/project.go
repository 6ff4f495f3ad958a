package dictionary

// projectDefinitions groups definition texts by part of speech
func projectDefinitions(e Entry) []DefinitionItem {
	items := make([]DefinitionItem, 0, len(e.Meanings))
	for _, m := range e.Meanings {
		senses := make([]Sense, 0, len(m.Definitions))
		for i, d := range m.Definitions {
			senses = append(senses, Sense{Index: i, Text: d.Definition})
		}
		items = append(items, DefinitionItem{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  senses,
		})
	}
	return items
}

// projectSynonyms flattens every definition into a SynonymGroup.
// Part of speech is dropped; Index stays relative to the meaning.
func projectSynonyms(e Entry) []SynonymGroup {
	var groups []SynonymGroup
	for _, m := range e.Meanings {
		for i, d := range m.Definitions {
			groups = append(groups, SynonymGroup{
				Index:      i,
				Definition: d.Definition,
				Synonyms:   nonNil(d.Synonyms),
			})
		}
	}
	return groups
}

// projectAntonyms mirrors projectSynonyms for antonyms
func projectAntonyms(e Entry) []AntonymGroup {
	var groups []AntonymGroup
	for _, m := range e.Meanings {
		for i, d := range m.Definitions {
			groups = append(groups, AntonymGroup{
				Index:      i,
				Definition: d.Definition,
				Antonyms:   nonNil(d.Antonyms),
			})
		}
	}
	return groups
}

// projectPhonetics maps phonetics, turning a missing or empty audio URL into nil
func projectPhonetics(e Entry) []PhoneticEntry {
	entries := make([]PhoneticEntry, 0, len(e.Phonetics))
	for i, p := range e.Phonetics {
		entry := PhoneticEntry{Index: i, Pronunciation: p.Text}
		if p.Audio != "" {
			audio := p.Audio
			entry.Audio = &audio
		}
		entries = append(entries, entry)
	}
	return entries
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
