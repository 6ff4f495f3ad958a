package dictionary

// Entry is one upstream dictionary record for a word.
// The API returns a list of these, one per etymology.
type Entry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics"`
	Origin     string     `json:"origin,omitempty"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

// Phonetic is a transcription with an optional recording
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups the definitions sharing a part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single sense of the word
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// DefinitionItem lists the senses of one part of speech
type DefinitionItem struct {
	PartOfSpeech string  `json:"pos"`
	Definitions  []Sense `json:"definition"`
}

// Sense is a numbered definition text. Index restarts at 0 for every meaning.
type Sense struct {
	Index int    `json:"num"`
	Text  string `json:"definition"`
}

// SynonymGroup holds the synonyms attached to one definition
type SynonymGroup struct {
	Index      int      `json:"num"`
	Definition string   `json:"type"`
	Synonyms   []string `json:"synonyms"`
}

// AntonymGroup holds the antonyms attached to one definition
type AntonymGroup struct {
	Index      int      `json:"num"`
	Definition string   `json:"type"`
	Antonyms   []string `json:"antonyms"`
}

// PhoneticEntry is a pronunciation. Audio is nil when the API has no
// recording and encodes as JSON null.
type PhoneticEntry struct {
	Index         int     `json:"num"`
	Pronunciation string  `json:"pronunciation"`
	Audio         *string `json:"audio"`
}

// HasAudio reports whether a recording URL is available
func (p PhoneticEntry) HasAudio() bool {
	return p.Audio != nil
}

// apiError is the body the API sends instead of entries
type apiError struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}
