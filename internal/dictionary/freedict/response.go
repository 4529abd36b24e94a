// https://dictionaryapi.dev/
package freedict

import (
	"encoding/json"
	"fmt"
)

// Entry is one element of the API's top-level response array.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic optionally carries a transcription, an audio URL, or both.
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
}

// Parse decodes the response body into its entry list.
func Parse(body []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return entries, nil
}

// FirstIPA returns the first non-empty transcription among the phonetic
// sub-entries, falling back to the entry-level phonetic field.
func (e Entry) FirstIPA() string {
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return e.Phonetic
}

// FirstAudioURL returns the first non-empty audio URL among the phonetic
// sub-entries. The URL may come from a different sub-entry than the
// transcription.
func (e Entry) FirstAudioURL() string {
	for _, p := range e.Phonetics {
		if p.Audio != "" {
			return p.Audio
		}
	}
	return ""
}
