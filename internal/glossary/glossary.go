// Package glossary loads a user-maintained YAML file of preferred
// translations, consulted before any network provider.
package glossary

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is a user-defined translation for a single word.
type Entry struct {
	Translation string `yaml:"translation"`
	IPA         string `yaml:"ipa,omitempty"`
}

type Glossary struct {
	entries map[string]Entry
}

// Load reads a glossary file mapping words to entries. A missing file is not
// an error; it yields an empty glossary.
func Load(file string) (*Glossary, error) {
	if file == "" {
		return &Glossary{entries: map[string]Entry{}}, nil
	}

	contents, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return &Glossary{entries: map[string]Entry{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", file, err)
	}

	var raw map[string]Entry
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", file, err)
	}

	entries := make(map[string]Entry, len(raw))
	for word, entry := range raw {
		if entry.Translation == "" {
			continue
		}
		entries[strings.ToLower(strings.TrimSpace(word))] = entry
	}
	return &Glossary{entries: entries}, nil
}

// Lookup finds an entry by word, case-insensitively.
func (g *Glossary) Lookup(word string) (Entry, bool) {
	entry, ok := g.entries[strings.ToLower(strings.TrimSpace(word))]
	return entry, ok
}

// Len reports the number of loaded entries.
func (g *Glossary) Len() int {
	return len(g.entries)
}
