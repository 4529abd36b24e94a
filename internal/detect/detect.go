// Package detect holds the boundary heuristics deciding whether selected
// text is worth sending to the translation pipeline.
package detect

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

var wordPattern = regexp.MustCompile(`^[A-Za-z]+(?:['-][A-Za-z]+)*$`)

// IsWord reports whether the text is a single English-alphabet token,
// allowing internal apostrophes and hyphens ("don't", "well-known").
func IsWord(text string) bool {
	return wordPattern.MatchString(strings.TrimSpace(text))
}

// IsEnglish reports whether the text looks like English. Single words are
// judged by shape alone; language detection is unreliable below a few words.
func IsEnglish(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if IsWord(text) {
		return true
	}

	var letters, ascii int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if r < 128 {
			ascii++
		}
	}
	if letters == 0 {
		return false
	}
	// mostly non-Latin letters cannot be English regardless of what the
	// detector says
	if ascii*2 < letters {
		return false
	}

	return whatlanggo.DetectLang(text) == whatlanggo.Eng
}
