// Package dictionary looks up words against a Free Dictionary API compatible
// endpoint and reduces the response to the phonetic fields the UI shows.
package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ymatsuda/wordglass/internal/dictionary/freedict"
)

// Entry is the reduced dictionary result for a single word.
type Entry struct {
	IPA      string `json:"ipa,omitempty"`
	AudioURL string `json:"audioUrl,omitempty"`
}

type Config struct {
	BaseURL string
}

type Reader struct {
	client *resty.Client
}

func NewReader(config Config) *Reader {
	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	return &Reader{client: client}
}

// Define looks up a word and returns its first transcription and audio URL,
// picked independently across the phonetic sub-entries. A (nil, nil) return
// means the word definitively has no entry; callers may record that outcome.
// Errors are transient (network, server failure, malformed body).
func (r *Reader) Define(ctx context.Context, word string) (*Entry, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, fmt.Errorf("empty word")
	}

	res, err := r.client.R().
		SetContext(ctx).
		Get("/api/v2/entries/en/" + url.PathEscape(word))
	if err != nil {
		return nil, fmt.Errorf("client.R().Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		// the API answers 404 for words it does not know
		return nil, nil
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	entries, err := freedict.Parse(res.Body())
	if err != nil {
		return nil, fmt.Errorf("freedict.Parse > %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	entry := Entry{
		IPA:      entries[0].FirstIPA(),
		AudioURL: entries[0].FirstAudioURL(),
	}
	if entry.IPA == "" && entry.AudioURL == "" {
		return nil, nil
	}
	return &entry, nil
}
