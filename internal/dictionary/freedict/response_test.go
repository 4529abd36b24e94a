package freedict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	body := `[
		{
			"word": "test",
			"phonetic": "/test/",
			"phonetics": [
				{"text": "/tɛst/", "audio": "https://example.com/test.mp3"}
			],
			"meanings": [
				{
					"partOfSpeech": "noun",
					"definitions": [
						{"definition": "a challenge, trial", "example": "a test of strength"}
					]
				}
			]
		}
	]`

	entries, err := Parse([]byte(body))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test", entries[0].Word)
	assert.Equal(t, "/tɛst/", entries[0].Phonetics[0].Text)
	assert.Equal(t, "noun", entries[0].Meanings[0].PartOfSpeech)
}

func TestParse_malformed(t *testing.T) {
	_, err := Parse([]byte(`{"title": "No Definitions Found"}`))
	assert.Error(t, err)
}

func TestEntry_FirstIPA(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name: "transcription and audio may come from different sub-entries",
			entry: Entry{
				Phonetics: []Phonetic{
					{Text: ""},
					{Audio: "a.mp3"},
					{Text: "/tɛst/"},
				},
			},
			want: "/tɛst/",
		},
		{
			name: "falls back to entry-level phonetic",
			entry: Entry{
				Phonetic:  "/wɜːd/",
				Phonetics: []Phonetic{{Audio: "w.mp3"}},
			},
			want: "/wɜːd/",
		},
		{
			name:  "no transcription anywhere",
			entry: Entry{Phonetics: []Phonetic{{Audio: "a.mp3"}}},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.FirstIPA())
		})
	}
}

func TestEntry_FirstAudioURL(t *testing.T) {
	entry := Entry{
		Phonetics: []Phonetic{
			{Text: ""},
			{Audio: "a.mp3"},
			{Text: "/tɛst/"},
		},
	}
	assert.Equal(t, "a.mp3", entry.FirstAudioURL())
	assert.Equal(t, "/tɛst/", entry.FirstIPA())

	assert.Empty(t, Entry{}.FirstAudioURL())
}
