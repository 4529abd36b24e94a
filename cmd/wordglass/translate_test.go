package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTranslateCommand(t *testing.T) {
	cmd := newTranslateCommand()

	assert.Equal(t, "translate <text>", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("word"))
	assert.NotNil(t, cmd.Flags().Lookup("preference"))
}

func TestPreferenceFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "known provider",
			value: "mymemory",
		},
		{
			name:  "auto",
			value: "auto",
		},
		{
			name:    "unknown value",
			value:   "deepl",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag preferenceFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.value, flag.String())
		})
	}
}

func TestNewDictionaryCommand(t *testing.T) {
	cmd := newDictionaryCommand()

	assert.Equal(t, "dictionary", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
}
