package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestDBLookupRepository_FindRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewDBLookupRepository(db)

	createdAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM lookups ORDER BY created_at DESC, id DESC LIMIT \\?").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "text", "is_word", "translation", "provider", "ipa", "audio_url", "created_at"}).
			AddRow(2, "breeze", true, "微风", "libretranslate", "/briːz/", "breeze.mp3", createdAt).
			AddRow(1, "hello world", false, "你好，世界", "mymemory", "", "", createdAt.Add(-time.Hour)))

	lookups, err := repository.FindRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, lookups, 2)
	assert.Equal(t, "breeze", lookups[0].Text)
	assert.True(t, lookups[0].IsWord)
	assert.Equal(t, "/briːz/", lookups[0].IPA)
	assert.Equal(t, "mymemory", lookups[1].Provider)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBLookupRepository_FindRecent_queryError(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewDBLookupRepository(db)

	mock.ExpectQuery("SELECT \\* FROM lookups").
		WillReturnError(errors.New("connection refused"))

	_, err := repository.FindRecent(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db.SelectContext(lookups)")
}

func TestDBLookupRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewDBLookupRepository(db)

	mock.ExpectExec("INSERT INTO lookups").
		WithArgs("breeze", true, "微风", "libretranslate", "/briːz/", "breeze.mp3").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repository.Insert(context.Background(), &Lookup{
		Text:        "breeze",
		IsWord:      true,
		Translation: "微风",
		Provider:    "libretranslate",
		IPA:         "/briːz/",
		AudioURL:    "breeze.mp3",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
