package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryWriteRepository(db, nil)

	rows := sqlmock.NewRows([]string{"id", "user_id", "game_id", "bet_amount", "win_amount", "played_at"}).
		AddRow(10, 1, 2, 100.0, 200.0, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO game_history")).
		WithArgs(int64(1), int64(2), float64(100), float64(200)).
		WillReturnRows(rows)

	entry, err := repo.Save(context.Background(), 1, 2, 100, 200)

	require.NoError(t, err)
	assert.Equal(t, int64(10), entry.ID)
	assert.Equal(t, float64(200), entry.WinAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryReadRepository_ListByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryReadRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "game_id", "bet_amount", "win_amount", "played_at", "game_name"}).
		AddRow(2, 1, 1, 100.0, 200.0, now, "BC99 Wingo").
		AddRow(1, 1, 1, 50.0, 0.0, now.Add(-time.Minute), "BC99 Wingo")

	mock.ExpectQuery(regexp.QuoteMeta("FROM game_history h")).
		WithArgs(int64(1), historyLimit).
		WillReturnRows(rows)

	entries, err := repo.ListByUserID(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "BC99 Wingo", entries[0].GameName)
	assert.Equal(t, float64(200), entries[0].WinAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryReadRepository_ListByUserID_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM game_history h")).
		WithArgs(int64(7), historyLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "game_id", "bet_amount", "win_amount", "played_at", "game_name"}))

	entries, err := repo.ListByUserID(context.Background(), 7)

	require.NoError(t, err)
	assert.Empty(t, entries)
}
