// internal/repository/track_repository_test.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go_4_word_card/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTrackRepository_Paging(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormTrackRepository()

	tracks := make([]*model.Track, 0, 7)
	for i := 1; i <= 7; i++ {
		tracks = append(tracks, &model.Track{Title: fmt.Sprintf("T%d", i)})
	}
	require.NoError(t, repo.CreateBatch(ctx, db, tracks))

	count, err := repo.Count(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	page, err := repo.FindPage(ctx, db, 3, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "T4", page[0].Title)
	assert.Equal(t, "T6", page[2].Title)

	last, err := repo.FindPage(ctx, db, 6, 3)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	none, err := repo.FindPage(ctx, db, 30, 3)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGormTrackRepository_CountError(t *testing.T) {
	ctx := context.Background()
	db, mock := setupMockDB(t)
	repo := NewGormTrackRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "tracks"`).WillReturnError(errors.New("too many connections"))

	_, err := repo.Count(ctx, db)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
