package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

const likeInsertSQL = `INSERT INTO likes (post_id, user_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (post_id, user_id) DO NOTHING`

func TestLikeRepository_Create(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantCreated  bool
	}{
		{"New Like", 1, true},
		{"Duplicate Like", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewLikeRepository(db)

			mock.ExpectExec(regexp.QuoteMeta(likeInsertSQL)).
				WithArgs(7, "u-1").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			created, err := repo.Create(context.Background(), 7, "u-1")
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLikeRepository_DeleteByPostAndUser(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantDeleted  bool
	}{
		{"Existing Like", 1, true},
		{"Absent Like", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewLikeRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE post_id = $1 AND user_id = $2`)).
				WithArgs(7, "u-1").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			mock.ExpectCommit()

			deleted, err := repo.DeleteByPostAndUser(context.Background(), 7, "u-1")
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLikeRepository_CountByPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE post_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByPost(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_CountByPost_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE post_id = $1`)).
		WithArgs(7).
		WillReturnError(assert.AnError)

	count, err := repo.CountByPost(context.Background(), 7)
	assert.Error(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLikeRepository_Exists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE post_id = $1 AND user_id = $2`)).
		WithArgs(7, "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 7, "u-1")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
