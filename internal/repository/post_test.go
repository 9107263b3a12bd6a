package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"friendly/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{
		Caption:       "sunset",
		PostImagePath: "/uploads/abc_sunset.jpg",
		PostDate:      time.Now(),
		UserID:        "u-1",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.Equal(t, 1, post.PostID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE user_id = $1 ORDER BY post_date DESC`)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "caption", "user_id"}).
			AddRow(1, "first", "u-1").
			AddRow(2, "second", "u-1"))

	// Preloads run after the main query, in field name order.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE "likes"."post_id" IN ($1,$2)`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"like_id", "post_id", "user_id"}).
			AddRow(1, 1, "u-2"))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name"}).AddRow("u-1", "sthams"))

	posts, err := repo.ListByUser(ctx, "u-1")
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Caption)
	assert.Len(t, posts[0].Likes, 1)
	assert.Equal(t, "sthams", posts[0].User.UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts" WHERE post_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE post_id = $1 ORDER BY "posts"."post_id" LIMIT $2`)).
		WithArgs(99, 1).
		WillReturnError(assert.AnError)

	post, err := repo.GetByID(ctx, 99)
	assert.Error(t, err)
	assert.Nil(t, post)
}
