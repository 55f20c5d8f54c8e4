package supabase_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thumbnail-backend/internal/apperrors"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/supabase"
)

var columns = []string{
	"id", "user_id", "title", "user_prompt", "prompt_used", "style", "aspect_ratio",
	"color_scheme", "text_overlay", "image_url", "is_generating", "created_at", "updated_at",
}

func newMockClient(t *testing.T) (*supabase.DatabaseClient, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return supabase.NewDatabaseClientFromDB(db), mock
}

func TestDatabaseClient_CreateThumbnail(t *testing.T) {
	client, mock := newMockClient(t)
	userID := uuid.New()
	thumb := models.NewPendingThumbnail(userID, models.GenerateThumbnailRequest{
		Title: "My Vlog Ep 1", Style: "Minimalist", AspectRatio: "16:9",
	})
	now := time.Now()

	mock.ExpectQuery("INSERT INTO thumbnails").
		WithArgs(thumb.ID, userID, "My Vlog Ep 1", sqlmock.AnyArg(), "Minimalist", "16:9", sqlmock.AnyArg(), false, true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, client.CreateThumbnail(context.Background(), thumb))
	assert.Equal(t, now, thumb.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_CreateThumbnail_Error(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectQuery("INSERT INTO thumbnails").WillReturnError(errors.New("connection refused"))

	err := client.CreateThumbnail(context.Background(), &models.Thumbnail{ID: uuid.New()})

	assert.True(t, apperrors.Is(err, apperrors.KindStorage))
}

func TestDatabaseClient_CompleteThumbnail(t *testing.T) {
	client, mock := newMockClient(t)
	id, userID := uuid.New(), uuid.New()
	now := time.Now()
	url := "https://proj.supabase.co/storage/v1/object/public/thumbnails/a.png"

	mock.ExpectQuery(`UPDATE thumbnails\s+SET image_url`).
		WithArgs(url, "the prompt", id).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			id.String(), userID.String(), "Title", nil, "the prompt", "Minimalist", "16:9",
			"pastel", false, url, false, now, now,
		))

	thumb, err := client.CompleteThumbnail(context.Background(), id, url, "the prompt")

	require.NoError(t, err)
	assert.Equal(t, id, thumb.ID)
	assert.False(t, thumb.IsGenerating)
	assert.Equal(t, url, thumb.ImageURL.String)
	assert.Equal(t, "pastel", thumb.ColorScheme.String)
	assert.False(t, thumb.UserPrompt.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_CompleteThumbnail_NotPending(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectQuery(`UPDATE thumbnails\s+SET image_url`).WillReturnError(sql.ErrNoRows)

	_, err := client.CompleteThumbnail(context.Background(), uuid.New(), "url", "prompt")

	assert.True(t, apperrors.Is(err, apperrors.KindStorage))
}

func TestDatabaseClient_FailThumbnail(t *testing.T) {
	client, mock := newMockClient(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE thumbnails\s+SET is_generating = FALSE`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, client.FailThumbnail(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_GetThumbnail_NotFound(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectQuery("SELECT .* FROM thumbnails").WillReturnRows(sqlmock.NewRows(columns))

	_, err := client.GetThumbnail(context.Background(), uuid.New(), uuid.New())

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestDatabaseClient_ListThumbnails(t *testing.T) {
	client, mock := newMockClient(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM thumbnails").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), userID.String(), "Newer", nil, nil, "Illustrated", "1:1", nil, true, nil, true, now, now).
			AddRow(uuid.NewString(), userID.String(), "Older", "cats", "p", "Minimalist", "16:9", nil, false, "u", false, now.Add(-time.Hour), now))

	thumbs, err := client.ListThumbnails(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, thumbs, 2)
	assert.Equal(t, "Newer", thumbs[0].Title)
	assert.True(t, thumbs[0].IsGenerating)
	assert.Equal(t, "cats", thumbs[1].UserPrompt.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseClient_DeleteThumbnail_MissingIsNoError(t *testing.T) {
	client, mock := newMockClient(t)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectExec("DELETE FROM thumbnails").
		WithArgs(id, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, client.DeleteThumbnail(context.Background(), id, userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
