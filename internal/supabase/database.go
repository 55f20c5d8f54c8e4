package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"thumbnail-backend/internal/apperrors"
	"thumbnail-backend/internal/models"
)

const thumbnailColumns = `id, user_id, title, user_prompt, prompt_used, style, aspect_ratio,
	color_scheme, text_overlay, image_url, is_generating, created_at, updated_at`

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

func (d *DatabaseClient) DB() *sql.DB {
	return d.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanThumbnail(row rowScanner) (*models.Thumbnail, error) {
	var t models.Thumbnail
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.UserPrompt, &t.PromptUsed, &t.Style, &t.AspectRatio,
		&t.ColorScheme, &t.TextOverlay, &t.ImageURL, &t.IsGenerating, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateThumbnail inserts t and fills in its timestamps.
func (d *DatabaseClient) CreateThumbnail(ctx context.Context, t *models.Thumbnail) error {
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO thumbnails (id, user_id, title, user_prompt, style, aspect_ratio, color_scheme, text_overlay, is_generating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, t.ID, t.UserID, t.Title, t.UserPrompt, t.Style, t.AspectRatio, t.ColorScheme, t.TextOverlay, t.IsGenerating,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return apperrors.New(apperrors.KindStorage, "failed to create thumbnail", err)
	}
	return nil
}

// CompleteThumbnail records the final image of a pending thumbnail.
func (d *DatabaseClient) CompleteThumbnail(ctx context.Context, id uuid.UUID, imageURL, promptUsed string) (*models.Thumbnail, error) {
	t, err := scanThumbnail(d.db.QueryRowContext(ctx, `
		UPDATE thumbnails
		SET image_url = $1, prompt_used = $2, is_generating = FALSE, updated_at = NOW()
		WHERE id = $3 AND is_generating = TRUE
		RETURNING `+thumbnailColumns,
		imageURL, promptUsed, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.New(apperrors.KindStorage, "thumbnail is no longer pending", err)
	}
	if err != nil {
		return nil, apperrors.New(apperrors.KindStorage, "failed to complete thumbnail", err)
	}
	return t, nil
}

// FailThumbnail clears the generating flag without setting an image. Records
// that already left the pending state are left untouched.
func (d *DatabaseClient) FailThumbnail(ctx context.Context, id uuid.UUID) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE thumbnails
		SET is_generating = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_generating = TRUE
	`, id)
	if err != nil {
		return apperrors.New(apperrors.KindStorage, "failed to mark thumbnail as failed", err)
	}
	return nil
}

func (d *DatabaseClient) GetThumbnail(ctx context.Context, id, userID uuid.UUID) (*models.Thumbnail, error) {
	t, err := scanThumbnail(d.db.QueryRowContext(ctx, `
		SELECT `+thumbnailColumns+`
		FROM thumbnails
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.New(apperrors.KindNotFound, "thumbnail not found", nil)
	}
	if err != nil {
		return nil, apperrors.New(apperrors.KindStorage, "failed to get thumbnail", err)
	}
	return t, nil
}

func (d *DatabaseClient) ListThumbnails(ctx context.Context, userID uuid.UUID) ([]models.Thumbnail, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+thumbnailColumns+`
		FROM thumbnails
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.New(apperrors.KindStorage, "failed to list thumbnails", err)
	}
	defer rows.Close()

	thumbnails := []models.Thumbnail{}
	for rows.Next() {
		t, err := scanThumbnail(rows)
		if err != nil {
			return nil, apperrors.New(apperrors.KindStorage, "failed to scan thumbnail", err)
		}
		thumbnails = append(thumbnails, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.New(apperrors.KindStorage, "failed to list thumbnails", err)
	}

	return thumbnails, nil
}

// DeleteThumbnail removes the caller's thumbnail. Missing and foreign ids are
// not an error.
func (d *DatabaseClient) DeleteThumbnail(ctx context.Context, id, userID uuid.UUID) error {
	_, err := d.db.ExecContext(ctx, `
		DELETE FROM thumbnails
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return apperrors.New(apperrors.KindStorage, "failed to delete thumbnail", err)
	}
	return nil
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
