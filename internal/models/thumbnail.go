package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Thumbnail struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	UserPrompt   sql.NullString
	PromptUsed   sql.NullString
	Style        string
	AspectRatio  string
	ColorScheme  sql.NullString
	TextOverlay  bool
	ImageURL     sql.NullString
	IsGenerating bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPendingThumbnail builds the record stored when a generation request is
// accepted.
func NewPendingThumbnail(userID uuid.UUID, req GenerateThumbnailRequest) *Thumbnail {
	return &Thumbnail{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        req.Title,
		UserPrompt:   nullString(req.Prompt),
		Style:        req.Style,
		AspectRatio:  req.AspectRatio,
		ColorScheme:  nullString(req.ColorScheme),
		TextOverlay:  req.TextOverlay,
		IsGenerating: true,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
