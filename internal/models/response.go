package models

import "time"

type ThumbnailResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	UserPrompt   string    `json:"user_prompt,omitempty"`
	PromptUsed   string    `json:"prompt_used,omitempty"`
	Style        string    `json:"style"`
	AspectRatio  string    `json:"aspect_ratio"`
	ColorScheme  string    `json:"color_scheme,omitempty"`
	TextOverlay  bool      `json:"text_overlay"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsGenerating bool      `json:"isGenerating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewThumbnailResponse(t *Thumbnail) ThumbnailResponse {
	return ThumbnailResponse{
		ID:           t.ID.String(),
		UserID:       t.UserID.String(),
		Title:        t.Title,
		UserPrompt:   t.UserPrompt.String,
		PromptUsed:   t.PromptUsed.String,
		Style:        t.Style,
		AspectRatio:  t.AspectRatio,
		ColorScheme:  t.ColorScheme.String,
		TextOverlay:  t.TextOverlay,
		ImageURL:     t.ImageURL.String,
		IsGenerating: t.IsGenerating,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type GenerateThumbnailResponse struct {
	Message   string            `json:"message"`
	Thumbnail ThumbnailResponse `json:"thumbnail"`
}

type ThumbnailListResponse struct {
	Thumbnails []ThumbnailResponse `json:"thumbnails"`
}

type ThumbnailDetailResponse struct {
	Thumbnail ThumbnailResponse `json:"thumbnail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
