package models

type GenerateThumbnailRequest struct {
	Title string `json:"title" binding:"required,max=200" example:"My Vlog Ep 1"`
	// Prompt is optional free text appended to the composed prompt.
	Prompt      string `json:"prompt,omitempty" binding:"max=1000"`
	Style       string `json:"style" binding:"required,thumbnail_style" example:"Minimalist"`
	AspectRatio string `json:"aspect_ratio,omitempty" binding:"omitempty,aspect_ratio" example:"16:9"`
	ColorScheme string `json:"color_scheme,omitempty" binding:"omitempty,color_scheme" example:"pastel"`
	TextOverlay bool   `json:"text_overlay,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}
