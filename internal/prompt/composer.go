// Package prompt builds the text prompt sent to the image model from the
// options a user picks in the thumbnail form.
package prompt

import (
	"fmt"
	"strings"

	"thumbnail-backend/internal/apperrors"
)

const DefaultAspectRatio = "16:9"

var aspectRatios = []string{"16:9", "1:1", "9:16", "4:3", "3:4"}

type Request struct {
	Title       string
	Prompt      string
	Style       string
	ColorScheme string
	AspectRatio string
}

// Compose returns the full prompt for req. The clauses are always emitted in
// the order style, title, color scheme, free text, closing.
func Compose(req Request) (string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", apperrors.InvalidInput("title is required")
	}

	style, err := ParseStyle(req.Style)
	if err != nil {
		return "", err
	}

	scheme, err := ParseColorScheme(req.ColorScheme)
	if err != nil {
		return "", err
	}

	aspect, err := NormalizeAspectRatio(req.AspectRatio)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s for: \"%s\". ", style.clause(), title)
	if scheme != ColorSchemeNone {
		fmt.Fprintf(&b, "Use a %s color scheme. ", scheme.clause())
	}
	if extra := strings.TrimSpace(req.Prompt); extra != "" {
		fmt.Fprintf(&b, "Additional details: %s. ", extra)
	}
	fmt.Fprintf(&b, "The thumbnail should be %s, visually stunning, and designed to maximize click-through rate. "+
		"Make it bold, professional, and impossible to ignore.", aspect)

	return b.String(), nil
}

// NormalizeAspectRatio returns the default ratio for an empty value.
func NormalizeAspectRatio(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultAspectRatio, nil
	}
	for _, r := range aspectRatios {
		if r == s {
			return s, nil
		}
	}
	return "", apperrors.InvalidInput(fmt.Sprintf("unsupported aspect ratio %q", s))
}

func AspectRatios() []string {
	out := make([]string, len(aspectRatios))
	copy(out, aspectRatios)
	return out
}
