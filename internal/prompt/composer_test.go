package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thumbnail-backend/internal/apperrors"
)

const closing = "designed to maximize click-through rate"

func TestCompose_MinimalistPastelScenario(t *testing.T) {
	got, err := Compose(Request{
		Title:       "My Vlog Ep 1",
		Style:       "Minimalist",
		ColorScheme: "pastel",
		AspectRatio: "16:9",
	})
	require.NoError(t, err)

	styleAt := strings.Index(got, StyleMinimalist.clause())
	titleAt := strings.Index(got, "My Vlog Ep 1")
	colorAt := strings.Index(got, ColorSchemePastel.clause())
	closingAt := strings.Index(got, closing)

	require.NotEqual(t, -1, styleAt)
	require.NotEqual(t, -1, titleAt)
	require.NotEqual(t, -1, colorAt)
	require.NotEqual(t, -1, closingAt)
	assert.Less(t, styleAt, titleAt)
	assert.Less(t, titleAt, colorAt)
	assert.Less(t, colorAt, closingAt)
	assert.Contains(t, got, "should be 16:9")
	assert.NotContains(t, got, "Additional details")
}

func TestCompose_AllStylesAndSchemes(t *testing.T) {
	for _, style := range Styles() {
		for _, scheme := range append([]ColorScheme{ColorSchemeNone}, ColorSchemes()...) {
			got, err := Compose(Request{
				Title:       "Title",
				Prompt:      "a cat on a skateboard",
				Style:       style.String(),
				ColorScheme: scheme.String(),
			})
			require.NoError(t, err, "%v/%v", style, scheme)

			styleAt := strings.Index(got, style.clause())
			titleAt := strings.Index(got, `"Title"`)
			extraAt := strings.Index(got, "Additional details: a cat on a skateboard.")
			closingAt := strings.Index(got, closing)
			assert.True(t, styleAt >= 0 && styleAt < titleAt, "%v/%v", style, scheme)
			assert.True(t, titleAt < extraAt && extraAt < closingAt, "%v/%v", style, scheme)

			if scheme == ColorSchemeNone {
				assert.NotContains(t, got, "color scheme.")
				continue
			}
			colorAt := strings.Index(got, scheme.clause())
			assert.True(t, titleAt < colorAt && colorAt < extraAt, "%v/%v", style, scheme)
		}
	}
}

func TestCompose_DefaultsAspectRatio(t *testing.T) {
	got, err := Compose(Request{Title: "Title", Style: "illustrated"})
	require.NoError(t, err)
	assert.Contains(t, got, "should be "+DefaultAspectRatio+",")
}

func TestCompose_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"unknown style", Request{Title: "Title", Style: "Vaporwave"}},
		{"empty title", Request{Title: "  ", Style: "Minimalist"}},
		{"unknown color scheme", Request{Title: "Title", Style: "Minimalist", ColorScheme: "rainbow"}},
		{"unknown aspect ratio", Request{Title: "Title", Style: "Minimalist", AspectRatio: "21:9"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
		})
	}
}

func TestParseStyle_CaseInsensitive(t *testing.T) {
	s, err := ParseStyle("tech/futuristic")
	require.NoError(t, err)
	assert.Equal(t, StyleTechFuturistic, s)
}

func TestCompose_TitleIsVerbatim(t *testing.T) {
	got, err := Compose(Request{Title: `Why "AI" Wins \ 2026`, Style: "Minimalist"})

	require.NoError(t, err)
	assert.Contains(t, got, `for: "Why "AI" Wins \ 2026". `)
	assert.NotContains(t, got, `\"`)
}
