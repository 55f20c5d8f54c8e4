package prompt

import (
	"fmt"
	"strings"

	"thumbnail-backend/internal/apperrors"
)

type Style int

const (
	StyleBoldGraphic Style = iota + 1
	StyleTechFuturistic
	StyleMinimalist
	StylePhotorealistic
	StyleIllustrated
)

var styles = []Style{
	StyleBoldGraphic,
	StyleTechFuturistic,
	StyleMinimalist,
	StylePhotorealistic,
	StyleIllustrated,
}

func (s Style) String() string {
	switch s {
	case StyleBoldGraphic:
		return "Bold & Graphic"
	case StyleTechFuturistic:
		return "Tech/Futuristic"
	case StyleMinimalist:
		return "Minimalist"
	case StylePhotorealistic:
		return "Photorealistic"
	case StyleIllustrated:
		return "Illustrated"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

func (s Style) clause() string {
	switch s {
	case StyleBoldGraphic:
		return "eye-catching thumbnail, bold typography, vibrant colors, expressive facial reaction, dramatic lighting, high contrast, click-worthy composition, professional style"
	case StyleTechFuturistic:
		return "futuristic thumbnail, sleek modern design, digital UI elements, glowing accents, holographic effects, cyber-tech aesthetic, sharp lighting, high-tech atmosphere"
	case StyleMinimalist:
		return "minimalist thumbnail, clean layout, simple shapes, limited color palette, plenty of negative space, modern flat design, clear focal point"
	case StylePhotorealistic:
		return "photorealistic thumbnail, ultra-realistic lighting, natural skin tones, candid moment, DSLR-style photography, lifestyle realism, shallow depth of field"
	case StyleIllustrated:
		return "illustrated thumbnail, custom digital illustration, stylized characters, bold outlines, vibrant colors, creative cartoon or vector art style"
	}
	panic(fmt.Sprintf("prompt: no clause for %v", s))
}

// ParseStyle matches a style by its display name, ignoring case.
func ParseStyle(name string) (Style, error) {
	name = strings.TrimSpace(name)
	for _, s := range styles {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, apperrors.InvalidInput(fmt.Sprintf("unknown style %q", name))
}

func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

type ColorScheme int

const (
	ColorSchemeNone ColorScheme = iota
	ColorSchemeVibrant
	ColorSchemeSunset
	ColorSchemeForest
	ColorSchemeNeon
	ColorSchemePurple
	ColorSchemeMonochrome
	ColorSchemeOcean
	ColorSchemePastel
)

var colorSchemes = []ColorScheme{
	ColorSchemeVibrant,
	ColorSchemeSunset,
	ColorSchemeForest,
	ColorSchemeNeon,
	ColorSchemePurple,
	ColorSchemeMonochrome,
	ColorSchemeOcean,
	ColorSchemePastel,
}

func (c ColorScheme) String() string {
	switch c {
	case ColorSchemeNone:
		return ""
	case ColorSchemeVibrant:
		return "vibrant"
	case ColorSchemeSunset:
		return "sunset"
	case ColorSchemeForest:
		return "forest"
	case ColorSchemeNeon:
		return "neon"
	case ColorSchemePurple:
		return "purple"
	case ColorSchemeMonochrome:
		return "monochrome"
	case ColorSchemeOcean:
		return "ocean"
	case ColorSchemePastel:
		return "pastel"
	}
	return fmt.Sprintf("ColorScheme(%d)", int(c))
}

func (c ColorScheme) clause() string {
	switch c {
	case ColorSchemeNone:
		return ""
	case ColorSchemeVibrant:
		return "vibrant and energetic colors, high saturation, bold contrasts, eye-catching palette"
	case ColorSchemeSunset:
		return "warm sunset tones, orange pink and purple hues, soft gradients, cinematic glow"
	case ColorSchemeForest:
		return "natural green tones, earthy colors, calm and organic palette, fresh atmosphere"
	case ColorSchemeNeon:
		return "neon glow effects, electric blues and pinks, cyberpunk lighting, high contrast glow"
	case ColorSchemePurple:
		return "purple-dominant color palette, magenta and violet tones, modern and stylish mood"
	case ColorSchemeMonochrome:
		return "black and white color scheme, high contrast, dramatic lighting, timeless aesthetic"
	case ColorSchemeOcean:
		return "cool blue and teal tones, aquatic color palette, fresh and clean atmosphere"
	case ColorSchemePastel:
		return "soft pastel colors, low saturation, gentle tones, calm and friendly aesthetic"
	}
	panic(fmt.Sprintf("prompt: no clause for %v", c))
}

// ParseColorScheme returns ColorSchemeNone for an empty name.
func ParseColorScheme(name string) (ColorScheme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ColorSchemeNone, nil
	}
	for _, c := range colorSchemes {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return ColorSchemeNone, apperrors.InvalidInput(fmt.Sprintf("unknown color scheme %q", name))
}

func ColorSchemes() []ColorScheme {
	out := make([]ColorScheme, len(colorSchemes))
	copy(out, colorSchemes)
	return out
}
