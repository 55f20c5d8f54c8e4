package handlers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"thumbnail-backend/internal/prompt"
)

var registerOnce sync.Once

// RegisterValidators adds the thumbnail option validators to gin's binding
// engine. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		for tag, fn := range map[string]validator.Func{
			"thumbnail_style": validStyle,
			"color_scheme":    validColorScheme,
			"aspect_ratio":    validAspectRatio,
		} {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

func validStyle(fl validator.FieldLevel) bool {
	_, err := prompt.ParseStyle(fl.Field().String())
	return err == nil
}

func validColorScheme(fl validator.FieldLevel) bool {
	_, err := prompt.ParseColorScheme(fl.Field().String())
	return err == nil
}

func validAspectRatio(fl validator.FieldLevel) bool {
	_, err := prompt.NormalizeAspectRatio(fl.Field().String())
	return err == nil
}

// bindingMessage turns a ShouldBindJSON error into a message for the client.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "thumbnail_style":
			msgs = append(msgs, fmt.Sprintf("style must be one of: %s", styleNames()))
		case "color_scheme":
			msgs = append(msgs, fmt.Sprintf("color_scheme must be one of: %s", colorSchemeNames()))
		case "aspect_ratio":
			msgs = append(msgs, fmt.Sprintf("aspect_ratio must be one of: %s", strings.Join(prompt.AspectRatios(), ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

func jsonFieldName(goName string) string {
	switch goName {
	case "AspectRatio":
		return "aspect_ratio"
	case "ColorScheme":
		return "color_scheme"
	case "TextOverlay":
		return "text_overlay"
	}
	return strings.ToLower(goName)
}

func styleNames() string {
	var names []string
	for _, s := range prompt.Styles() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func colorSchemeNames() string {
	var names []string
	for _, c := range prompt.ColorSchemes() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
