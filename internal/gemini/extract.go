package gemini

import (
	"encoding/base64"
	"strings"

	"google.golang.org/genai"
	"thumbnail-backend/internal/apperrors"
)

const dataURIPrefix = "data:image/"

// ExtractImage returns the first image found in resp, scanning every part of
// every candidate in order. Image data is accepted either as an inline blob
// or as a base64 data URI in a text part.
func ExtractImage(resp *genai.GenerateContentResponse) ([]byte, error) {
	var parts []*genai.Part
	if resp != nil {
		for _, cand := range resp.Candidates {
			if cand == nil || cand.Content == nil {
				continue
			}
			parts = append(parts, cand.Content.Parts...)
		}
	}
	if len(parts) == 0 {
		return nil, apperrors.New(apperrors.KindGeneration, "model response contained no parts", nil)
	}

	for _, part := range parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return decodeInline(part.InlineData.Data), nil
		}
		if data, ok := decodeDataURI(part.Text); ok {
			return data, nil
		}
	}

	return nil, apperrors.New(apperrors.KindGeneration, "model response contained no image data", nil)
}

// decodeInline handles blobs that arrive base64 encoded a second time, as
// some proxies do. Raw image bytes never decode as strict base64.
func decodeInline(data []byte) []byte {
	if decoded, err := base64.StdEncoding.DecodeString(string(data)); err == nil && len(decoded) > 0 {
		return decoded
	}
	return data
}

func decodeDataURI(text string) ([]byte, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, dataURIPrefix) {
		return nil, false
	}
	_, payload, found := strings.Cut(text, ";base64,")
	if !found {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}
