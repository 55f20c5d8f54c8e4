package gemini

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
	"thumbnail-backend/internal/apperrors"
)

const (
	DefaultModel   = "gemini-3-pro-image-preview"
	DefaultTimeout = 2 * time.Minute

	imageSize = "1K"
)

// ContentGenerator is the subset of *genai.Models used by Client.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Options struct {
	Model       string
	Timeout     time.Duration
	MaxAttempts int
	// BaseBackoff is the delay before the second attempt; it doubles on each
	// attempt after that.
	BaseBackoff time.Duration
}

type Client struct {
	models      ContentGenerator
	model       string
	timeout     time.Duration
	maxAttempts int
	baseBackoff time.Duration
	logger      *zap.Logger
}

func NewClient(ctx context.Context, apiKey string, opts Options, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return NewClientWithGenerator(client.Models, opts, logger), nil
}

func NewClientWithGenerator(models ContentGenerator, opts Options, logger *zap.Logger) *Client {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.BaseBackoff <= 0 {
		opts.BaseBackoff = time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		models:      models,
		model:       opts.Model,
		timeout:     opts.Timeout,
		maxAttempts: opts.MaxAttempts,
		baseBackoff: opts.BaseBackoff,
		logger:      logger,
	}
}

// GenerateImage asks the model for a single image and returns its bytes.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	config := generationConfig(aspectRatio)

	var resp *genai.GenerateContentResponse
	err := c.retryWithBackoff(ctx, func() error {
		var err error
		resp, err = c.models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
		return err
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apperrors.New(apperrors.KindTimeout,
				fmt.Sprintf("image generation timed out after %s", c.timeout), err)
		}
		return nil, apperrors.New(apperrors.KindGeneration, "image generation request failed", err)
	}

	return ExtractImage(resp)
}

func (c *Client) retryWithBackoff(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if permanent(lastErr) {
			return lastErr
		}
		if attempt == c.maxAttempts || ctx.Err() != nil {
			break
		}

		delay := c.backoffDelay(attempt)
		c.logger.Warn("image generation attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(lastErr))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if c.maxAttempts > 1 {
		return fmt.Errorf("failed after %d attempts: %w", c.maxAttempts, lastErr)
	}
	return lastErr
}

// permanent reports whether the API rejected the request itself. Client
// errors other than rate limiting fail the same way on every attempt.
func permanent(err error) bool {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		code = apiErrPtr.Code
	}
	return code >= 400 && code < 500 && code != http.StatusTooManyRequests
}

// backoffDelay is the base delay doubled per attempt plus up to 50% jitter.
func (c *Client) backoffDelay(attempt int) time.Duration {
	d := c.baseBackoff * time.Duration(1<<(attempt-1))
	return d + time.Duration(rand.Int63n(int64(d)/2+1))
}

func generationConfig(aspectRatio string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		MaxOutputTokens:    32768,
		Temperature:        genai.Ptr[float32](1),
		TopP:               genai.Ptr[float32](0.95),
		CandidateCount:     1,
		ResponseModalities: []string{"IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: aspectRatio,
			ImageSize:   imageSize,
		},
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdOff},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdOff},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdOff},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdOff},
		},
	}
}
