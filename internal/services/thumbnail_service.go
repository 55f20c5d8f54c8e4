package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"thumbnail-backend/internal/apperrors"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/prompt"
	"thumbnail-backend/internal/scratch"
)

const failureUpdateTimeout = 10 * time.Second

type ThumbnailStore interface {
	CreateThumbnail(ctx context.Context, t *models.Thumbnail) error
	CompleteThumbnail(ctx context.Context, id uuid.UUID, imageURL, promptUsed string) (*models.Thumbnail, error)
	FailThumbnail(ctx context.Context, id uuid.UUID) error
	GetThumbnail(ctx context.Context, id, userID uuid.UUID) (*models.Thumbnail, error)
	ListThumbnails(ctx context.Context, userID uuid.UUID) ([]models.Thumbnail, error)
	DeleteThumbnail(ctx context.Context, id, userID uuid.UUID) error
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error)
}

type MediaStore interface {
	UploadImage(ctx context.Context, userID uuid.UUID, localPath string) (string, error)
	DeleteImage(publicURL string) error
}

type ThumbnailService struct {
	store      ThumbnailStore
	generator  ImageGenerator
	media      MediaStore
	scratchDir string
	logger     *zap.Logger
}

func NewThumbnailService(
	store ThumbnailStore,
	generator ImageGenerator,
	media MediaStore,
	scratchDir string,
	logger *zap.Logger,
) *ThumbnailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThumbnailService{
		store:      store,
		generator:  generator,
		media:      media,
		scratchDir: scratchDir,
		logger:     logger,
	}
}

// Generate runs the whole pipeline for one request. On success the returned
// scratch file is still on disk and must be passed to Release once the
// response has been written. On failure the record created for this request
// is marked failed and the scratch file is already gone.
func (s *ThumbnailService) Generate(ctx context.Context, userID uuid.UUID, req models.GenerateThumbnailRequest) (*models.Thumbnail, *scratch.File, error) {
	if style, err := prompt.ParseStyle(req.Style); err == nil {
		req.Style = style.String()
	}
	if aspect, err := prompt.NormalizeAspectRatio(req.AspectRatio); err == nil {
		req.AspectRatio = aspect
	}

	thumb := models.NewPendingThumbnail(userID, req)
	if err := s.store.CreateThumbnail(ctx, thumb); err != nil {
		return nil, nil, err
	}

	log := s.logger.With(zap.String("thumbnail_id", thumb.ID.String()), zap.String("user_id", userID.String()))

	completed, file, err := s.run(ctx, thumb, req)
	if err != nil {
		if rmErr := file.Remove(); rmErr != nil {
			log.Warn("failed to remove scratch file", zap.Error(rmErr))
		}
		log.Error("thumbnail generation failed",
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Error(err))
		s.markFailed(ctx, log, thumb.ID)
		return nil, nil, err
	}

	log.Info("thumbnail generated", zap.String("image_url", completed.ImageURL.String))
	return completed, file, nil
}

func (s *ThumbnailService) run(ctx context.Context, thumb *models.Thumbnail, req models.GenerateThumbnailRequest) (*models.Thumbnail, *scratch.File, error) {
	text, err := prompt.Compose(prompt.Request{
		Title:       req.Title,
		Prompt:      req.Prompt,
		Style:       req.Style,
		ColorScheme: req.ColorScheme,
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		return nil, nil, err
	}

	data, err := s.generator.GenerateImage(ctx, text, thumb.AspectRatio)
	if err != nil {
		return nil, nil, err
	}

	file, err := scratch.Write(s.scratchDir, data)
	if err != nil {
		return nil, nil, apperrors.New(apperrors.KindUpload, "failed to stage generated image", err)
	}

	url, err := s.media.UploadImage(ctx, thumb.UserID, file.Path)
	if err != nil {
		return nil, file, err
	}

	completed, err := s.store.CompleteThumbnail(ctx, thumb.ID, url, text)
	if err != nil {
		if rmErr := s.media.DeleteImage(url); rmErr != nil {
			s.logger.Warn("failed to remove orphaned image",
				zap.String("thumbnail_id", thumb.ID.String()),
				zap.String("image_url", url),
				zap.Error(rmErr))
		}
		return nil, file, err
	}

	return completed, file, nil
}

// markFailed uses its own deadline so a timed out request still records the
// failure.
func (s *ThumbnailService) markFailed(ctx context.Context, log *zap.Logger, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failureUpdateTimeout)
	defer cancel()

	if err := s.store.FailThumbnail(ctx, id); err != nil {
		log.Error("failed to mark thumbnail as failed", zap.Error(err))
	}
}

// Release removes a scratch file returned by Generate.
func (s *ThumbnailService) Release(file *scratch.File) {
	if file == nil {
		return
	}
	if err := file.Remove(); err != nil {
		s.logger.Warn("failed to remove scratch file", zap.String("path", file.Path), zap.Error(err))
	}
}

func (s *ThumbnailService) List(ctx context.Context, userID uuid.UUID) ([]models.Thumbnail, error) {
	return s.store.ListThumbnails(ctx, userID)
}

func (s *ThumbnailService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Thumbnail, error) {
	return s.store.GetThumbnail(ctx, id, userID)
}

// Delete removes the caller's thumbnail and, best effort, its stored image.
// Unknown ids and ids owned by someone else succeed without doing anything.
func (s *ThumbnailService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	thumb, err := s.store.GetThumbnail(ctx, id, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil
		}
		return err
	}

	if err := s.store.DeleteThumbnail(ctx, id, userID); err != nil {
		return err
	}

	if thumb.ImageURL.Valid {
		if err := s.media.DeleteImage(thumb.ImageURL.String); err != nil {
			s.logger.Warn("failed to delete stored image",
				zap.String("thumbnail_id", id.String()),
				zap.Error(err))
		}
	}
	return nil
}
