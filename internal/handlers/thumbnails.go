package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"thumbnail-backend/internal/apperrors"
	"thumbnail-backend/internal/middleware"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/services"
)

type ThumbnailsHandler struct {
	service *services.ThumbnailService
	logger  *zap.Logger
}

func NewThumbnailsHandler(service *services.ThumbnailService, logger *zap.Logger) *ThumbnailsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThumbnailsHandler{
		service: service,
		logger:  logger,
	}
}

// Generate godoc
// @Summary     Generate a thumbnail
// @Description Composes a prompt from the chosen options, generates an image with Gemini, uploads it and returns the stored thumbnail.
// @Tags        thumbnails
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateThumbnailRequest true "Thumbnail options"
// @Success     200 {object} models.GenerateThumbnailResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /thumbnail/generate [post]
func (h *ThumbnailsHandler) Generate(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req models.GenerateThumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: bindingMessage(err)})
		return
	}

	// Generation keeps going if the client goes away; the model and upload
	// calls carry their own timeouts.
	ctx := context.WithoutCancel(c.Request.Context())

	thumb, file, err := h.service.Generate(ctx, userID, req)
	if err != nil {
		h.logger.Error("generate thumbnail",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.String("kind", string(apperrors.KindOf(err))),
			zap.Error(err))
		c.Error(err)
		c.JSON(statusFor(err), models.ErrorResponse{Message: err.Error()})
		return
	}
	defer h.service.Release(file)

	c.JSON(http.StatusOK, models.GenerateThumbnailResponse{
		Message:   "Thumbnail Generated",
		Thumbnail: models.NewThumbnailResponse(thumb),
	})
}

// Delete godoc
// @Summary     Delete a thumbnail
// @Description Deletes one of the caller's thumbnails. Unknown ids succeed without effect.
// @Tags        thumbnails
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Thumbnail ID"
// @Success     200 {object} models.MessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /thumbnail/delete/{id} [delete]
func (h *ThumbnailsHandler) Delete(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid thumbnail id", Message: err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		c.JSON(statusFor(err), models.ErrorResponse{Error: "failed to delete thumbnail", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Thumbnail deleted successfully"})
}

// List godoc
// @Summary     List thumbnails
// @Description Returns the caller's thumbnails, newest first
// @Tags        thumbnails
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ThumbnailListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /user/thumbnails [get]
func (h *ThumbnailsHandler) List(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	thumbs, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		c.JSON(statusFor(err), models.ErrorResponse{Error: "failed to list thumbnails", Message: err.Error()})
		return
	}

	resp := models.ThumbnailListResponse{Thumbnails: make([]models.ThumbnailResponse, len(thumbs))}
	for i := range thumbs {
		resp.Thumbnails[i] = models.NewThumbnailResponse(&thumbs[i])
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary     Get a thumbnail
// @Tags        thumbnails
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Thumbnail ID"
// @Success     200 {object} models.ThumbnailDetailResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /user/thumbnail/{id} [get]
func (h *ThumbnailsHandler) Get(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid thumbnail id", Message: err.Error()})
		return
	}

	thumb, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		if !apperrors.Is(err, apperrors.KindNotFound) {
			c.Error(err)
		}
		c.JSON(statusFor(err), models.ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ThumbnailDetailResponse{Thumbnail: models.NewThumbnailResponse(thumb)})
}

func (h *ThumbnailsHandler) currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized", Message: "user id not found"})
		return uuid.Nil, false
	}
	return userID, true
}

func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
