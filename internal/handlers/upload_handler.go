package handlers

import (
	"net/http"

	"photofolio_backend/internal/middleware"
	"photofolio_backend/internal/services"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.RequireAdmin())
	{
		uploads.POST("", h.UploadFile)
		uploads.DELETE("", h.DeleteFile)
	}
}

func (h *UploadHandler) UploadFile(c *gin.Context) {
	var req dto.UploadRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file in multipart form"))
		return
	}

	resp, err := h.uploadService.UploadFile(c.Request.Context(), middleware.GetProfile(c), file, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *UploadHandler) DeleteFile(c *gin.Context) {
	bucket := c.Query("bucket")
	path := c.Query("path")
	if bucket == "" || path == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("bucket and path query parameters are required"))
		return
	}

	if err := h.uploadService.DeleteFile(c.Request.Context(), middleware.GetProfile(c), bucket, path); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
