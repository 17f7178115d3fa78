package handlers

import (
	"net/http"

	"photofolio_backend/internal/middleware"
	"photofolio_backend/internal/services"
	"photofolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

func (h *MediaHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/media")
	{
		public.GET("", h.ListMedia)
		public.GET("/:mediaId", h.GetMediaItem)
	}

	admin := r.Group("/media")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", h.CreateMediaItem)
		admin.PATCH("/:mediaId", h.UpdateMediaItem)
		admin.DELETE("/:mediaId", h.DeleteMediaItem)
		admin.GET("/stats", h.MediaStats)
	}
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	var req dto.ListMediaRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.mediaService.ListMedia(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) GetMediaItem(c *gin.Context) {
	resp, err := h.mediaService.GetMediaItem(c.Request.Context(), h.GetDB(c), c.Param("mediaId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) CreateMediaItem(c *gin.Context) {
	var req dto.CreateMediaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.mediaService.CreateMediaItem(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *MediaHandler) UpdateMediaItem(c *gin.Context) {
	var req dto.UpdateMediaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.mediaService.UpdateMediaItem(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("mediaId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) DeleteMediaItem(c *gin.Context) {
	if err := h.mediaService.DeleteMediaItem(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("mediaId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MediaHandler) MediaStats(c *gin.Context) {
	resp, err := h.mediaService.MediaStats(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
