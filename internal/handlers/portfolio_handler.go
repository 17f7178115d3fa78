package handlers

import (
	"net/http"

	"photofolio_backend/internal/middleware"
	"photofolio_backend/internal/services"
	"photofolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/portfolio")
	{
		public.GET("", h.ListPortfolio)
		public.GET("/:itemId", h.GetPortfolioItem)
	}

	admin := r.Group("/portfolio")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", h.CreatePortfolioItem)
		admin.PATCH("/:itemId", h.UpdatePortfolioItem)
		admin.DELETE("/:itemId", h.DeletePortfolioItem)
		admin.GET("/stats", h.PortfolioStats)
	}
}

func (h *PortfolioHandler) ListPortfolio(c *gin.Context) {
	var req dto.ListPortfolioRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.portfolioService.ListPortfolio(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PortfolioHandler) GetPortfolioItem(c *gin.Context) {
	resp, err := h.portfolioService.GetPortfolioItem(c.Request.Context(), h.GetDB(c), c.Param("itemId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PortfolioHandler) CreatePortfolioItem(c *gin.Context) {
	var req dto.CreatePortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.portfolioService.CreatePortfolioItem(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PortfolioHandler) UpdatePortfolioItem(c *gin.Context) {
	var req dto.UpdatePortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.portfolioService.UpdatePortfolioItem(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("itemId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PortfolioHandler) DeletePortfolioItem(c *gin.Context) {
	if err := h.portfolioService.DeletePortfolioItem(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("itemId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PortfolioHandler) PortfolioStats(c *gin.Context) {
	resp, err := h.portfolioService.PortfolioStats(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
