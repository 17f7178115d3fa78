package handlers

import (
	"net/http"

	"photofolio_backend/internal/middleware"
	"photofolio_backend/internal/services"
	"photofolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("")
	{
		public.GET("/locations", h.ListLocations)
		public.GET("/locations/:locationId", h.GetLocation)
		public.GET("/locations/:locationId/comments", h.ListComments)
		public.GET("/workshops", h.ListWorkshops)
		public.GET("/bts-videos", h.ListVideos)
	}

	authed := r.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.POST("/comments", h.CreateComment)
	}

	admin := r.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/locations", h.CreateLocation)
		admin.PATCH("/locations/:locationId", h.UpdateLocation)
		admin.DELETE("/locations/:locationId", h.DeleteLocation)

		admin.POST("/workshops", h.CreateWorkshop)
		admin.PATCH("/workshops/:workshopId", h.UpdateWorkshop)
		admin.DELETE("/workshops/:workshopId", h.DeleteWorkshop)

		admin.POST("/bts-videos", h.CreateVideo)
		admin.PATCH("/bts-videos/:videoId", h.UpdateVideo)
		admin.DELETE("/bts-videos/:videoId", h.DeleteVideo)

		admin.GET("/coupons", h.ListCoupons)
		admin.POST("/coupons", h.CreateCoupon)
		admin.PATCH("/coupons/:couponId", h.UpdateCoupon)
		admin.DELETE("/coupons/:couponId", h.DeleteCoupon)

		admin.PATCH("/comments/:commentId/hidden", h.SetCommentHidden)
	}
}

// Locations

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	includeHidden := c.Query("include_hidden") == "true"

	locations, err := h.catalogService.ListLocations(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), includeHidden)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (h *CatalogHandler) GetLocation(c *gin.Context) {
	location, err := h.catalogService.GetLocation(c.Request.Context(), h.GetDB(c), c.Param("locationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	location, err := h.catalogService.CreateLocation(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (h *CatalogHandler) UpdateLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	location, err := h.catalogService.UpdateLocation(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("locationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

func (h *CatalogHandler) DeleteLocation(c *gin.Context) {
	if err := h.catalogService.DeleteLocation(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("locationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Workshops

func (h *CatalogHandler) ListWorkshops(c *gin.Context) {
	includeHidden := c.Query("include_hidden") == "true"

	workshops, err := h.catalogService.ListWorkshops(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), includeHidden)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workshops)
}

func (h *CatalogHandler) CreateWorkshop(c *gin.Context) {
	var req dto.CreateWorkshopRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	workshop, err := h.catalogService.CreateWorkshop(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workshop)
}

func (h *CatalogHandler) UpdateWorkshop(c *gin.Context) {
	var req dto.UpdateWorkshopRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	workshop, err := h.catalogService.UpdateWorkshop(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("workshopId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workshop)
}

func (h *CatalogHandler) DeleteWorkshop(c *gin.Context) {
	if err := h.catalogService.DeleteWorkshop(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("workshopId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Behind-the-scenes videos

func (h *CatalogHandler) ListVideos(c *gin.Context) {
	includeHidden := c.Query("include_hidden") == "true"

	videos, err := h.catalogService.ListVideos(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), includeHidden)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

func (h *CatalogHandler) CreateVideo(c *gin.Context) {
	var req dto.CreateBTSVideoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	video, err := h.catalogService.CreateVideo(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

func (h *CatalogHandler) UpdateVideo(c *gin.Context) {
	var req dto.UpdateBTSVideoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	video, err := h.catalogService.UpdateVideo(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("videoId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

func (h *CatalogHandler) DeleteVideo(c *gin.Context) {
	if err := h.catalogService.DeleteVideo(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("videoId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Coupons

func (h *CatalogHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.catalogService.ListCoupons(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, coupons)
}

func (h *CatalogHandler) CreateCoupon(c *gin.Context) {
	var req dto.CreateCouponRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	coupon, err := h.catalogService.CreateCoupon(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

func (h *CatalogHandler) UpdateCoupon(c *gin.Context) {
	var req dto.UpdateCouponRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	coupon, err := h.catalogService.UpdateCoupon(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("couponId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, coupon)
}

func (h *CatalogHandler) DeleteCoupon(c *gin.Context) {
	if err := h.catalogService.DeleteCoupon(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("couponId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Comments

func (h *CatalogHandler) ListComments(c *gin.Context) {
	includeHidden := c.Query("include_hidden") == "true"

	comments, err := h.catalogService.ListComments(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("locationId"), includeHidden)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *CatalogHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.catalogService.CreateComment(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CatalogHandler) SetCommentHidden(c *gin.Context) {
	var req dto.SetCommentHiddenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.catalogService.SetCommentHidden(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("commentId"), req.Hidden); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
