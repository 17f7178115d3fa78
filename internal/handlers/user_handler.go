package handlers

import (
	"net/http"

	"photofolio_backend/internal/middleware"
	"photofolio_backend/internal/services"
	"photofolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// All user management routes are admin-only. The route guard is a first
// filter; the services re-check the actor themselves.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", h.ListUsers)
		users.GET("/:userId", h.GetUser)
		users.PATCH("/:userId/role", h.UpdateUserRole)
		users.PATCH("/:userId/status", h.UpdateUserStatus)
		users.DELETE("/:userId", h.DeleteUser)
		users.POST("/bulk-delete", h.BulkDeleteUsers)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.userService.ListUsers(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	resp, err := h.userService.GetUser(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateUserRole(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateUserStatus(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) BulkDeleteUsers(c *gin.Context) {
	var req dto.BulkDeleteUsersRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.BulkDeleteUsers(c.Request.Context(), h.GetDB(c), middleware.GetProfile(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
