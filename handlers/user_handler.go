package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"

	"admin-panel-server/helper"
	"admin-panel-server/middleware"
	"admin-panel-server/models"
	"admin-panel-server/services"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) CreateEditor(c *gin.Context) {
	var req models.CreateEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Email and password are required"})
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		if verr, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, verr)
			return
		}
		h.Helper.SendError(c, err)
		return
	}

	user, err := h.userService.CreateEditor(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Editor created successfully",
		"user":    user,
	})
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var params models.UserListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid query parameters"})
		return
	}

	users, pagination, err := h.userService.ListUsers(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination,
	})
}

func (h *UserHandler) GetEditors(c *gin.Context) {
	var params models.UserListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid query parameters"})
		return
	}

	users, pagination, err := h.userService.ListEditors(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination,
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid user ID"})
		return
	}

	user, err := h.userService.GetByID(uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid user ID"})
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Role is required"})
		return
	}

	actorID := c.GetUint(middleware.CtxUserID)

	user, err := h.userService.UpdateRole(actorID, uint(id), req.Role)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User role updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) ToggleActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid user ID"})
		return
	}

	actorID := c.GetUint(middleware.CtxUserID)

	user, message, err := h.userService.ToggleActive(actorID, uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user":    user,
	})
}
