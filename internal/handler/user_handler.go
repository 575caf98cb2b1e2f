package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/learning-platform/internal/handler/dto"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
	"github.com/yourusername/learning-platform/internal/service"
)

// UserHandler обрабатывает запросы, связанные с пользователями
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe возвращает профиль текущего пользователя
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers возвращает список пользователей с пагинацией
// GET /api/users?limit=20&offset=0
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.userService.ListUsers(limit, offset)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// ChangeRoleRequest представляет запрос на смену роли пользователя
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ChangeRole назначает пользователю новую роль
func (h *UserHandler) ChangeRole(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.ChangeRole(userID, req.Role)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// AssignGroupRequest представляет запрос на назначение пользователя в группу
type AssignGroupRequest struct {
	GroupID uint `json:"group_id" binding:"required"`
}

// AssignToGroup помещает пользователя в учебную группу
func (h *UserHandler) AssignToGroup(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req AssignGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.AssignToGroup(userID, req.GroupID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// handleUserError преобразует ошибки сервисов в HTTP-статусы
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in UserHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
