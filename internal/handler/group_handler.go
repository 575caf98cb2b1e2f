package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/learning-platform/internal/handler/dto"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
	"github.com/yourusername/learning-platform/internal/service"
)

// GroupHandler обрабатывает запросы, связанные с учебными группами
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler создает новый обработчик групп
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroupRequest представляет запрос на создание группы
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateGroup создает новую группу
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.CreateGroup(req.Name)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewGroupResponse(group))
}

// GetGroups возвращает все группы
func (h *GroupHandler) GetGroups(c *gin.Context) {
	groups, err := h.groupService.GetGroups()
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	responses := make([]*dto.GroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, dto.NewGroupResponse(&groups[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetGroupMembers возвращает пользователей группы
func (h *GroupHandler) GetGroupMembers(c *gin.Context) {
	groupID := c.MustGet("groupID").(uint)

	members, err := h.groupService.GetGroupMembers(groupID)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserListResponse(members))
}

// handleGroupError преобразует ошибки сервисов в HTTP-статусы
func (h *GroupHandler) handleGroupError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in GroupHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
