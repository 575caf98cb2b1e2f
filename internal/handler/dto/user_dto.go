package dto

import (
	"time"

	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// UserResponse представляет пользователя в формате для ответа клиенту
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	GroupID   *uint     `json:"group_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse создает DTO для пользователя
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		GroupID:   user.GroupID,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserListResponse создает список DTO пользователей
func NewUserListResponse(users []entity.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}
	return responses
}

// LoginResponse представляет ответ на успешный вход
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// GroupResponse представляет группу в формате для ответа клиенту
type GroupResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGroupResponse создает DTO для группы
func NewGroupResponse(group *entity.Group) *GroupResponse {
	return &GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		CreatedAt: group.CreatedAt,
	}
}
