package service

import (
	"errors"
	"fmt"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/domain/repository"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// UserService предоставляет методы для работы с пользователями
type UserService struct {
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository, groupRepo repository.GroupRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// GetUserByID возвращает пользователя по ID
func (s *UserService) GetUserByID(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

// ListUsers возвращает список пользователей с пагинацией
func (s *UserService) ListUsers(limit, offset int) ([]entity.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(limit, offset)
}

// ChangeRole назначает пользователю новую роль
func (s *UserService) ChangeRole(userID uint, role string) (*entity.User, error) {
	if !entity.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	return user, nil
}

// AssignToGroup помещает пользователя в учебную группу
func (s *UserService) AssignToGroup(userID, groupID uint) (*entity.User, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: group %d does not exist", apperrors.ErrNotFound, groupID)
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.GroupID = &groupID
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	return user, nil
}
