package service

import (
	"fmt"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/domain/repository"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// GroupService предоставляет методы для работы с учебными группами
type GroupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// NewGroupService создает новый сервис групп
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// CreateGroup создает новую группу
func (s *GroupService) CreateGroup(name string) (*entity.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", apperrors.ErrValidation)
	}

	group := &entity.Group{Name: name}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

// GetGroupByID возвращает группу по ID
func (s *GroupService) GetGroupByID(groupID uint) (*entity.Group, error) {
	return s.groupRepo.GetByID(groupID)
}

// GetGroups возвращает все группы
func (s *GroupService) GetGroups() ([]entity.Group, error) {
	return s.groupRepo.GetAll()
}

// GetGroupMembers возвращает пользователей группы
func (s *GroupService) GetGroupMembers(groupID uint) ([]entity.User, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		return nil, err
	}
	return s.userRepo.ListByGroup(groupID)
}
