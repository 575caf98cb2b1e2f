package repository

import (
	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// GroupRepository определяет методы для работы с учебными группами
type GroupRepository interface {
	Create(group *entity.Group) error
	GetByID(id uint) (*entity.Group, error)
	GetAll() ([]entity.Group, error)
}
