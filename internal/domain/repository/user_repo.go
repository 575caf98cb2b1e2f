package repository

import (
	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]entity.User, error)
	ListByGroup(groupID uint) ([]entity.User, error)
}
