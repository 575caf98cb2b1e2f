package repository

import (
	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// TestRepository определяет методы для работы с тестами
type TestRepository interface {
	Create(test *entity.Test) error
	GetByID(id uint) (*entity.Test, error)
	GetByTopicID(topicID uint) ([]entity.Test, error)
}
