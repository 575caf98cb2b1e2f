package repository

import (
	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами тестов
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	GetByTestID(testID uint) ([]entity.Question, error)
	CountByTestID(testID uint) (int64, error)
}
