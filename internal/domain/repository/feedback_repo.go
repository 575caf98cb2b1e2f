package repository

import (
	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// FeedbackRepository определяет методы для работы с обратной связью по тестам
type FeedbackRepository interface {
	Create(feedback *entity.Feedback) error
	GetByUserAndTest(userID, testID uint) ([]entity.Feedback, error)
}
