package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// FeedbackRepo реализует repository.FeedbackRepository
type FeedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo создает новый репозиторий обратной связи
func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

// Create сохраняет обратную связь по результатам теста
func (r *FeedbackRepo) Create(feedback *entity.Feedback) error {
	return r.db.Create(feedback).Error
}

// GetByUserAndTest возвращает всю обратную связь пользователя по тесту
func (r *FeedbackRepo) GetByUserAndTest(userID, testID uint) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := r.db.Where("user_id = ? AND test_id = ?", userID, testID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}
