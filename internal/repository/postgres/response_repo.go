package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// ResponseRepo реализует repository.ResponseRepository
type ResponseRepo struct {
	db *gorm.DB
}

// NewResponseRepo создает новый репозиторий ответов пользователей
func NewResponseRepo(db *gorm.DB) *ResponseRepo {
	return &ResponseRepo{db: db}
}

// Create сохраняет ответ пользователя. Каждый присланный ответ записывается
// отдельной строкой, включая повторные ответы на один и тот же вопрос.
func (r *ResponseRepo) Create(response *entity.UserResponse) error {
	return r.db.Create(response).Error
}

// GetByTestID возвращает все ответы на вопросы указанного теста
func (r *ResponseRepo) GetByTestID(testID uint) ([]entity.UserResponse, error) {
	var responses []entity.UserResponse
	err := r.db.
		Joins("JOIN questions ON questions.id = user_responses.question_id").
		Where("questions.test_id = ?", testID).
		Order("user_responses.id").
		Find(&responses).Error
	return responses, err
}

// GetByUserAndTest возвращает ответы пользователя на вопросы указанного теста
func (r *ResponseRepo) GetByUserAndTest(userID, testID uint) ([]entity.UserResponse, error) {
	var responses []entity.UserResponse
	err := r.db.
		Joins("JOIN questions ON questions.id = user_responses.question_id").
		Where("user_responses.user_id = ? AND questions.test_id = ?", userID, testID).
		Order("user_responses.id").
		Find(&responses).Error
	return responses, err
}
