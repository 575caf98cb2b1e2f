package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetByTestID возвращает все вопросы указанного теста
func (r *QuestionRepo) GetByTestID(testID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("test_id = ?", testID).Order("id").Find(&questions).Error
	return questions, err
}

// CountByTestID возвращает количество вопросов в тесте
func (r *QuestionRepo) CountByTestID(testID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Where("test_id = ?", testID).Count(&count).Error
	return count, err
}
