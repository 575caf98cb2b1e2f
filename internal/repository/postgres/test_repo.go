package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// TestRepo реализует repository.TestRepository
type TestRepo struct {
	db *gorm.DB
}

// NewTestRepo создает новый репозиторий тестов
func NewTestRepo(db *gorm.DB) *TestRepo {
	return &TestRepo{db: db}
}

// Create создает новый тест
func (r *TestRepo) Create(test *entity.Test) error {
	return r.db.Create(test).Error
}

// GetByID возвращает тест по ID
func (r *TestRepo) GetByID(id uint) (*entity.Test, error) {
	var test entity.Test
	err := r.db.First(&test, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &test, nil
}

// GetByTopicID возвращает тесты указанной темы
func (r *TestRepo) GetByTopicID(topicID uint) ([]entity.Test, error) {
	var tests []entity.Test
	err := r.db.Where("topic_id = ?", topicID).Order("id").Find(&tests).Error
	return tests, err
}
