package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// GroupRepo реализует repository.GroupRepository
type GroupRepo struct {
	db *gorm.DB
}

// NewGroupRepo создает новый репозиторий групп
func NewGroupRepo(db *gorm.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

// Create создает новую группу
func (r *GroupRepo) Create(group *entity.Group) error {
	return r.db.Create(group).Error
}

// GetByID возвращает группу по ID
func (r *GroupRepo) GetByID(id uint) (*entity.Group, error) {
	var group entity.Group
	err := r.db.First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// GetAll возвращает все группы
func (r *GroupRepo) GetAll() ([]entity.Group, error) {
	var groups []entity.Group
	err := r.db.Order("id").Find(&groups).Error
	return groups, err
}
