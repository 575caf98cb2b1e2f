package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// TopicRepo реализует repository.TopicRepository
type TopicRepo struct {
	db *gorm.DB
}

// NewTopicRepo создает новый репозиторий тем
func NewTopicRepo(db *gorm.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// Create создает новую тему
func (r *TopicRepo) Create(topic *entity.Topic) error {
	return r.db.Create(topic).Error
}

// GetByID возвращает тему по ID
func (r *TopicRepo) GetByID(id uint) (*entity.Topic, error) {
	var topic entity.Topic
	err := r.db.First(&topic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// GetAll возвращает все темы
func (r *TopicRepo) GetAll() ([]entity.Topic, error) {
	var topics []entity.Topic
	err := r.db.Order("id").Find(&topics).Error
	return topics, err
}

// Update обновляет тему
func (r *TopicRepo) Update(topic *entity.Topic) error {
	return r.db.Save(topic).Error
}

// Delete удаляет тему вместе с материалами
func (r *TopicRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&entity.TopicItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Topic{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// CreateItem добавляет материал к теме
func (r *TopicRepo) CreateItem(item *entity.TopicItem) error {
	return r.db.Create(item).Error
}

// GetItemsByTopicID возвращает материалы темы в порядке следования
func (r *TopicRepo) GetItemsByTopicID(topicID uint) ([]entity.TopicItem, error) {
	var items []entity.TopicItem
	err := r.db.Where("topic_id = ?", topicID).Order("item_order").Find(&items).Error
	return items, err
}

// MaxItemOrder возвращает максимальный порядковый номер материала темы
func (r *TopicRepo) MaxItemOrder(topicID uint) (int, error) {
	var max int
	err := r.db.Model(&entity.TopicItem{}).
		Where("topic_id = ?", topicID).
		Select("COALESCE(MAX(item_order), 0)").
		Scan(&max).Error
	return max, err
}
