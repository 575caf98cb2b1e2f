package repository

import (
	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// TopicRepository определяет методы для работы с темами и их материалами
type TopicRepository interface {
	Create(topic *entity.Topic) error
	GetByID(id uint) (*entity.Topic, error)
	GetAll() ([]entity.Topic, error)
	Update(topic *entity.Topic) error
	Delete(id uint) error
	CreateItem(item *entity.TopicItem) error
	GetItemsByTopicID(topicID uint) ([]entity.TopicItem, error)
	// MaxItemOrder возвращает максимальный порядковый номер материала темы.
	// Для темы без материалов возвращает 0.
	MaxItemOrder(topicID uint) (int, error)
}
