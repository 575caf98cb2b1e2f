package entity

import "time"

// Topic представляет учебную тему с упорядоченными элементами контента
type Topic struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null;index" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Topic) TableName() string {
	return "topics"
}

// Типы элементов контента темы
const (
	TopicItemText  = "text"
	TopicItemImage = "image"
	TopicItemPDF   = "pdf"
	TopicItemVideo = "video"
)

// TopicItem представляет один элемент контента темы (текст, картинка, pdf или видео).
// Content хранит сам текст либо URL на файл/видео в зависимости от Type.
type TopicItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	TopicID uint   `gorm:"not null;index" json:"topic_id"`
	Type    string `gorm:"size:20;not null" json:"type"`
	Content string `gorm:"not null" json:"content"`
	Order   int    `gorm:"column:item_order;not null" json:"order"`
}

// TableName определяет имя таблицы для GORM
func (TopicItem) TableName() string {
	return "topic_items"
}

// IsValidTopicItemType проверяет, что тип элемента входит в список известных
func IsValidTopicItemType(t string) bool {
	switch t {
	case TopicItemText, TopicItemImage, TopicItemPDF, TopicItemVideo:
		return true
	}
	return false
}
