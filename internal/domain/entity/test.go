package entity

// Test представляет именованный набор вопросов внутри темы
type Test struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	TopicID uint   `gorm:"not null;index" json:"topic_id"`
	Title   string `gorm:"size:200;not null" json:"title"`
}

// TableName определяет имя таблицы для GORM
func (Test) TableName() string {
	return "tests"
}
