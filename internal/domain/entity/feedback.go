package entity

import "time"

// Feedback представляет сохраненный текстовый итог одного сабмита теста.
// Создается ровно один раз на каждый вызов submit-test после подсчета очков,
// независимо от того, пройден тест или нет (текст различается).
type Feedback struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	TestID       uint      `gorm:"not null;index" json:"test_id"`
	FeedbackText string    `gorm:"not null" json:"feedback_text"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Feedback) TableName() string {
	return "feedback"
}
