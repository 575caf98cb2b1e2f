package entity

import "time"

// UserResponse представляет сохраненный ответ пользователя на вопрос.
// Создается один раз на каждый ответ в сабмите; никогда не обновляется и не удаляется.
type UserResponse struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	QuestionID     uint      `gorm:"not null;index" json:"question_id"`
	SelectedAnswer string    `gorm:"size:500;not null" json:"selected_answer"`
	SubmittedAt    time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

// TableName определяет имя таблицы для GORM
func (UserResponse) TableName() string {
	return "user_responses"
}
