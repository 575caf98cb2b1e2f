package entity

import "time"

// PracticalAssignment представляет практическое задание, привязанное к теме
type PracticalAssignment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	TopicID uint   `gorm:"not null;index" json:"topic_id"`
	Title   string `gorm:"size:200;not null" json:"title"`
}

// TableName определяет имя таблицы для GORM
func (PracticalAssignment) TableName() string {
	return "practical_assignments"
}

// IndependentAssignment представляет самостоятельное задание для группы
type IndependentAssignment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	GroupID     uint   `gorm:"not null;index" json:"group_id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:1000" json:"description"`
}

// TableName определяет имя таблицы для GORM
func (IndependentAssignment) TableName() string {
	return "independent_assignments"
}

// IndependentSubmission представляет сдачу самостоятельного задания.
// Score и Feedback заполняются преподавателем при проверке.
type IndependentSubmission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	AssignmentID uint      `gorm:"not null;index" json:"assignment_id"`
	FileURL      string    `gorm:"size:500;not null" json:"file_url"`
	Score        *float64  `json:"score,omitempty"`
	Feedback     *string   `json:"feedback,omitempty"`
	SubmittedAt  time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

// TableName определяет имя таблицы для GORM
func (IndependentSubmission) TableName() string {
	return "independent_submissions"
}
