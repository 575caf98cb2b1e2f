package dto

import (
	"time"

	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// PracticalAssignmentResponse представляет практическое задание для ответа клиенту
type PracticalAssignmentResponse struct {
	ID      uint   `json:"id"`
	TopicID uint   `json:"topic_id"`
	Title   string `json:"title"`
}

// NewPracticalAssignmentResponse создает DTO практического задания
func NewPracticalAssignmentResponse(a *entity.PracticalAssignment) *PracticalAssignmentResponse {
	return &PracticalAssignmentResponse{
		ID:      a.ID,
		TopicID: a.TopicID,
		Title:   a.Title,
	}
}

// NewPracticalAssignmentListResponse создает список DTO практических заданий
func NewPracticalAssignmentListResponse(assignments []entity.PracticalAssignment) []*PracticalAssignmentResponse {
	responses := make([]*PracticalAssignmentResponse, 0, len(assignments))
	for i := range assignments {
		responses = append(responses, NewPracticalAssignmentResponse(&assignments[i]))
	}
	return responses
}

// IndependentAssignmentResponse представляет самостоятельное задание для ответа клиенту
type IndependentAssignmentResponse struct {
	ID          uint   `json:"id"`
	GroupID     uint   `json:"group_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NewIndependentAssignmentResponse создает DTO самостоятельного задания
func NewIndependentAssignmentResponse(a *entity.IndependentAssignment) *IndependentAssignmentResponse {
	return &IndependentAssignmentResponse{
		ID:          a.ID,
		GroupID:     a.GroupID,
		Title:       a.Title,
		Description: a.Description,
	}
}

// NewIndependentAssignmentListResponse создает список DTO самостоятельных заданий
func NewIndependentAssignmentListResponse(assignments []entity.IndependentAssignment) []*IndependentAssignmentResponse {
	responses := make([]*IndependentAssignmentResponse, 0, len(assignments))
	for i := range assignments {
		responses = append(responses, NewIndependentAssignmentResponse(&assignments[i]))
	}
	return responses
}

// SubmissionResponse представляет сданную работу для ответа клиенту
type SubmissionResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	AssignmentID uint      `json:"assignment_id"`
	FileURL      string    `json:"file_url"`
	Score        *float64  `json:"score,omitempty"`
	Feedback     *string   `json:"feedback,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// NewSubmissionResponse создает DTO сданной работы
func NewSubmissionResponse(s *entity.IndependentSubmission) *SubmissionResponse {
	return &SubmissionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		AssignmentID: s.AssignmentID,
		FileURL:      s.FileURL,
		Score:        s.Score,
		Feedback:     s.Feedback,
		SubmittedAt:  s.SubmittedAt,
	}
}

// NewSubmissionListResponse создает список DTO сданных работ
func NewSubmissionListResponse(submissions []entity.IndependentSubmission) []*SubmissionResponse {
	responses := make([]*SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, NewSubmissionResponse(&submissions[i]))
	}
	return responses
}
