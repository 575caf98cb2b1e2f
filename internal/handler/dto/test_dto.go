package dto

import (
	"time"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/service"
)

// TestResponse представляет тест в формате для ответа клиенту
type TestResponse struct {
	ID      uint   `json:"id"`
	TopicID uint   `json:"topic_id"`
	Title   string `json:"title"`
}

// NewTestResponse создает DTO для теста
func NewTestResponse(test *entity.Test) *TestResponse {
	return &TestResponse{
		ID:      test.ID,
		TopicID: test.TopicID,
		Title:   test.Title,
	}
}

// NewTestListResponse создает список DTO тестов
func NewTestListResponse(tests []entity.Test) []*TestResponse {
	responses := make([]*TestResponse, 0, len(tests))
	for i := range tests {
		responses = append(responses, NewTestResponse(&tests[i]))
	}
	return responses
}

// QuestionResponse представляет вопрос в формате для ответа клиенту.
// Правильный ответ клиенту не отдается.
type QuestionResponse struct {
	ID           uint     `json:"id"`
	TestID       uint     `json:"test_id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(question *entity.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:           question.ID,
		TestID:       question.TestID,
		QuestionText: question.QuestionText,
		Options:      question.Options,
	}
}

// NewQuestionListResponse создает список DTO вопросов
func NewQuestionListResponse(questions []entity.Question) []*QuestionResponse {
	responses := make([]*QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, NewQuestionResponse(&questions[i]))
	}
	return responses
}

// TestResultResponse представляет итог проверки теста
type TestResultResponse struct {
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	CanProceed     bool    `json:"can_proceed"`
}

// NewTestResultResponse создает DTO для результата проверки теста
func NewTestResultResponse(result *service.TestResult) *TestResultResponse {
	return &TestResultResponse{
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		Score:          result.Score,
		Feedback:       result.Feedback,
		CanProceed:     result.CanProceed,
	}
}

// FeedbackResponse представляет сохраненную обратную связь
type FeedbackResponse struct {
	ID           uint      `json:"id"`
	TestID       uint      `json:"test_id"`
	FeedbackText string    `json:"feedback_text"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewFeedbackListResponse создает список DTO обратной связи
func NewFeedbackListResponse(feedbacks []entity.Feedback) []*FeedbackResponse {
	responses := make([]*FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		responses = append(responses, &FeedbackResponse{
			ID:           f.ID,
			TestID:       f.TestID,
			FeedbackText: f.FeedbackText,
			CreatedAt:    f.CreatedAt,
		})
	}
	return responses
}
