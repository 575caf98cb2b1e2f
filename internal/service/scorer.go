package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/domain/repository"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// Answer представляет один присланный ответ пользователя
type Answer struct {
	QuestionID     uint   `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
}

// Scorer сохраняет ответы пользователя и подсчитывает число правильных.
// Каждый ответ сначала записывается в базу и только затем проверяется:
// история ответов сохраняется даже для вопросов, которых не существует.
type Scorer struct {
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
}

// NewScorer создает новый сервис подсчета результатов
func NewScorer(questionRepo repository.QuestionRepository, responseRepo repository.ResponseRepository) *Scorer {
	return &Scorer{
		questionRepo: questionRepo,
		responseRepo: responseRepo,
	}
}

// Score сохраняет все присланные ответы и возвращает число правильных
// вместе со списком неправильных ответов (для генерации обратной связи).
// Ответы обрабатываются в порядке получения, без дедупликации:
// повторный ответ на тот же вопрос записывается и оценивается отдельно.
// Ответ на несуществующий вопрос считается неправильным, а не ошибкой.
func (s *Scorer) Score(userID uint, answers []Answer) (int, []Answer, error) {
	correctCount := 0
	incorrect := make([]Answer, 0)

	for _, answer := range answers {
		response := &entity.UserResponse{
			UserID:         userID,
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
		}
		if err := s.responseRepo.Create(response); err != nil {
			return 0, nil, fmt.Errorf("failed to save response for question %d: %w", answer.QuestionID, err)
		}

		question, err := s.questionRepo.GetByID(answer.QuestionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Вопрос не найден — ответ засчитывается как неправильный
				log.Printf("[Scorer] Ответ пользователя %d на несуществующий вопрос %d", userID, answer.QuestionID)
				incorrect = append(incorrect, answer)
				continue
			}
			return 0, nil, fmt.Errorf("failed to load question %d: %w", answer.QuestionID, err)
		}

		if question.IsCorrectAnswer(answer.SelectedAnswer) {
			correctCount++
		} else {
			incorrect = append(incorrect, answer)
		}
	}

	return correctCount, incorrect, nil
}
