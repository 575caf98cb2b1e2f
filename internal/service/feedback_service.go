package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/learning-platform/internal/ai"
	"github.com/yourusername/learning-platform/internal/domain/repository"
)

const feedbackSystemMessage = "You are a helpful tutor providing constructive feedback."

// FeedbackSynthesizer генерирует текст обратной связи по результатам теста
type FeedbackSynthesizer interface {
	GenerateFeedback(ctx context.Context, topicID uint, correctCount, totalQuestions int, incorrect []Answer) (string, error)
}

// FeedbackService реализует FeedbackSynthesizer через внешнюю языковую модель
type FeedbackService struct {
	topicRepo repository.TopicRepository
	generator ai.Generator
}

// NewFeedbackService создает новый сервис генерации обратной связи
func NewFeedbackService(topicRepo repository.TopicRepository, generator ai.Generator) *FeedbackService {
	return &FeedbackService{
		topicRepo: topicRepo,
		generator: generator,
	}
}

// GenerateFeedback строит подсказку по результатам теста и запрашивает
// у модели разбор ошибок. Ошибка генерации возвращается вызывающему как есть:
// запасного текста обратной связи нет.
func (s *FeedbackService) GenerateFeedback(ctx context.Context, topicID uint, correctCount, totalQuestions int, incorrect []Answer) (string, error) {
	topic, err := s.topicRepo.GetByID(topicID)
	if err != nil {
		return "", fmt.Errorf("failed to load topic %d for feedback: %w", topicID, err)
	}

	percentage := 0.0
	if totalQuestions > 0 {
		percentage = float64(correctCount) / float64(totalQuestions) * 100
	}

	lines := make([]string, 0, len(incorrect))
	for _, answer := range incorrect {
		lines = append(lines, fmt.Sprintf("Question ID %d: Selected %s", answer.QuestionID, answer.SelectedAnswer))
	}

	prompt := fmt.Sprintf(
		"The user took a test on the topic '%s'. They answered %d out of %d questions correctly (score: %.2f%%). Incorrect answers: %s. Provide feedback on their mistakes and suggest topics to review.",
		topic.Title, correctCount, totalQuestions, percentage, strings.Join(lines, ", "),
	)

	feedbackText, err := s.generator.Generate(ctx, feedbackSystemMessage, prompt)
	if err != nil {
		log.Printf("[FeedbackService] Ошибка генерации обратной связи по теме %d: %v", topicID, err)
		return "", err
	}
	return feedbackText, nil
}
