package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/domain/repository"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

const (
	// PassThreshold - минимальный процент правильных ответов для прохождения теста.
	// Порог включительный: ровно 60% считается прохождением.
	PassThreshold = 60.0

	// passFeedbackText - текст обратной связи при успешном прохождении
	passFeedbackText = "Good job!"

	// questionsCacheTTL - время жизни кеша списка вопросов
	questionsCacheTTL = time.Hour
)

// questionsCacheKey строит ключ кеша для вопросов теста
func questionsCacheKey(testID uint) string {
	return fmt.Sprintf("questions:%d", testID)
}

// TestSubmission представляет присланные ответы на тест.
// Тема передается клиентом и используется при генерации обратной связи.
type TestSubmission struct {
	TopicID uint     `json:"topic_id"`
	Answers []Answer `json:"answers"`
}

// TestResult представляет итог проверки теста
type TestResult struct {
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	CanProceed     bool    `json:"can_proceed"`
}

// TestService предоставляет методы для работы с тестами и их проверки
type TestService struct {
	testRepo     repository.TestRepository
	topicRepo    repository.TopicRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	feedbackRepo repository.FeedbackRepository
	cacheRepo    repository.CacheRepository
	scorer       *Scorer
	synthesizer  FeedbackSynthesizer
}

// NewTestService создает новый сервис тестов
func NewTestService(
	testRepo repository.TestRepository,
	topicRepo repository.TopicRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	feedbackRepo repository.FeedbackRepository,
	cacheRepo repository.CacheRepository,
	scorer *Scorer,
	synthesizer FeedbackSynthesizer,
) *TestService {
	return &TestService{
		testRepo:     testRepo,
		topicRepo:    topicRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		feedbackRepo: feedbackRepo,
		cacheRepo:    cacheRepo,
		scorer:       scorer,
		synthesizer:  synthesizer,
	}
}

// CreateTest создает новый тест для существующей темы
func (s *TestService) CreateTest(topicID uint, title string) (*entity.Test, error) {
	if _, err := s.topicRepo.GetByID(topicID); err != nil {
		return nil, err
	}

	test := &entity.Test{
		TopicID: topicID,
		Title:   title,
	}
	if err := s.testRepo.Create(test); err != nil {
		return nil, fmt.Errorf("failed to create test: %w", err)
	}
	return test, nil
}

// GetTestByID возвращает тест по ID
func (s *TestService) GetTestByID(testID uint) (*entity.Test, error) {
	return s.testRepo.GetByID(testID)
}

// GetTestsByTopic возвращает все тесты темы
func (s *TestService) GetTestsByTopic(topicID uint) ([]entity.Test, error) {
	if _, err := s.topicRepo.GetByID(topicID); err != nil {
		return nil, err
	}
	return s.testRepo.GetByTopicID(topicID)
}

// CreateQuestion добавляет вопрос к тесту.
// Правильный ответ обязан входить в список вариантов; проверка выполняется
// только здесь, при создании — при проверке теста сравнение идет как есть.
func (s *TestService) CreateQuestion(ctx context.Context, testID uint, questionText string, options []string, correctAnswer string) (*entity.Question, error) {
	if _, err := s.testRepo.GetByID(testID); err != nil {
		return nil, err
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("%w: question must have at least one option", apperrors.ErrValidation)
	}

	question := &entity.Question{
		TestID:        testID,
		QuestionText:  questionText,
		Options:       entity.StringArray(options),
		CorrectAnswer: correctAnswer,
	}
	if !question.HasOption(correctAnswer) {
		return nil, fmt.Errorf("%w: correct answer must be one of the options", apperrors.ErrValidation)
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	// Сбрасываем кеш вопросов теста
	if err := s.cacheRepo.Delete(ctx, questionsCacheKey(testID)); err != nil {
		log.Printf("[TestService] Ошибка сброса кеша вопросов теста %d: %v", testID, err)
	}

	return question, nil
}

// GetQuestionsByTest возвращает вопросы теста, используя кеш (TTL 1 час).
// Правильные ответы в выдачу не попадают: поле скрыто при сериализации.
func (s *TestService) GetQuestionsByTest(ctx context.Context, testID uint) ([]entity.Question, error) {
	key := questionsCacheKey(testID)

	var cached []entity.Question
	err := s.cacheRepo.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[TestService] Ошибка чтения кеша вопросов теста %d: %v", testID, err)
	}

	if _, err := s.testRepo.GetByID(testID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetByTestID(testID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for test %d: %w", testID, err)
	}

	if err := s.cacheRepo.SetJSON(ctx, key, questions, questionsCacheTTL); err != nil {
		log.Printf("[TestService] Ошибка записи кеша вопросов теста %d: %v", testID, err)
	}

	return questions, nil
}

// SubmitTest проверяет присланные ответы и возвращает результат.
//
// Все ответы сохраняются до подсчета очков. Процент считается от общего
// числа вопросов теста, а не от числа присланных ответов. При непрохождении
// обратная связь генерируется внешней моделью по теме, указанной в сабмите
// (она может не совпадать с темой теста); ошибка генерации прерывает
// весь вызов. Итоговая обратная связь сохраняется всегда — и при прохождении,
// и при провале. Сохранение ответов и создание обратной связи не объединены
// в одну транзакцию: уже записанные ответы остаются при любой ошибке дальше.
func (s *TestService) SubmitTest(ctx context.Context, testID uint, userID uint, submission TestSubmission) (*TestResult, error) {
	if _, err := s.testRepo.GetByID(testID); err != nil {
		return nil, err
	}

	totalCount, err := s.questionRepo.CountByTestID(testID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions for test %d: %w", testID, err)
	}
	totalQuestions := int(totalCount)

	correctCount, incorrect, err := s.scorer.Score(userID, submission.Answers)
	if err != nil {
		return nil, err
	}

	// Тест без вопросов дает 0% и идет по ветке непрохождения
	score := 0.0
	if totalQuestions > 0 {
		score = float64(correctCount) / float64(totalQuestions) * 100
	}
	canProceed := score >= PassThreshold

	var feedbackText string
	if canProceed {
		feedbackText = passFeedbackText
	} else {
		feedbackText, err = s.synthesizer.GenerateFeedback(ctx, submission.TopicID, correctCount, totalQuestions, incorrect)
		if err != nil {
			return nil, fmt.Errorf("failed to generate feedback: %w", err)
		}
	}

	feedback := &entity.Feedback{
		UserID:       userID,
		TestID:       testID,
		FeedbackText: feedbackText,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	log.Printf("[TestService] Пользователь %d прошел тест %d: %d/%d (%.2f%%), зачет=%v",
		userID, testID, correctCount, totalQuestions, score, canProceed)

	return &TestResult{
		CorrectCount:   correctCount,
		TotalQuestions: totalQuestions,
		Score:          score,
		Feedback:       feedbackText,
		CanProceed:     canProceed,
	}, nil
}

// GetTestResponsesAll возвращает все ответы на вопросы теста без пагинации
// (используется для экспорта результатов)
func (s *TestService) GetTestResponsesAll(testID uint) ([]entity.UserResponse, error) {
	if _, err := s.testRepo.GetByID(testID); err != nil {
		return nil, err
	}
	return s.responseRepo.GetByTestID(testID)
}

// GetQuestionsForExport возвращает вопросы теста напрямую из базы, минуя кеш.
// В кешированной выдаче правильных ответов нет: поле скрыто при сериализации
// в JSON, а для сверки ответов при экспорте оно необходимо.
func (s *TestService) GetQuestionsForExport(testID uint) ([]entity.Question, error) {
	if _, err := s.testRepo.GetByID(testID); err != nil {
		return nil, err
	}
	return s.questionRepo.GetByTestID(testID)
}

// GetUserFeedback возвращает сохраненную обратную связь пользователя по тесту
func (s *TestService) GetUserFeedback(userID, testID uint) ([]entity.Feedback, error) {
	return s.feedbackRepo.GetByUserAndTest(userID, testID)
}
