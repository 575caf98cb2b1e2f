package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// testServiceMocks собирает все зависимости TestService для одного теста
type testServiceMocks struct {
	testRepo     *MockTestRepo
	topicRepo    *MockTopicRepo
	questionRepo *MockQuestionRepo
	responseRepo *MockResponseRepo
	feedbackRepo *MockFeedbackRepo
	cacheRepo    *MockCacheRepo
	synthesizer  *MockSynthesizer
}

func newTestServiceWithMocks() (*TestService, *testServiceMocks) {
	m := &testServiceMocks{
		testRepo:     new(MockTestRepo),
		topicRepo:    new(MockTopicRepo),
		questionRepo: new(MockQuestionRepo),
		responseRepo: new(MockResponseRepo),
		feedbackRepo: new(MockFeedbackRepo),
		cacheRepo:    new(MockCacheRepo),
		synthesizer:  new(MockSynthesizer),
	}
	scorer := NewScorer(m.questionRepo, m.responseRepo)
	svc := NewTestService(m.testRepo, m.topicRepo, m.questionRepo, m.responseRepo, m.feedbackRepo, m.cacheRepo, scorer, m.synthesizer)
	return svc, m
}

func TestTestService_SubmitTest_PassAtExactThreshold(t *testing.T) {
	// Arrange: 3 из 5 — ровно 60%, порог включительный
	svc, m := newTestServiceWithMocks()

	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1, TopicID: 5, Title: "Основы"}, nil)
	m.questionRepo.On("CountByTestID", uint(1)).Return(int64(5), nil)

	for i := uint(1); i <= 5; i++ {
		m.questionRepo.On("GetByID", i).Return(&entity.Question{ID: i, TestID: 1, CorrectAnswer: "A"}, nil)
	}
	m.responseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(nil)
	m.feedbackRepo.On("Create", mock.AnythingOfType("*entity.Feedback")).Return(nil)

	// Act: 3 правильных, 2 неправильных
	result, err := svc.SubmitTest(context.Background(), 1, 10, TestSubmission{TopicID: 5, Answers: []Answer{
		{QuestionID: 1, SelectedAnswer: "A"},
		{QuestionID: 2, SelectedAnswer: "A"},
		{QuestionID: 3, SelectedAnswer: "A"},
		{QuestionID: 4, SelectedAnswer: "B"},
		{QuestionID: 5, SelectedAnswer: "B"},
	}})

	// Assert: зачет, генератор обратной связи не вызывался
	require.NoError(t, err)
	assert.Equal(t, 3, result.CorrectCount)
	assert.Equal(t, 5, result.TotalQuestions)
	assert.InDelta(t, 60.0, result.Score, 0.001)
	assert.True(t, result.CanProceed)
	assert.Equal(t, "Good job!", result.Feedback)
	m.synthesizer.AssertNotCalled(t, "GenerateFeedback")
	m.feedbackRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestTestService_SubmitTest_FailInvokesSynthesizer(t *testing.T) {
	// Arrange: 1 из 2 — 50%, непрохождение
	svc, m := newTestServiceWithMocks()

	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1, TopicID: 5}, nil)
	m.questionRepo.On("CountByTestID", uint(1)).Return(int64(2), nil)
	m.questionRepo.On("GetByID", uint(1)).Return(&entity.Question{ID: 1, CorrectAnswer: "A"}, nil)
	m.questionRepo.On("GetByID", uint(2)).Return(&entity.Question{ID: 2, CorrectAnswer: "B"}, nil)
	m.responseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(nil)

	// Генератору передаются ровно неправильные ответы
	expectedIncorrect := []Answer{{QuestionID: 2, SelectedAnswer: "C"}}
	m.synthesizer.On("GenerateFeedback", mock.Anything, uint(5), 1, 2, expectedIncorrect).
		Return("Review question 2", nil)

	var savedFeedback *entity.Feedback
	m.feedbackRepo.On("Create", mock.AnythingOfType("*entity.Feedback")).Run(func(args mock.Arguments) {
		savedFeedback = args.Get(0).(*entity.Feedback)
	}).Return(nil)

	// Act
	result, err := svc.SubmitTest(context.Background(), 1, 10, TestSubmission{TopicID: 5, Answers: []Answer{
		{QuestionID: 1, SelectedAnswer: "A"},
		{QuestionID: 2, SelectedAnswer: "C"},
	}})

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.Score, 0.001)
	assert.False(t, result.CanProceed)
	assert.Equal(t, "Review question 2", result.Feedback)
	m.synthesizer.AssertExpectations(t)

	require.NotNil(t, savedFeedback, "обратная связь должна быть сохранена и при провале")
	assert.Equal(t, uint(10), savedFeedback.UserID)
	assert.Equal(t, uint(1), savedFeedback.TestID)
	assert.Equal(t, "Review question 2", savedFeedback.FeedbackText)
}

func TestTestService_SubmitTest_EmptyTestScoresZero(t *testing.T) {
	// Arrange: тест без вопросов — 0%, идет по ветке непрохождения
	svc, m := newTestServiceWithMocks()

	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1, TopicID: 5}, nil)
	m.questionRepo.On("CountByTestID", uint(1)).Return(int64(0), nil)
	m.synthesizer.On("GenerateFeedback", mock.Anything, uint(5), 0, 0, mock.Anything).
		Return("No questions yet", nil)
	m.feedbackRepo.On("Create", mock.AnythingOfType("*entity.Feedback")).Return(nil)

	// Act
	result, err := svc.SubmitTest(context.Background(), 1, 10, TestSubmission{TopicID: 5})

	// Assert: score 0, генератор вызван, деления на ноль нет
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.CanProceed)
	m.synthesizer.AssertExpectations(t)
	m.feedbackRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestTestService_SubmitTest_SynthesizerFailureIsFatal(t *testing.T) {
	// Arrange: ошибка генерации прерывает вызов, обратная связь не сохраняется
	svc, m := newTestServiceWithMocks()

	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1, TopicID: 5}, nil)
	m.questionRepo.On("CountByTestID", uint(1)).Return(int64(1), nil)
	m.questionRepo.On("GetByID", uint(1)).Return(&entity.Question{ID: 1, CorrectAnswer: "A"}, nil)
	m.responseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(nil)

	genErr := errors.New("model unavailable")
	m.synthesizer.On("GenerateFeedback", mock.Anything, uint(5), 0, 1, mock.Anything).
		Return("", genErr)

	// Act
	result, err := svc.SubmitTest(context.Background(), 1, 10, TestSubmission{TopicID: 5, Answers: []Answer{
		{QuestionID: 1, SelectedAnswer: "B"},
	}})

	// Assert: ошибка наружу, но ответы уже записаны
	require.Error(t, err)
	assert.ErrorIs(t, err, genErr)
	assert.Nil(t, result)
	m.responseRepo.AssertNumberOfCalls(t, "Create", 1)
	m.feedbackRepo.AssertNotCalled(t, "Create")
}

func TestTestService_SubmitTest_UnknownTest(t *testing.T) {
	// Arrange
	svc, m := newTestServiceWithMocks()
	m.testRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)

	// Act
	result, err := svc.SubmitTest(context.Background(), 42, 10, TestSubmission{})

	// Assert: ничего не записывается
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, result)
	m.responseRepo.AssertNotCalled(t, "Create")
	m.feedbackRepo.AssertNotCalled(t, "Create")
}

func TestTestService_SubmitTest_ScoreAgainstTotalNotSubmitted(t *testing.T) {
	// Arrange: тест из 4 вопросов, прислан один правильный ответ — 25%
	svc, m := newTestServiceWithMocks()

	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1, TopicID: 5}, nil)
	m.questionRepo.On("CountByTestID", uint(1)).Return(int64(4), nil)
	m.questionRepo.On("GetByID", uint(1)).Return(&entity.Question{ID: 1, CorrectAnswer: "A"}, nil)
	m.responseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(nil)
	m.synthesizer.On("GenerateFeedback", mock.Anything, uint(5), 1, 4, mock.Anything).
		Return("Keep going", nil)
	m.feedbackRepo.On("Create", mock.AnythingOfType("*entity.Feedback")).Return(nil)

	// Act
	result, err := svc.SubmitTest(context.Background(), 1, 10, TestSubmission{TopicID: 5, Answers: []Answer{
		{QuestionID: 1, SelectedAnswer: "A"},
	}})

	// Assert: процент считается от общего числа вопросов теста
	require.NoError(t, err)
	assert.InDelta(t, 25.0, result.Score, 0.001)
	assert.False(t, result.CanProceed)
}

func TestTestService_SubmitTest_FeedbackUsesSubmittedTopic(t *testing.T) {
	// Arrange: тема в сабмите отличается от темы теста — генератору
	// передается тема из сабмита
	svc, m := newTestServiceWithMocks()

	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1, TopicID: 5}, nil)
	m.questionRepo.On("CountByTestID", uint(1)).Return(int64(1), nil)
	m.questionRepo.On("GetByID", uint(1)).Return(&entity.Question{ID: 1, CorrectAnswer: "A"}, nil)
	m.responseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(nil)
	m.synthesizer.On("GenerateFeedback", mock.Anything, uint(7), 0, 1, mock.Anything).
		Return("Review the basics", nil)
	m.feedbackRepo.On("Create", mock.AnythingOfType("*entity.Feedback")).Return(nil)

	// Act
	result, err := svc.SubmitTest(context.Background(), 1, 10, TestSubmission{TopicID: 7, Answers: []Answer{
		{QuestionID: 1, SelectedAnswer: "B"},
	}})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Review the basics", result.Feedback)
	m.synthesizer.AssertExpectations(t)
}

func TestTestService_CreateQuestion_CorrectAnswerMustBeOption(t *testing.T) {
	// Arrange
	svc, m := newTestServiceWithMocks()
	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1}, nil)

	// Act: правильный ответ отсутствует среди вариантов
	question, err := svc.CreateQuestion(context.Background(), 1, "Вопрос?", []string{"A", "B"}, "C")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, question)
	m.questionRepo.AssertNotCalled(t, "Create")
}

func TestTestService_CreateQuestion_InvalidatesCache(t *testing.T) {
	// Arrange
	svc, m := newTestServiceWithMocks()

	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1}, nil)
	m.questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)
	m.cacheRepo.On("Delete", mock.Anything, "questions:1").Return(nil)

	// Act
	question, err := svc.CreateQuestion(context.Background(), 1, "Вопрос?", []string{"A", "B"}, "A")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, "A", question.CorrectAnswer)
	m.cacheRepo.AssertExpectations(t)
}

func TestTestService_GetQuestionsForExport_KeepsCorrectAnswers(t *testing.T) {
	// Arrange: экспорт сверяет ответы с правильными, а в кешированной
	// выдаче правильных ответов нет — вопросы читаются напрямую из базы
	svc, m := newTestServiceWithMocks()

	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1}, nil)
	m.questionRepo.On("GetByTestID", uint(1)).Return([]entity.Question{
		{ID: 1, TestID: 1, Options: entity.StringArray{"A", "B"}, CorrectAnswer: "A"},
		{ID: 2, TestID: 1, Options: entity.StringArray{"C", "D"}, CorrectAnswer: "D"},
	}, nil)

	// Act
	questions, err := svc.GetQuestionsForExport(1)

	// Assert: правильные ответы на месте, кеш не затрагивался
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.True(t, questions[0].IsCorrectAnswer("A"))
	assert.True(t, questions[1].IsCorrectAnswer("D"))
	m.cacheRepo.AssertNotCalled(t, "GetJSON")
	m.cacheRepo.AssertNotCalled(t, "SetJSON")
}

func TestTestService_GetQuestionsByTest_CacheMissLoadsAndCaches(t *testing.T) {
	// Arrange
	svc, m := newTestServiceWithMocks()

	questions := []entity.Question{{ID: 1, TestID: 1, QuestionText: "Q1"}}

	m.cacheRepo.On("GetJSON", mock.Anything, "questions:1", mock.Anything).Return(apperrors.ErrNotFound)
	m.testRepo.On("GetByID", uint(1)).Return(&entity.Test{ID: 1}, nil)
	m.questionRepo.On("GetByTestID", uint(1)).Return(questions, nil)
	m.cacheRepo.On("SetJSON", mock.Anything, "questions:1", questions, questionsCacheTTL).Return(nil)

	// Act
	got, err := svc.GetQuestionsByTest(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, questions, got)
	m.cacheRepo.AssertExpectations(t)
}
