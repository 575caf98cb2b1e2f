package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

func TestScorer_Score_CountsCorrectAnswers(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepo)
	mockResponseRepo := new(MockResponseRepo)

	q1 := &entity.Question{ID: 1, TestID: 1, CorrectAnswer: "A"}
	q2 := &entity.Question{ID: 2, TestID: 1, CorrectAnswer: "B"}

	mockResponseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(nil)
	mockQuestionRepo.On("GetByID", uint(1)).Return(q1, nil)
	mockQuestionRepo.On("GetByID", uint(2)).Return(q2, nil)

	scorer := NewScorer(mockQuestionRepo, mockResponseRepo)

	// Act
	correct, incorrect, err := scorer.Score(10, []Answer{
		{QuestionID: 1, SelectedAnswer: "A"},
		{QuestionID: 2, SelectedAnswer: "C"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, correct)
	require.Len(t, incorrect, 1, "неправильный ответ должен попасть в список")
	assert.Equal(t, uint(2), incorrect[0].QuestionID)
	assert.Equal(t, "C", incorrect[0].SelectedAnswer)
	mockResponseRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestScorer_Score_PersistsEveryAnswerBeforeGrading(t *testing.T) {
	// Arrange: каждый ответ записывается отдельной строкой, включая дубликаты
	mockQuestionRepo := new(MockQuestionRepo)
	mockResponseRepo := new(MockResponseRepo)

	q1 := &entity.Question{ID: 1, TestID: 1, CorrectAnswer: "A"}

	var saved []entity.UserResponse
	mockResponseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Run(func(args mock.Arguments) {
		saved = append(saved, *args.Get(0).(*entity.UserResponse))
	}).Return(nil)
	mockQuestionRepo.On("GetByID", uint(1)).Return(q1, nil)

	scorer := NewScorer(mockQuestionRepo, mockResponseRepo)

	// Act: два ответа на один и тот же вопрос
	correct, _, err := scorer.Score(7, []Answer{
		{QuestionID: 1, SelectedAnswer: "A"},
		{QuestionID: 1, SelectedAnswer: "A"},
	})

	// Assert: обе записи сохранены, оба ответа засчитаны
	require.NoError(t, err)
	assert.Equal(t, 2, correct, "дубликаты не схлопываются")
	require.Len(t, saved, 2)
	assert.Equal(t, uint(7), saved[0].UserID)
	assert.Equal(t, uint(7), saved[1].UserID)
}

func TestScorer_Score_UnknownQuestionIsWrongNotError(t *testing.T) {
	// Arrange: ответ на несуществующий вопрос сохраняется и считается неправильным
	mockQuestionRepo := new(MockQuestionRepo)
	mockResponseRepo := new(MockResponseRepo)

	mockResponseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(nil)
	mockQuestionRepo.On("GetByID", uint(999)).Return(nil, apperrors.ErrNotFound)

	scorer := NewScorer(mockQuestionRepo, mockResponseRepo)

	// Act
	correct, incorrect, err := scorer.Score(1, []Answer{
		{QuestionID: 999, SelectedAnswer: "A"},
	})

	// Assert: никакой ошибки, ответ записан и попал в неправильные
	require.NoError(t, err)
	assert.Equal(t, 0, correct)
	require.Len(t, incorrect, 1)
	assert.Equal(t, uint(999), incorrect[0].QuestionID)
	mockResponseRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestScorer_Score_CaseSensitiveComparison(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepo)
	mockResponseRepo := new(MockResponseRepo)

	q1 := &entity.Question{ID: 1, TestID: 1, CorrectAnswer: "Paris"}

	mockResponseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(nil)
	mockQuestionRepo.On("GetByID", uint(1)).Return(q1, nil)

	scorer := NewScorer(mockQuestionRepo, mockResponseRepo)

	// Act: другой регистр — неправильный ответ
	correct, incorrect, err := scorer.Score(1, []Answer{
		{QuestionID: 1, SelectedAnswer: "paris"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, correct)
	assert.Len(t, incorrect, 1)
}

func TestScorer_Score_EmptyAnswers(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepo)
	mockResponseRepo := new(MockResponseRepo)

	scorer := NewScorer(mockQuestionRepo, mockResponseRepo)

	// Act
	correct, incorrect, err := scorer.Score(1, nil)

	// Assert: пустой сабмит — ноль правильных, ничего не записано
	require.NoError(t, err)
	assert.Equal(t, 0, correct)
	assert.Empty(t, incorrect)
	mockResponseRepo.AssertNotCalled(t, "Create")
}

func TestScorer_Score_PersistFailureIsFatal(t *testing.T) {
	// Arrange: ошибка записи ответа прерывает весь подсчет
	mockQuestionRepo := new(MockQuestionRepo)
	mockResponseRepo := new(MockResponseRepo)

	dbErr := errors.New("connection reset")
	mockResponseRepo.On("Create", mock.AnythingOfType("*entity.UserResponse")).Return(dbErr)

	scorer := NewScorer(mockQuestionRepo, mockResponseRepo)

	// Act
	_, _, err := scorer.Score(1, []Answer{{QuestionID: 1, SelectedAnswer: "A"}})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	mockQuestionRepo.AssertNotCalled(t, "GetByID")
}
