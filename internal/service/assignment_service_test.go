package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

func newAssignmentServiceWithMocks() (*AssignmentService, *MockAssignmentRepo, *MockTopicRepo, *MockGroupRepo, *MockObjectStorage) {
	assignmentRepo := new(MockAssignmentRepo)
	topicRepo := new(MockTopicRepo)
	groupRepo := new(MockGroupRepo)
	objectStorage := new(MockObjectStorage)
	svc := NewAssignmentService(assignmentRepo, topicRepo, groupRepo, objectStorage)
	return svc, assignmentRepo, topicRepo, groupRepo, objectStorage
}

func TestAssignmentService_CreatePractical_RequiresTopic(t *testing.T) {
	// Arrange
	svc, assignmentRepo, topicRepo, _, _ := newAssignmentServiceWithMocks()
	topicRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	// Act
	assignment, err := svc.CreatePractical(99, "Задание")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, assignment)
	assignmentRepo.AssertNotCalled(t, "CreatePractical")
}

func TestAssignmentService_CreateIndependent_Success(t *testing.T) {
	// Arrange
	svc, assignmentRepo, _, groupRepo, _ := newAssignmentServiceWithMocks()

	groupRepo.On("GetByID", uint(3)).Return(&entity.Group{ID: 3, Name: "Группа 1"}, nil)
	assignmentRepo.On("CreateIndependent", mock.AnythingOfType("*entity.IndependentAssignment")).Return(nil)

	// Act
	assignment, err := svc.CreateIndependent(3, "Эссе", "Написать эссе")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(3), assignment.GroupID)
	assert.Equal(t, "Эссе", assignment.Title)
}

func TestAssignmentService_SubmitWork_UploadsAndCreatesSubmission(t *testing.T) {
	// Arrange
	svc, assignmentRepo, _, _, objectStorage := newAssignmentServiceWithMocks()

	assignmentRepo.On("GetIndependentByID", uint(5)).Return(&entity.IndependentAssignment{ID: 5}, nil)

	var uploadedKey string
	objectStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything, int64(11), "application/octet-stream").
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(1)
		}).
		Return("https://cdn.example.com/work.docx", nil)

	var created *entity.IndependentSubmission
	assignmentRepo.On("CreateSubmission", mock.AnythingOfType("*entity.IndependentSubmission")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*entity.IndependentSubmission)
	}).Return(nil)

	// Act
	submission, err := svc.SubmitWork(context.Background(), 5, 10, "work.docx", strings.NewReader("file-content"), 11)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(10), created.UserID)
	assert.Equal(t, uint(5), created.AssignmentID)
	assert.Equal(t, "https://cdn.example.com/work.docx", submission.FileURL)

	assert.True(t, strings.HasPrefix(uploadedKey, "assignments/5/"), "unexpected key %s", uploadedKey)
	assert.True(t, strings.HasSuffix(uploadedKey, "_work.docx"))
}

func TestAssignmentService_SubmitWork_StripsClientPath(t *testing.T) {
	// Arrange: каталоги из имени файла клиента не попадают в ключ хранилища
	svc, assignmentRepo, _, _, objectStorage := newAssignmentServiceWithMocks()

	assignmentRepo.On("GetIndependentByID", uint(5)).Return(&entity.IndependentAssignment{ID: 5}, nil)

	var uploadedKey string
	objectStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(1)
		}).
		Return("https://cdn.example.com/x", nil)
	assignmentRepo.On("CreateSubmission", mock.Anything).Return(nil)

	// Act
	_, err := svc.SubmitWork(context.Background(), 5, 10, "../../etc/passwd", strings.NewReader("x"), 1)

	// Assert
	require.NoError(t, err)
	assert.NotContains(t, uploadedKey, "..")
	assert.True(t, strings.HasSuffix(uploadedKey, "_passwd"))
}

func TestAssignmentService_GradeSubmission_ValidatesScoreRange(t *testing.T) {
	// Arrange
	svc, assignmentRepo, _, _, _ := newAssignmentServiceWithMocks()

	// Act
	_, errHigh := svc.GradeSubmission(1, 150, "too much")
	_, errLow := svc.GradeSubmission(1, -5, "negative")

	// Assert
	assert.ErrorIs(t, errHigh, apperrors.ErrValidation)
	assert.ErrorIs(t, errLow, apperrors.ErrValidation)
	assignmentRepo.AssertNotCalled(t, "UpdateSubmissionGrade")
}

func TestAssignmentService_GradeSubmission_Success(t *testing.T) {
	// Arrange
	svc, assignmentRepo, _, _, _ := newAssignmentServiceWithMocks()

	score := 85.0
	feedback := "Хорошая работа"
	graded := &entity.IndependentSubmission{ID: 1, Score: &score, Feedback: &feedback}

	assignmentRepo.On("UpdateSubmissionGrade", uint(1), 85.0, "Хорошая работа").Return(nil)
	assignmentRepo.On("GetSubmissionByID", uint(1)).Return(graded, nil)

	// Act
	submission, err := svc.GradeSubmission(1, 85.0, "Хорошая работа")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, submission.Score)
	assert.Equal(t, 85.0, *submission.Score)
	assignmentRepo.AssertExpectations(t)
}
