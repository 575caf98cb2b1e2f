package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// ============================================================================
// Общие моки репозиториев для тестов сервисов
// ============================================================================

// MockQuestionRepo реализует repository.QuestionRepository
type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepo) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) GetByTestID(testID uint) ([]entity.Question, error) {
	args := m.Called(testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) CountByTestID(testID uint) (int64, error) {
	args := m.Called(testID)
	return args.Get(0).(int64), args.Error(1)
}

// MockResponseRepo реализует repository.ResponseRepository
type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) Create(response *entity.UserResponse) error {
	args := m.Called(response)
	return args.Error(0)
}

func (m *MockResponseRepo) GetByTestID(testID uint) ([]entity.UserResponse, error) {
	args := m.Called(testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserResponse), args.Error(1)
}

func (m *MockResponseRepo) GetByUserAndTest(userID, testID uint) ([]entity.UserResponse, error) {
	args := m.Called(userID, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserResponse), args.Error(1)
}

// MockTestRepo реализует repository.TestRepository
type MockTestRepo struct {
	mock.Mock
}

func (m *MockTestRepo) Create(test *entity.Test) error {
	args := m.Called(test)
	return args.Error(0)
}

func (m *MockTestRepo) GetByID(id uint) (*entity.Test, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Test), args.Error(1)
}

func (m *MockTestRepo) GetByTopicID(topicID uint) ([]entity.Test, error) {
	args := m.Called(topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Test), args.Error(1)
}

// MockTopicRepo реализует repository.TopicRepository
type MockTopicRepo struct {
	mock.Mock
}

func (m *MockTopicRepo) Create(topic *entity.Topic) error {
	args := m.Called(topic)
	return args.Error(0)
}

func (m *MockTopicRepo) GetByID(id uint) (*entity.Topic, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Topic), args.Error(1)
}

func (m *MockTopicRepo) GetAll() ([]entity.Topic, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Topic), args.Error(1)
}

func (m *MockTopicRepo) Update(topic *entity.Topic) error {
	args := m.Called(topic)
	return args.Error(0)
}

func (m *MockTopicRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTopicRepo) CreateItem(item *entity.TopicItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockTopicRepo) GetItemsByTopicID(topicID uint) ([]entity.TopicItem, error) {
	args := m.Called(topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TopicItem), args.Error(1)
}

func (m *MockTopicRepo) MaxItemOrder(topicID uint) (int, error) {
	args := m.Called(topicID)
	return args.Int(0), args.Error(1)
}

// MockFeedbackRepo реализует repository.FeedbackRepository
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(feedback *entity.Feedback) error {
	args := m.Called(feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepo) GetByUserAndTest(userID, testID uint) ([]entity.Feedback, error) {
	args := m.Called(userID, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Feedback), args.Error(1)
}

// MockCacheRepo реализует repository.CacheRepository
type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepo) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepo) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) GetJSON(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheRepo) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockUserRepo реализует repository.UserRepository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) List(limit, offset int) ([]entity.User, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepo) ListByGroup(groupID uint) ([]entity.User, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

// MockGroupRepo реализует repository.GroupRepository
type MockGroupRepo struct {
	mock.Mock
}

func (m *MockGroupRepo) Create(group *entity.Group) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupRepo) GetByID(id uint) (*entity.Group, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Group), args.Error(1)
}

func (m *MockGroupRepo) GetAll() ([]entity.Group, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Group), args.Error(1)
}

// MockAssignmentRepo реализует repository.AssignmentRepository
type MockAssignmentRepo struct {
	mock.Mock
}

func (m *MockAssignmentRepo) CreatePractical(assignment *entity.PracticalAssignment) error {
	args := m.Called(assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepo) GetPracticalByTopicID(topicID uint) ([]entity.PracticalAssignment, error) {
	args := m.Called(topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PracticalAssignment), args.Error(1)
}

func (m *MockAssignmentRepo) CreateIndependent(assignment *entity.IndependentAssignment) error {
	args := m.Called(assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepo) GetIndependentByID(id uint) (*entity.IndependentAssignment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.IndependentAssignment), args.Error(1)
}

func (m *MockAssignmentRepo) GetIndependentByGroupID(groupID uint) ([]entity.IndependentAssignment, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.IndependentAssignment), args.Error(1)
}

func (m *MockAssignmentRepo) CreateSubmission(submission *entity.IndependentSubmission) error {
	args := m.Called(submission)
	return args.Error(0)
}

func (m *MockAssignmentRepo) GetSubmissionByID(id uint) (*entity.IndependentSubmission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.IndependentSubmission), args.Error(1)
}

func (m *MockAssignmentRepo) GetSubmissionsByAssignmentID(assignmentID uint) ([]entity.IndependentSubmission, error) {
	args := m.Called(assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.IndependentSubmission), args.Error(1)
}

func (m *MockAssignmentRepo) UpdateSubmissionGrade(submissionID uint, score float64, feedback string) error {
	args := m.Called(submissionID, score, feedback)
	return args.Error(0)
}

// ============================================================================
// Моки внешних зависимостей
// ============================================================================

// MockSynthesizer реализует FeedbackSynthesizer
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) GenerateFeedback(ctx context.Context, topicID uint, correctCount, totalQuestions int, incorrect []Answer) (string, error) {
	args := m.Called(ctx, topicID, correctCount, totalQuestions, incorrect)
	return args.String(0), args.Error(1)
}

// MockGenerator реализует ai.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, systemMessage, userPrompt string) (string, error) {
	args := m.Called(ctx, systemMessage, userPrompt)
	return args.String(0), args.Error(1)
}

// MockObjectStorage реализует storage.ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockRenderer реализует pdf.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderPages(ctx context.Context, pdfData []byte) ([][]byte, error) {
	args := m.Called(ctx, pdfData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}
