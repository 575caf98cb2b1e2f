package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/domain/repository"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
	"github.com/yourusername/learning-platform/internal/storage"
)

// AssignmentService предоставляет методы для работы с заданиями
type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
	topicRepo      repository.TopicRepository
	groupRepo      repository.GroupRepository
	objectStorage  storage.ObjectStorage
}

// NewAssignmentService создает новый сервис заданий
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	topicRepo repository.TopicRepository,
	groupRepo repository.GroupRepository,
	objectStorage storage.ObjectStorage,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		topicRepo:      topicRepo,
		groupRepo:      groupRepo,
		objectStorage:  objectStorage,
	}
}

// CreatePractical создает практическое задание для существующей темы
func (s *AssignmentService) CreatePractical(topicID uint, title string) (*entity.PracticalAssignment, error) {
	if _, err := s.topicRepo.GetByID(topicID); err != nil {
		return nil, err
	}

	assignment := &entity.PracticalAssignment{
		TopicID: topicID,
		Title:   title,
	}
	if err := s.assignmentRepo.CreatePractical(assignment); err != nil {
		return nil, fmt.Errorf("failed to create practical assignment: %w", err)
	}
	return assignment, nil
}

// GetPracticalByTopic возвращает практические задания темы
func (s *AssignmentService) GetPracticalByTopic(topicID uint) ([]entity.PracticalAssignment, error) {
	if _, err := s.topicRepo.GetByID(topicID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetPracticalByTopicID(topicID)
}

// CreateIndependent создает самостоятельное задание для существующей группы
func (s *AssignmentService) CreateIndependent(groupID uint, title, description string) (*entity.IndependentAssignment, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		return nil, err
	}

	assignment := &entity.IndependentAssignment{
		GroupID:     groupID,
		Title:       title,
		Description: description,
	}
	if err := s.assignmentRepo.CreateIndependent(assignment); err != nil {
		return nil, fmt.Errorf("failed to create independent assignment: %w", err)
	}
	return assignment, nil
}

// GetIndependentByGroup возвращает самостоятельные задания группы
func (s *AssignmentService) GetIndependentByGroup(groupID uint) ([]entity.IndependentAssignment, error) {
	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetIndependentByGroupID(groupID)
}

// SubmitWork загружает файл сданной работы в хранилище и создает запись о сдаче
func (s *AssignmentService) SubmitWork(ctx context.Context, assignmentID, userID uint, filename string, file io.Reader, size int64) (*entity.IndependentSubmission, error) {
	if _, err := s.assignmentRepo.GetIndependentByID(assignmentID); err != nil {
		return nil, err
	}

	// Имя файла попадает в ключ хранилища без каталогов из запроса клиента
	safeName := filepath.Base(filename)
	key := fmt.Sprintf("assignments/%d/%s_%s", assignmentID, uuid.New().String(), safeName)

	url, err := s.objectStorage.Upload(ctx, key, file, size, "application/octet-stream")
	if err != nil {
		return nil, fmt.Errorf("failed to upload submission file: %w", err)
	}

	submission := &entity.IndependentSubmission{
		UserID:       userID,
		AssignmentID: assignmentID,
		FileURL:      url,
	}
	if err := s.assignmentRepo.CreateSubmission(submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	log.Printf("[AssignmentService] Пользователь %d сдал работу по заданию %d", userID, assignmentID)
	return submission, nil
}

// GetSubmissions возвращает все сданные работы по заданию
func (s *AssignmentService) GetSubmissions(assignmentID uint) ([]entity.IndependentSubmission, error) {
	if _, err := s.assignmentRepo.GetIndependentByID(assignmentID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetSubmissionsByAssignmentID(assignmentID)
}

// GradeSubmission выставляет оценку и комментарий преподавателя
func (s *AssignmentService) GradeSubmission(submissionID uint, score float64, feedback string) (*entity.IndependentSubmission, error) {
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: score must be between 0 and 100", apperrors.ErrValidation)
	}

	if err := s.assignmentRepo.UpdateSubmissionGrade(submissionID, score, feedback); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetSubmissionByID(submissionID)
}
