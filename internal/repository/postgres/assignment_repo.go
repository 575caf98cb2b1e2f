package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// AssignmentRepo реализует repository.AssignmentRepository
type AssignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo создает новый репозиторий заданий
func NewAssignmentRepo(db *gorm.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// CreatePractical создает практическое задание
func (r *AssignmentRepo) CreatePractical(assignment *entity.PracticalAssignment) error {
	return r.db.Create(assignment).Error
}

// GetPracticalByTopicID возвращает практические задания темы
func (r *AssignmentRepo) GetPracticalByTopicID(topicID uint) ([]entity.PracticalAssignment, error) {
	var assignments []entity.PracticalAssignment
	err := r.db.Where("topic_id = ?", topicID).Order("id").Find(&assignments).Error
	return assignments, err
}

// CreateIndependent создает самостоятельное задание для группы
func (r *AssignmentRepo) CreateIndependent(assignment *entity.IndependentAssignment) error {
	return r.db.Create(assignment).Error
}

// GetIndependentByID возвращает самостоятельное задание по ID
func (r *AssignmentRepo) GetIndependentByID(id uint) (*entity.IndependentAssignment, error) {
	var assignment entity.IndependentAssignment
	err := r.db.First(&assignment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// GetIndependentByGroupID возвращает самостоятельные задания группы
func (r *AssignmentRepo) GetIndependentByGroupID(groupID uint) ([]entity.IndependentAssignment, error) {
	var assignments []entity.IndependentAssignment
	err := r.db.Where("group_id = ?", groupID).Order("id").Find(&assignments).Error
	return assignments, err
}

// CreateSubmission сохраняет сданную работу по самостоятельному заданию
func (r *AssignmentRepo) CreateSubmission(submission *entity.IndependentSubmission) error {
	return r.db.Create(submission).Error
}

// GetSubmissionByID возвращает сданную работу по ID
func (r *AssignmentRepo) GetSubmissionByID(id uint) (*entity.IndependentSubmission, error) {
	var submission entity.IndependentSubmission
	err := r.db.First(&submission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// GetSubmissionsByAssignmentID возвращает все работы по заданию
func (r *AssignmentRepo) GetSubmissionsByAssignmentID(assignmentID uint) ([]entity.IndependentSubmission, error) {
	var submissions []entity.IndependentSubmission
	err := r.db.Where("assignment_id = ?", assignmentID).Order("id").Find(&submissions).Error
	return submissions, err
}

// UpdateSubmissionGrade выставляет оценку и комментарий преподавателя
func (r *AssignmentRepo) UpdateSubmissionGrade(submissionID uint, score float64, feedback string) error {
	result := r.db.Model(&entity.IndependentSubmission{}).
		Where("id = ?", submissionID).
		Updates(map[string]interface{}{
			"score":    score,
			"feedback": feedback,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
