package repository

import (
	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// AssignmentRepository определяет методы для работы с практическими
// и самостоятельными заданиями
type AssignmentRepository interface {
	CreatePractical(assignment *entity.PracticalAssignment) error
	GetPracticalByTopicID(topicID uint) ([]entity.PracticalAssignment, error)

	CreateIndependent(assignment *entity.IndependentAssignment) error
	GetIndependentByID(id uint) (*entity.IndependentAssignment, error)
	GetIndependentByGroupID(groupID uint) ([]entity.IndependentAssignment, error)

	CreateSubmission(submission *entity.IndependentSubmission) error
	GetSubmissionByID(id uint) (*entity.IndependentSubmission, error)
	GetSubmissionsByAssignmentID(assignmentID uint) ([]entity.IndependentSubmission, error)
	UpdateSubmissionGrade(submissionID uint, score float64, feedback string) error
}
