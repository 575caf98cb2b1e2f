package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/learning-platform/internal/handler/dto"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
	"github.com/yourusername/learning-platform/internal/service"
)

// maxSubmissionSize - максимальный размер файла сданной работы (100 МБ)
const maxSubmissionSize = 100 << 20

// AssignmentHandler обрабатывает запросы, связанные с заданиями
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler создает новый обработчик заданий
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// CreatePracticalRequest представляет запрос на создание практического задания
type CreatePracticalRequest struct {
	TopicID uint   `json:"topic_id" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=200"`
}

// CreatePractical создает практическое задание
func (h *AssignmentHandler) CreatePractical(c *gin.Context) {
	var req CreatePracticalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreatePractical(req.TopicID, req.Title)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPracticalAssignmentResponse(assignment))
}

// GetPracticalByTopic возвращает практические задания темы
func (h *AssignmentHandler) GetPracticalByTopic(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)

	assignments, err := h.assignmentService.GetPracticalByTopic(topicID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPracticalAssignmentListResponse(assignments))
}

// CreateIndependentRequest представляет запрос на создание самостоятельного задания
type CreateIndependentRequest struct {
	GroupID     uint   `json:"group_id" binding:"required"`
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// CreateIndependent создает самостоятельное задание для группы
func (h *AssignmentHandler) CreateIndependent(c *gin.Context) {
	var req CreateIndependentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreateIndependent(req.GroupID, req.Title, req.Description)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewIndependentAssignmentResponse(assignment))
}

// GetIndependentByGroup возвращает самостоятельные задания группы
func (h *AssignmentHandler) GetIndependentByGroup(c *gin.Context) {
	groupID := c.MustGet("groupID").(uint)

	assignments, err := h.assignmentService.GetIndependentByGroup(groupID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIndependentAssignmentListResponse(assignments))
}

// SubmitWork принимает файл сданной работы
// POST /api/assignments/:id/submissions (multipart/form-data, поле "file")
func (h *AssignmentHandler) SubmitWork(c *gin.Context) {
	assignmentID := c.MustGet("assignmentID").(uint)
	userID := c.MustGet("user_id").(uint)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required in field 'file'"})
		return
	}
	if fileHeader.Size > maxSubmissionSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[AssignmentHandler] Ошибка открытия загруженного файла: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	submission, err := h.assignmentService.SubmitWork(c.Request.Context(), assignmentID, userID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSubmissionResponse(submission))
}

// GetSubmissions возвращает все сданные работы по заданию
func (h *AssignmentHandler) GetSubmissions(c *gin.Context) {
	assignmentID := c.MustGet("assignmentID").(uint)

	submissions, err := h.assignmentService.GetSubmissions(assignmentID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmissionListResponse(submissions))
}

// GradeSubmissionRequest представляет запрос на выставление оценки
type GradeSubmissionRequest struct {
	Score    *float64 `json:"score" binding:"required"`
	Feedback string   `json:"feedback" binding:"omitempty,max=2000"`
}

// GradeSubmission выставляет оценку и комментарий преподавателя
// PUT /api/submissions/:id/grade
func (h *AssignmentHandler) GradeSubmission(c *gin.Context) {
	submissionID := c.MustGet("submissionID").(uint)

	var req GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.assignmentService.GradeSubmission(submissionID, *req.Score, req.Feedback)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmissionResponse(submission))
}

// handleAssignmentError преобразует ошибки сервисов в HTTP-статусы
func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrExternalService) {
		log.Printf("ERROR: External service error in AssignmentHandler: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Storage service unavailable"})
	} else {
		log.Printf("ERROR: Internal server error in AssignmentHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
