package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/handler/dto"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
	"github.com/yourusername/learning-platform/internal/service"
)

// TestHandler обрабатывает запросы, связанные с тестами
type TestHandler struct {
	testService *service.TestService
}

// NewTestHandler создает новый обработчик тестов
func NewTestHandler(testService *service.TestService) *TestHandler {
	return &TestHandler{testService: testService}
}

// CreateTestRequest представляет запрос на создание теста
type CreateTestRequest struct {
	TopicID uint   `json:"topic_id" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=200"`
}

// CreateTest создает новый тест
func (h *TestHandler) CreateTest(c *gin.Context) {
	var req CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test, err := h.testService.CreateTest(req.TopicID, req.Title)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTestResponse(test))
}

// GetTestsByTopic возвращает тесты темы
// GET /api/topics/:id/tests
func (h *TestHandler) GetTestsByTopic(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)

	tests, err := h.testService.GetTestsByTopic(topicID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTestListResponse(tests))
}

// CreateQuestionRequest представляет запрос на добавление вопроса
type CreateQuestionRequest struct {
	QuestionText  string   `json:"question_text" binding:"required,min=1,max=1000"`
	Options       []string `json:"options" binding:"required,min=1"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
}

// CreateQuestion добавляет вопрос к тесту
func (h *TestHandler) CreateQuestion(c *gin.Context) {
	testID := c.MustGet("testID").(uint)

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.testService.CreateQuestion(c.Request.Context(), testID, req.QuestionText, req.Options, req.CorrectAnswer)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuestionResponse(question))
}

// GetQuestions возвращает вопросы теста (без правильных ответов)
func (h *TestHandler) GetQuestions(c *gin.Context) {
	testID := c.MustGet("testID").(uint)

	questions, err := h.testService.GetQuestionsByTest(c.Request.Context(), testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions))
}

// SubmitTestRequest представляет присланные ответы на тест
type SubmitTestRequest struct {
	TopicID uint             `json:"topic_id" binding:"required"`
	Answers []service.Answer `json:"answers" binding:"required"`
}

// SubmitTest принимает ответы пользователя и возвращает результат проверки
// POST /api/tests/:id/submit
func (h *TestHandler) SubmitTest(c *gin.Context) {
	testID := c.MustGet("testID").(uint)
	userID := c.MustGet("user_id").(uint)

	var req SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.testService.SubmitTest(c.Request.Context(), testID, userID, service.TestSubmission{
		TopicID: req.TopicID,
		Answers: req.Answers,
	})
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTestResultResponse(result))
}

// GetMyFeedback возвращает сохраненную обратную связь текущего пользователя по тесту
func (h *TestHandler) GetMyFeedback(c *gin.Context) {
	testID := c.MustGet("testID").(uint)
	userID := c.MustGet("user_id").(uint)

	feedbacks, err := h.testService.GetUserFeedback(userID, testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFeedbackListResponse(feedbacks))
}

// ExportTestResponses экспортирует ответы на тест в CSV или Excel формате
// GET /api/tests/:id/responses/export?format=csv|xlsx
func (h *TestHandler) ExportTestResponses(c *gin.Context) {
	testID := c.MustGet("testID").(uint)
	format := c.DefaultQuery("format", "csv")

	responses, err := h.testService.GetTestResponsesAll(testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	// Вопросы берутся напрямую из базы: в кешированной выдаче
	// правильные ответы отсутствуют
	questions, err := h.testService.GetQuestionsForExport(testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}
	questionByID := make(map[uint]*entity.Question, len(questions))
	for i := range questions {
		questionByID[questions[i].ID] = &questions[i]
	}

	filename := fmt.Sprintf("test_%d_responses_%s", testID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, responses, questionByID, filename)
	default:
		h.exportCSV(c, responses, questionByID, filename)
	}
}

// isResponseCorrect сверяет ответ с вопросом из набора вопросов теста
func isResponseCorrect(r *entity.UserResponse, questionByID map[uint]*entity.Question) string {
	if q, ok := questionByID[r.QuestionID]; ok && q.IsCorrectAnswer(r.SelectedAnswer) {
		return "да"
	}
	return "нет"
}

// exportCSV экспортирует ответы в CSV с правильным экранированием спецсимволов
func (h *TestHandler) exportCSV(c *gin.Context, responses []entity.UserResponse, questionByID map[uint]*entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Пользователь", "Вопрос", "Выбранный ответ", "Верно", "Время ответа"})

	for i := range responses {
		r := &responses[i]
		writer.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.UserID), 10),
			strconv.FormatUint(uint64(r.QuestionID), 10),
			sanitizeForExcel(r.SelectedAnswer),
			isResponseCorrect(r, questionByID),
			r.SubmittedAt.Format(time.RFC3339),
		})
	}
}

// exportXLSX экспортирует ответы в Excel с использованием StreamWriter
func (h *TestHandler) exportXLSX(c *gin.Context, responses []entity.UserResponse, questionByID map[uint]*entity.Question, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ответы"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[TestHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID", "Пользователь", "Вопрос", "Выбранный ответ", "Верно", "Время ответа"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[TestHandler] Ошибка записи заголовков: %v", err)
	}

	for i := range responses {
		r := &responses[i]
		rowNum := i + 2 // Первая строка занята заголовками
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{r.ID, r.UserID, r.QuestionID, sanitizeForExcel(r.SelectedAnswer), isResponseCorrect(r, questionByID), r.SubmittedAt.Format(time.RFC3339)}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[TestHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[TestHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[TestHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// handleTestError преобразует ошибки сервисов в HTTP-статусы
func (h *TestHandler) handleTestError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrExternalService) {
		log.Printf("ERROR: External service error in TestHandler: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Feedback service unavailable"})
	} else {
		log.Printf("ERROR: Internal server error in TestHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
