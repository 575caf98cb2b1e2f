package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/learning-platform/internal/handler/dto"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
	"github.com/yourusername/learning-platform/internal/service"
)

// maxPDFSize - максимальный размер загружаемого PDF (50 МБ)
const maxPDFSize = 50 << 20

// TopicHandler обрабатывает запросы, связанные с темами
type TopicHandler struct {
	topicService *service.TopicService
}

// NewTopicHandler создает новый обработчик тем
func NewTopicHandler(topicService *service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// CreateTopicRequest представляет запрос на создание темы
type CreateTopicRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// CreateTopic создает новую тему
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.topicService.CreateTopic(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTopicResponse(topic))
}

// GetTopics возвращает список всех тем
func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.topicService.GetTopics(c.Request.Context())
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTopicListResponse(topics))
}

// GetTopic возвращает тему с материалами
func (h *TopicHandler) GetTopic(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)

	topic, err := h.topicService.GetTopicWithItems(c.Request.Context(), topicID)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTopicWithItemsResponse(topic))
}

// UpdateTopic обновляет название и описание темы
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)

	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.topicService.UpdateTopic(c.Request.Context(), topicID, req.Title, req.Description)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTopicResponse(topic))
}

// DeleteTopic удаляет тему вместе с материалами
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)

	if err := h.topicService.DeleteTopic(c.Request.Context(), topicID); err != nil {
		h.handleTopicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Topic deleted"})
}

// AddItemRequest представляет запрос на добавление материала к теме
type AddItemRequest struct {
	Type    string `json:"type" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AddItem добавляет материал к теме
func (h *TopicHandler) AddItem(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.topicService.AddItem(c.Request.Context(), topicID, req.Type, req.Content)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTopicItemResponse(item))
}

// UploadPDF принимает PDF-файл и добавляет его страницы материалами темы
// POST /api/topics/:id/pdf (multipart/form-data, поле "file")
func (h *TopicHandler) UploadPDF(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PDF file is required in field 'file'"})
		return
	}
	if fileHeader.Size > maxPDFSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "PDF file is too large"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only PDF files are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[TopicHandler] Ошибка открытия загруженного файла: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[TopicHandler] Ошибка чтения загруженного файла: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	items, err := h.topicService.UploadPDF(c.Request.Context(), topicID, pdfData)
	if err != nil {
		h.handleTopicError(c, err)
		return
	}

	responses := make([]*dto.TopicItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, dto.NewTopicItemResponse(&items[i]))
	}
	c.JSON(http.StatusCreated, responses)
}

// handleTopicError преобразует ошибки сервисов в HTTP-статусы
func (h *TopicHandler) handleTopicError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrExternalService) {
		log.Printf("ERROR: External service error in TopicHandler: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "External service unavailable"})
	} else {
		log.Printf("ERROR: Internal server error in TopicHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
