package dto

import (
	"time"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/service"
)

// TopicItemResponse представляет материал темы в формате для ответа клиенту
type TopicItemResponse struct {
	ID      uint   `json:"id"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// TopicResponse представляет тему в формате для ответа клиенту
type TopicResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []TopicItemResponse `json:"items,omitempty"`
}

// NewTopicResponse создает DTO для темы без материалов
func NewTopicResponse(topic *entity.Topic) *TopicResponse {
	return &TopicResponse{
		ID:          topic.ID,
		Title:       topic.Title,
		Description: topic.Description,
		CreatedAt:   topic.CreatedAt,
	}
}

// NewTopicListResponse создает список DTO тем
func NewTopicListResponse(topics []entity.Topic) []*TopicResponse {
	responses := make([]*TopicResponse, 0, len(topics))
	for i := range topics {
		responses = append(responses, NewTopicResponse(&topics[i]))
	}
	return responses
}

// NewTopicItemResponse создает DTO для материала темы
func NewTopicItemResponse(item *entity.TopicItem) *TopicItemResponse {
	return &TopicItemResponse{
		ID:      item.ID,
		Type:    item.Type,
		Content: item.Content,
		Order:   item.Order,
	}
}

// NewTopicWithItemsResponse создает DTO темы с материалами
func NewTopicWithItemsResponse(topic *service.TopicWithItems) *TopicResponse {
	resp := NewTopicResponse(&topic.Topic)
	resp.Items = make([]TopicItemResponse, 0, len(topic.Items))
	for i := range topic.Items {
		resp.Items = append(resp.Items, *NewTopicItemResponse(&topic.Items[i]))
	}
	return resp
}
