package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/domain/repository"
	"github.com/yourusername/learning-platform/internal/pdf"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
	"github.com/yourusername/learning-platform/internal/storage"
)

const (
	// topicsListCacheKey - ключ кеша списка всех тем
	topicsListCacheKey = "topics_list"

	// topicCacheTTL - время жизни кеша тем
	topicCacheTTL = time.Hour
)

// topicCacheKey строит ключ кеша для темы с материалами
func topicCacheKey(topicID uint) string {
	return fmt.Sprintf("topic:%d", topicID)
}

// TopicWithItems объединяет тему и ее материалы для выдачи клиенту
type TopicWithItems struct {
	entity.Topic
	Items []entity.TopicItem `json:"items"`
}

// TopicService предоставляет методы для работы с темами и их материалами
type TopicService struct {
	topicRepo     repository.TopicRepository
	cacheRepo     repository.CacheRepository
	objectStorage storage.ObjectStorage
	renderer      pdf.Renderer
}

// NewTopicService создает новый сервис тем
func NewTopicService(
	topicRepo repository.TopicRepository,
	cacheRepo repository.CacheRepository,
	objectStorage storage.ObjectStorage,
	renderer pdf.Renderer,
) *TopicService {
	return &TopicService{
		topicRepo:     topicRepo,
		cacheRepo:     cacheRepo,
		objectStorage: objectStorage,
		renderer:      renderer,
	}
}

// CreateTopic создает новую тему и сбрасывает кеш списка тем
func (s *TopicService) CreateTopic(ctx context.Context, title, description string) (*entity.Topic, error) {
	topic := &entity.Topic{
		Title:       title,
		Description: description,
	}
	if err := s.topicRepo.Create(topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	s.invalidateListCache(ctx)
	return topic, nil
}

// GetTopics возвращает список всех тем, используя кеш
func (s *TopicService) GetTopics(ctx context.Context) ([]entity.Topic, error) {
	var cached []entity.Topic
	err := s.cacheRepo.GetJSON(ctx, topicsListCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[TopicService] Ошибка чтения кеша списка тем: %v", err)
	}

	topics, err := s.topicRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, topicsListCacheKey, topics, topicCacheTTL); err != nil {
		log.Printf("[TopicService] Ошибка записи кеша списка тем: %v", err)
	}
	return topics, nil
}

// GetTopicWithItems возвращает тему с материалами, используя кеш
func (s *TopicService) GetTopicWithItems(ctx context.Context, topicID uint) (*TopicWithItems, error) {
	key := topicCacheKey(topicID)

	var cached TopicWithItems
	err := s.cacheRepo.GetJSON(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[TopicService] Ошибка чтения кеша темы %d: %v", topicID, err)
	}

	topic, err := s.topicRepo.GetByID(topicID)
	if err != nil {
		return nil, err
	}
	items, err := s.topicRepo.GetItemsByTopicID(topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for topic %d: %w", topicID, err)
	}

	result := &TopicWithItems{Topic: *topic, Items: items}
	if err := s.cacheRepo.SetJSON(ctx, key, result, topicCacheTTL); err != nil {
		log.Printf("[TopicService] Ошибка записи кеша темы %d: %v", topicID, err)
	}
	return result, nil
}

// UpdateTopic обновляет название и описание темы
func (s *TopicService) UpdateTopic(ctx context.Context, topicID uint, title, description string) (*entity.Topic, error) {
	topic, err := s.topicRepo.GetByID(topicID)
	if err != nil {
		return nil, err
	}

	topic.Title = title
	topic.Description = description
	if err := s.topicRepo.Update(topic); err != nil {
		return nil, fmt.Errorf("failed to update topic %d: %w", topicID, err)
	}

	s.invalidateTopicCache(ctx, topicID)
	return topic, nil
}

// DeleteTopic удаляет тему вместе с материалами
func (s *TopicService) DeleteTopic(ctx context.Context, topicID uint) error {
	if err := s.topicRepo.Delete(topicID); err != nil {
		return err
	}
	s.invalidateTopicCache(ctx, topicID)
	return nil
}

// AddItem добавляет материал к теме. Порядковый номер назначается
// следующим за максимальным существующим.
func (s *TopicService) AddItem(ctx context.Context, topicID uint, itemType, content string) (*entity.TopicItem, error) {
	if !entity.IsValidTopicItemType(itemType) {
		return nil, fmt.Errorf("%w: unknown topic item type %q", apperrors.ErrValidation, itemType)
	}
	if _, err := s.topicRepo.GetByID(topicID); err != nil {
		return nil, err
	}

	maxOrder, err := s.topicRepo.MaxItemOrder(topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get max item order for topic %d: %w", topicID, err)
	}

	item := &entity.TopicItem{
		TopicID: topicID,
		Type:    itemType,
		Content: content,
		Order:   maxOrder + 1,
	}
	if err := s.topicRepo.CreateItem(item); err != nil {
		return nil, fmt.Errorf("failed to create topic item: %w", err)
	}

	s.invalidateTopicCache(ctx, topicID)
	return item, nil
}

// UploadPDF принимает PDF-документ, рендерит каждую страницу в PNG,
// загружает изображения в хранилище и добавляет их материалами темы
// в порядке страниц. Возвращает созданные материалы.
func (s *TopicService) UploadPDF(ctx context.Context, topicID uint, pdfData []byte) ([]entity.TopicItem, error) {
	if _, err := s.topicRepo.GetByID(topicID); err != nil {
		return nil, err
	}

	pages, err := s.renderer.RenderPages(ctx, pdfData)
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf for topic %d: %w", topicID, err)
	}

	maxOrder, err := s.topicRepo.MaxItemOrder(topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get max item order for topic %d: %w", topicID, err)
	}

	items := make([]entity.TopicItem, 0, len(pages))
	for i, page := range pages {
		key := fmt.Sprintf("topics/%d/page_%d_%s.png", topicID, i+1, uuid.New().String())
		url, err := s.objectStorage.Upload(ctx, key, bytes.NewReader(page), int64(len(page)), "image/png")
		if err != nil {
			return nil, fmt.Errorf("failed to upload page %d: %w", i+1, err)
		}

		item := &entity.TopicItem{
			TopicID: topicID,
			Type:    entity.TopicItemImage,
			Content: url,
			Order:   maxOrder + i + 1,
		}
		if err := s.topicRepo.CreateItem(item); err != nil {
			return nil, fmt.Errorf("failed to create topic item for page %d: %w", i+1, err)
		}
		items = append(items, *item)
	}

	log.Printf("[TopicService] В тему %d загружен PDF: %d страниц", topicID, len(pages))
	s.invalidateTopicCache(ctx, topicID)
	return items, nil
}

// invalidateTopicCache сбрасывает кеш темы и списка тем
func (s *TopicService) invalidateTopicCache(ctx context.Context, topicID uint) {
	if err := s.cacheRepo.Delete(ctx, topicCacheKey(topicID)); err != nil {
		log.Printf("[TopicService] Ошибка сброса кеша темы %d: %v", topicID, err)
	}
	s.invalidateListCache(ctx)
}

// invalidateListCache сбрасывает кеш списка тем
func (s *TopicService) invalidateListCache(ctx context.Context) {
	if err := s.cacheRepo.Delete(ctx, topicsListCacheKey); err != nil {
		log.Printf("[TopicService] Ошибка сброса кеша списка тем: %v", err)
	}
}
