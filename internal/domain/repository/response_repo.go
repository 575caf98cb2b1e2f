package repository

import (
	"github.com/yourusername/learning-platform/internal/domain/entity"
)

// ResponseRepository определяет методы для работы с ответами пользователей
type ResponseRepository interface {
	Create(response *entity.UserResponse) error
	// GetByTestID возвращает все ответы на вопросы указанного теста
	// вместе с данными вопросов (для экспорта результатов)
	GetByTestID(testID uint) ([]entity.UserResponse, error)
	GetByUserAndTest(userID, testID uint) ([]entity.UserResponse, error)
}
