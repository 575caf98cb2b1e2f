package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, неверный пароль).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у пользователя недостаточно прав для действия.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния (например, email уже зарегистрирован).
	ErrConflict = errors.New("resource state conflict")

	// ErrExternalService используется, когда внешний сервис (генерация текста,
	// объектное хранилище) вернул ошибку. Такие ошибки не ретраятся внутри сервисов.
	ErrExternalService = errors.New("external service failure")
)
