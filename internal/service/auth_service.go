package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/domain/repository"
	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
	"github.com/yourusername/learning-platform/pkg/auth"
)

// tokenBlacklistTTL - запасное время хранения токена в черном списке,
// если срок действия токена определить не удалось.
const tokenBlacklistTTL = 30 * time.Minute

// blacklistKey строит ключ черного списка для идентификатора токена
func blacklistKey(jti string) string {
	return "blacklist:" + jti
}

// AuthService предоставляет методы регистрации и входа
type AuthService struct {
	userRepo   repository.UserRepository
	cacheRepo  repository.CacheRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, cacheRepo repository.CacheRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
	}
}

// Register создает нового пользователя с ролью user.
// Пароль хешируется в BeforeSave-хуке сущности.
func (s *AuthService) Register(email, password string) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with email %s already exists", apperrors.ErrConflict, email)
	}

	user := &entity.User{
		Email:    email,
		Password: password,
		Role:     entity.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AuthService] Зарегистрирован пользователь %d (%s)", user.ID, user.Email)
	return user, nil
}

// Login проверяет учетные данные и возвращает токен доступа.
// Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.CheckPassword(password) {
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// Logout помещает идентификатор токена в черный список на остаток его срока действия
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		return apperrors.ErrUnauthorized
	}

	ttl := tokenBlacklistTTL
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}

	if err := s.cacheRepo.Set(ctx, blacklistKey(claims.ID), "1", ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted проверяет, находится ли идентификатор токена в черном списке
func (s *AuthService) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	return s.cacheRepo.Exists(ctx, blacklistKey(jti))
}
