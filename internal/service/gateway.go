package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/avc/storefront-bot/internal/utils/jwt"
	"github.com/avc/storefront-bot/internal/utils/secret"
	"go.uber.org/zap"
)

// GatewayService выдает сессионные токены шлюзу чат-бота
type GatewayService struct {
	verifier   *secret.Verifier
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewGatewayService создает новый GatewayService
func NewGatewayService(verifier *secret.Verifier, jwtManager *jwt.Manager, logger *zap.Logger) *GatewayService {
	return &GatewayService{
		verifier:   verifier,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// IssueToken проверяет ключ шлюза и выдает JWT для пользователя чата
func (s *GatewayService) IssueToken(_ context.Context, gatewayKey string, userID int64) (string, error) {
	if err := s.verifier.Verify(gatewayKey); err != nil {
		if errors.Is(err, secret.ErrMismatch) {
			s.logger.Warn("gateway key rejected", zap.Int64("user_id", userID))
			return "", domain.ErrUnauthorizedGateway
		}
		return "", fmt.Errorf("failed to verify gateway key: %w", err)
	}

	token, err := s.jwtManager.Generate(userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
