package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/storefront-bot/internal/domain"
	"go.uber.org/zap"
)

// GatewayHandler выдает сессионные токены шлюзу чат-бота.
// Шлюз предъявляет общий ключ и ID пользователя чата, от имени которого
// будет ходить в API
type GatewayHandler struct {
	gatewayService domain.GatewayService
	logger         *zap.Logger
}

// NewGatewayHandler создает новый GatewayHandler
func NewGatewayHandler(gatewayService domain.GatewayService, logger *zap.Logger) *GatewayHandler {
	return &GatewayHandler{
		gatewayService: gatewayService,
		logger:         logger,
	}
}

type tokenRequest struct {
	GatewayKey string `json:"gateway_key"`
	UserID     int64  `json:"user_id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken выдает JWT для пользователя чата по ключу шлюза
func (h *GatewayHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if req.UserID == 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.gatewayService.IssueToken(r.Context(), req.GatewayKey, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorizedGateway) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		h.logger.Error("failed to issue token", zap.Error(err), zap.Int64("user_id", req.UserID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokenResponse{Token: token}); err != nil {
		h.logger.Error("failed to encode token response", zap.Error(err))
	}
}
