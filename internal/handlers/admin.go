package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler объединяет ручные операции админа: доставка заказов,
// корректировка балансов, настройки, статистика и рассылки
type AdminHandler struct {
	storeService     domain.StoreService
	balanceService   domain.BalanceService
	settingsService  domain.SettingsService
	statsService     domain.StatsService
	messagingService domain.MessagingService
	logger           *zap.Logger
}

func NewAdminHandler(
	storeService domain.StoreService,
	balanceService domain.BalanceService,
	settingsService domain.SettingsService,
	statsService domain.StatsService,
	messagingService domain.MessagingService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		storeService:     storeService,
		balanceService:   balanceService,
		settingsService:  settingsService,
		statsService:     statsService,
		messagingService: messagingService,
		logger:           logger,
	}
}

type deliverRequest struct {
	Payload string `json:"payload"`
}

// Deliver помечает заказ доставленным и пересылает покупателю данные заказа.
// Статус фиксируется до отправки: недоступность получателя не откатывает доставку
func (h *AdminHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req deliverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.storeService.Deliver(r.Context(), orderID, req.Payload)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrOrderCancelled) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrDeliveryUnreachable) {
			// Заказ уже помечен доставленным, недоставленный payload - забота админа
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			if err := json.NewEncoder(w).Encode(result); err != nil {
				h.logger.Error("failed to encode deliver response", zap.Error(err))
			}
			return
		}
		h.logger.Error("failed to deliver order", zap.Error(err), zap.Int64("order_id", orderID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode deliver response", zap.Error(err))
	}
}

type adjustBalanceRequest struct {
	UserID int64   `json:"user_id"`
	Delta  float64 `json:"delta"`
}

type adjustBalanceResponse struct {
	UserID  int64   `json:"user_id"`
	Balance float64 `json:"balance"`
}

// AdjustBalance вручную изменяет баланс пользователя (зачисление депозита
// после сверки или списание)
func (h *AdminHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req adjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	balance, err := h.balanceService.AdjustBalance(r.Context(), req.UserID, req.Delta)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to adjust balance", zap.Error(err), zap.Int64("user_id", req.UserID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adjustBalanceResponse{UserID: req.UserID, Balance: balance}); err != nil {
		h.logger.Error("failed to encode adjust response", zap.Error(err))
	}
}

func (h *AdminHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStatistics(r.Context())
	if err != nil {
		h.logger.Error("failed to get statistics", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("failed to encode statistics response", zap.Error(err))
	}
}

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		h.logger.Error("failed to get settings", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(settings); err != nil {
		h.logger.Error("failed to encode settings response", zap.Error(err))
	}
}

type updateSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (h *AdminHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req updateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err := h.settingsService.UpdateSetting(r.Context(), domain.SettingKey(req.Key), req.Value)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSettingKey) || errors.Is(err, domain.ErrInvalidSettingValue) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to update setting", zap.Error(err), zap.String("key", req.Key))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type broadcastRequest struct {
	Text string `json:"text"`
}

type broadcastResponse struct {
	Queued int `json:"queued"`
}

// Broadcast ставит рассылку в очередь и сразу отвечает количеством заданий.
// Сводка о результате придет админу отдельным сообщением
func (h *AdminHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	queued, err := h.messagingService.Broadcast(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to broadcast", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(broadcastResponse{Queued: queued}); err != nil {
		h.logger.Error("failed to encode broadcast response", zap.Error(err))
	}
}

type directMessageRequest struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

func (h *AdminHandler) DirectMessage(w http.ResponseWriter, r *http.Request) {
	var req directMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.messagingService.DirectMessage(r.Context(), req.UserID, req.Text); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to send direct message", zap.Error(err), zap.Int64("user_id", req.UserID))
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}
