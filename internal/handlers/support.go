package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/storefront-bot/internal/domain"
	"go.uber.org/zap"
)

// SupportHandler обслуживает обращения пользователей: предложения и FAQ
type SupportHandler struct {
	messagingService domain.MessagingService
	settingsService  domain.SettingsService
	logger           *zap.Logger
}

func NewSupportHandler(
	messagingService domain.MessagingService,
	settingsService domain.SettingsService,
	logger *zap.Logger,
) *SupportHandler {
	return &SupportHandler{
		messagingService: messagingService,
		settingsService:  settingsService,
		logger:           logger,
	}
}

type suggestRequest struct {
	Text string `json:"text"`
}

type suggestResponse struct {
	Reply string `json:"reply"`
}

// Suggest пересылает предложение пользователя админу
func (h *SupportHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	reply, err := h.messagingService.Suggest(r.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to forward suggestion", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(suggestResponse{Reply: reply}); err != nil {
		h.logger.Error("failed to encode suggest response", zap.Error(err))
	}
}

type faqResponse struct {
	Text           string `json:"text"`
	SupportContact string `json:"support_contact"`
}

// FAQ возвращает справочный текст и контакт поддержки из настроек
func (h *SupportHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		h.logger.Error("failed to get settings for faq", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := faqResponse{Text: settings.FAQText, SupportContact: settings.SupportContact}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode faq response", zap.Error(err))
	}
}
