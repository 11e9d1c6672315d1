package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spksaw/backend/internal/auth/token"
	"go.uber.org/zap"
)

// TokenCleaningHandler handles token cleaning requests
type TokenCleaningHandler struct {
	BaseHandler
	store token.RevocationStore
	now   func() time.Time
}

// NewTokenCleaningHandler creates a new token cleaning handler
func NewTokenCleaningHandler(store token.RevocationStore, logger *zap.Logger) *TokenCleaningHandler {
	return &TokenCleaningHandler{
		BaseHandler: BaseHandler{Logger: logger},
		store:       store,
		now:         time.Now,
	}
}

// RegisterRoutes registers token cleaning handler routes
func (h *TokenCleaningHandler) RegisterRoutes(r chi.Router) {
	r.Get("/tokens/clean", h.CleanTokens)
}

// CleanTokens handles GET /tokens/clean
// @Summary Clean revoked tokens
// @Description Removes revocation records of tokens that have already expired
// @Tags tokens
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} Response{data=map[string]int} "Token cleaning completed successfully"
// @Failure 401 {object} Response "API key tidak valid"
// @Failure 500 {object} Response "Internal server error"
// @Router /tokens/clean [get]
func (h *TokenCleaningHandler) CleanTokens(w http.ResponseWriter, r *http.Request) {
	purged, err := h.store.Purge(r.Context(), h.now())
	if err != nil {
		h.RespondServerError(w, r, "failed to purge revoked tokens", err)
		return
	}

	// 0 purged records is not an error
	h.Logger.Info("token cleaning completed successfully", zap.Int("purgedCount", purged))
	h.RespondSuccess(w, "Pembersihan token selesai", map[string]int{"purged": purged})
}
