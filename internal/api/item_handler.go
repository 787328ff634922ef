package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/menuwise/menu-intelligence-api/internal/api/shared"
	"github.com/menuwise/menu-intelligence-api/internal/domain"
)

// GenerateItemRequest represents the request body for item-detail generation.
type GenerateItemRequest struct {
	ItemName     string `json:"item_name"               validate:"required"`
	ModelVersion string `json:"model_version,omitempty" validate:"omitempty,oneof=gpt-3.5-turbo gpt-4"`
}

// ItemDetailsResponse represents the response data for generated item details.
// Success is true for every result returned through this path; degraded
// results disclose themselves via the ModelUsed suffix instead.
type ItemDetailsResponse struct {
	Description      string `json:"description"`
	UpsellSuggestion string `json:"upsell_suggestion"`
	ModelUsed        string `json:"model_used"`
	Success          bool   `json:"success"`
}

// ItemDetailService is the orchestrator capability the handler depends on.
type ItemDetailService interface {
	GenerateItemDetails(ctx context.Context, itemName string, tier domain.ModelTier) (*domain.ItemDetails, error)
}

// ItemHandler handles item-detail generation HTTP requests.
type ItemHandler struct {
	service ItemDetailService
	logger  *slog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service ItemDetailService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemHandler{
		service: service,
		logger:  logger.With(slog.String("component", "item_handler")),
	}
}

// GenerateItemDetails handles POST /generate-item-details requests.
func (h *ItemHandler) GenerateItemDetails(w http.ResponseWriter, r *http.Request) {
	var req GenerateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Sanitization is the only gate between user text and the prompt.
	itemName, err := domain.SanitizeItemName(req.ItemName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	tier, err := domain.ParseModelTier(req.ModelVersion)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	h.logger.InfoContext(r.Context(), "generating item details",
		slog.String("item_name", itemName),
		slog.String("model", string(tier)))

	details, err := h.service.GenerateItemDetails(r.Context(), itemName, tier)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ItemDetailsResponse{
		Description:      details.Description,
		UpsellSuggestion: details.UpsellSuggestion,
		ModelUsed:        details.ModelUsed,
		Success:          true,
	})
}
