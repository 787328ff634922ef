package api

import (
	"net/http"

	"github.com/menuwise/menu-intelligence-api/internal/api/shared"
)

// Version is the reported API version.
const Version = "1.0.0"

// LivenessResponse is the static payload for the root endpoint.
type LivenessResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse is the payload for the detailed health endpoint. It
// discloses whether a provider credential is configured, since that decides
// mock mode versus live generation.
type HealthResponse struct {
	Status        string `json:"status"`
	LLMConfigured bool   `json:"llm_configured"`
	RateLimiting  string `json:"rate_limiting"`
	Version       string `json:"version"`
}

// HealthHandler serves the liveness and health endpoints.
type HealthHandler struct {
	llmConfigured bool
}

// NewHealthHandler creates a HealthHandler reporting the given credential
// presence.
func NewHealthHandler(llmConfigured bool) *HealthHandler {
	return &HealthHandler{llmConfigured: llmConfigured}
}

// Liveness handles GET / requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, LivenessResponse{
		Message: "Menu Intelligence API",
		Status:  "healthy",
	})
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:        "healthy",
		LLMConfigured: h.llmConfigured,
		RateLimiting:  "enabled",
		Version:       Version,
	})
}
