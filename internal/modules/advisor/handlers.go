package advisor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/investment-advisor/internal/domain"
)

// Handler handles advisor HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new advisor handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "advisor").Logger(),
	}
}

// HandleCreateReport runs the full advisory pipeline for a submitted profile
func (h *Handler) HandleCreateReport(w http.ResponseWriter, r *http.Request) {
	var profile domain.FinancialProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	report, err := h.service.BuildReport(r.Context(), &profile)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("Failed to build advisory report")
		h.writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// HandleGetDefaults returns pre-filled form values, seeded by the optional
// risk query parameter (Low|Medium|High, case-insensitive)
func (h *Handler) HandleGetDefaults(w http.ResponseWriter, r *http.Request) {
	defaults := h.service.Defaults(r.URL.Query().Get("risk"))
	h.writeJSON(w, http.StatusOK, defaults)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
