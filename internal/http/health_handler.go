package http

import (
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type healthHandler struct {
	checker db.HealthChecker
}

func newHealthHandler(checker db.HealthChecker) *healthHandler {
	return &healthHandler{checker: checker}
}

// Root confirms the process is serving; it never touches the database.
func (h *healthHandler) Root(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, MessageResponse{Message: "Backend is running"})
}

func (h *healthHandler) Ready(w http.ResponseWriter, r *http.Request) error {
	ok, err := h.checker.IsHealthy(r.Context())
	if err != nil {
		return apperr.DatabaseUnavailableErr.WrapParent(fmt.Errorf("health check: %w", err))
	}
	if !ok {
		return apperr.DatabaseUnavailableErr
	}

	return writeJSON(w, http.StatusOK, MessageResponse{Message: "ready"})
}
