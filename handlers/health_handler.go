package handlers

import (
	"context"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	status, database := http.StatusOK, "ok"
	if err := h.db.PingContext(ctx); err != nil {
		status, database = http.StatusServiceUnavailable, "unreachable"
	}

	if err := writeJSON(w, status, jsonResponse{"status": http.StatusText(status), "database": database}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
