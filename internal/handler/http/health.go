package http

import (
	"net/http"
	"time"

	"github.com/signbridge/signbridge/internal/utils"
)

// indexResponse is the welcome envelope of GET /.
type indexResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// apiIndexResponse describes the API surface at GET /api.
type apiIndexResponse struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	Version            string   `json:"version"`
	AvailableResources []string `json:"available_resources"`
}

// healthResponse is the liveness envelope of GET /health.
type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, indexResponse{
		Success: true,
		Message: "Accessible Communication App API is running",
		Endpoints: map[string]string{
			"health": "/health",
			"api":    "/api",
		},
	}, http.StatusOK)
}

func (h *Handler) apiIndex(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, apiIndexResponse{
		Success: true,
		Message: "API Base Endpoint",
		Version: "1.0.0",
		AvailableResources: []string{
			"/auth",
			"/sign",
			"/voice",
			"/text",
			"/preferences",
			"/translate",
			"/predict",
		},
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
