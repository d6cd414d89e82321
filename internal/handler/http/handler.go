package http

import (
	"net/http"
	"strings"

	"github.com/signbridge/signbridge/internal/config"
	"github.com/signbridge/signbridge/internal/logger"
	"github.com/signbridge/signbridge/internal/service"
	"github.com/signbridge/signbridge/internal/utils"
	"github.com/signbridge/signbridge/models"
)

type Handler struct {
	services *service.Services

	// corsOrigins is the list of browser origins allowed to call the API
	// with credentials, parsed once from the comma-separated config value.
	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		corsOrigins: splitOrigins(cfg.CORSOrigin),
		logger:      logger,
	}
}

// splitOrigins parses the comma-separated CORS origin list, dropping empty
// entries and surrounding whitespace.
func splitOrigins(corsOrigin string) []string {
	var origins []string
	for _, origin := range strings.Split(corsOrigin, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}

// writeError sends the uniform failure envelope with the given status.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: message}, statusCode)
}
