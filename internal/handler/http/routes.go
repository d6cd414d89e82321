package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		AllowCredentials: true,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/api", h.apiIndex)
		r.Get("/health", h.health)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		// the camera loop posts frames before the user signs in, so the
		// prediction proxy stays open like the upstream ML service itself
		r.Post("/api/predict", h.predict)
	})

	// routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)

		r.Post("/api/sign/detect", h.detectSign)
		r.Get("/api/sign/history", h.signHistory)
		r.Delete("/api/sign/history/{id}", h.deleteSignDetection)

		r.Post("/api/voice/transcribe", h.transcribe)
		r.Get("/api/voice/history", h.voiceHistory)
		r.Delete("/api/voice/history/{id}", h.deleteTranscript)

		r.Post("/api/text/messages", h.saveMessage)
		r.Get("/api/text/messages", h.textHistory)
		r.Delete("/api/text/messages/{id}", h.deleteMessage)

		r.Get("/api/preferences", h.getPreferences)
		r.Put("/api/preferences", h.updatePreferences)

		r.Post("/api/translate", h.translate)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, msgRouteNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		// an unsupported method on a known path looks the same as an
		// unknown path, so route existence is not leaked
		writeError(w, msgRouteNotFound, http.StatusNotFound)
	})

	return router
}
