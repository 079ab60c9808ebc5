package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/nuestra-historia/backend/internal/config"
	"github.com/nuestra-historia/backend/internal/transport/middleware"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger *slog.Logger
	CORS   config.CORSConfig

	Auth     *AuthHandler
	Memories *MemoryHandler
	Timeline *TimelineHandler
	Songs    *SongHandler
	Messages *MessageHandler
	Health   *HealthHandler

	RequireAuth  middleware.Middleware
	LoginLimiter middleware.Middleware

	// UploadsDir, when non-empty, is served statically under /uploads.
	UploadsDir string
	Version    string
}

// NewRouter builds the HTTP routing table. Everything under /api except the
// auth endpoints requires a valid session token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Logger(deps.Logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Ruta no encontrada")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Ruta no encontrada")
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "❤️ API de Nuestra Historia funcionando correctamente",
			"version": deps.Version,
		})
	})

	r.Get("/health", deps.Health.Health)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/live", deps.Health.Live)

	if deps.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			login := http.HandlerFunc(deps.Auth.Login)
			if deps.LoginLimiter != nil {
				r.Method(http.MethodPost, "/login", deps.LoginLimiter(login))
			} else {
				r.Post("/login", login)
			}
		})

		r.Group(func(r chi.Router) {
			r.Use(deps.RequireAuth)

			r.Route("/timeline", func(r chi.Router) {
				r.Get("/", deps.Timeline.List)
				r.Post("/", deps.Timeline.Create)
				r.Put("/{id}", deps.Timeline.Update)
				r.Delete("/{id}", deps.Timeline.Delete)
			})

			r.Route("/memories", func(r chi.Router) {
				r.Get("/", deps.Memories.List)
				r.Post("/", deps.Memories.Create)
				r.Put("/{id}", deps.Memories.Update)
				r.Post("/{id}/like", deps.Memories.ToggleLike)
				r.Delete("/{id}", deps.Memories.Delete)
			})

			r.Route("/songs", func(r chi.Router) {
				r.Get("/", deps.Songs.List)
				r.Post("/", deps.Songs.Create)
				r.Put("/{id}", deps.Songs.Update)
				r.Delete("/{id}", deps.Songs.Delete)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", deps.Messages.List)
				r.Post("/", deps.Messages.Create)
				r.Delete("/{id}", deps.Messages.Delete)
			})
		})
	})

	return r
}
