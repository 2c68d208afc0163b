package web

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Logger    logging.Logger
	Renderer  Renderer
	Sessions  *Sessions
	Users     UserService
	Files     FileService
	Vacancies VacancyService
	Cities    CityService
}

// NewRouter wires middleware and handlers. /vacancies pages need a logged
// in user; everything else is public.
func NewRouter(d Deps) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(d.Logger))
	router.Use(middleware.Recoverer)
	router.Use(d.Sessions.Middleware)

	NewIndexHandler(d.Renderer, d.Logger).RegisterRoutes(router)
	NewUserHandler(d.Users, d.Sessions, d.Renderer, d.Logger).RegisterRoutes(router)
	NewFileHandler(d.Files, d.Logger).RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(RequireAuth)
		NewVacancyHandler(d.Vacancies, d.Cities, d.Renderer, d.Logger).RegisterRoutes(r)
	})

	return router
}

func requestLogger(l logging.Logger) func(http.Handler) http.Handler {
	l = l.With("module", "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			l.Info(r.Context(), "request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
