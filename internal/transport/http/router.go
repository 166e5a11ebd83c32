package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nomzbank/auth-api/internal/application/verification"
	"github.com/nomzbank/auth-api/internal/config"
	"github.com/nomzbank/auth-api/internal/transport/http/handler"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	svc := verification.NewService(verification.ServiceDeps{
		CodeRepo: deps.CodeRepo,
		UserRepo: deps.UserRepo,
		Mailer:   deps.Mailer,
	})

	healthH := handler.NewHealthHandler()
	verifH := handler.NewVerificationHandler(svc)

	r.Get("/", healthH.Root)
	r.Post("/send-code", verifH.SendCode)
	r.Post("/verify-code", verifH.VerifyCode)
	r.Post("/check-email", verifH.CheckEmail)

	return r
}
