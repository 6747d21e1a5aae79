package wire

import (
	"net/http"

	"passify-auth/internal/adaptor"
	"passify-auth/internal/data/repository"
	"passify-auth/internal/usecase"
	"passify-auth/pkg/mailer"
	"passify-auth/pkg/middleware"
	"passify-auth/pkg/token"
	"passify-auth/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	signer := token.NewSigner(config.Reset.TokenSecret, config.Reset.TokenExpiry)
	mail := mailer.NewMailer(config.Email)

	service := usecase.NewService(repo, signer, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
