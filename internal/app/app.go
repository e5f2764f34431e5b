package app

import (
	"net/http"
	"passport/internal/app/deps"
	"passport/internal/app/services"
	"passport/internal/http/handlers/auth"
	confirmpasswordreset "passport/internal/http/handlers/auth/confirm_password_reset"
	login "passport/internal/http/handlers/auth/log_in"
	requestpasswordreset "passport/internal/http/handlers/auth/request_password_reset"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(middleware.Timeout(deps.Config.RequestTimeout))

	router.With(auth.SetCurrentUserToContext(deps.UserRepository, deps.PasswordHasher)).
		Method(http.MethodGet, "/login", login.New(s.IssueSession))
	router.Method(http.MethodGet, "/password_request", requestpasswordreset.New(s.RequestPasswordReset, isTestMode))
	router.Method(http.MethodPost, "/password_reset", confirmpasswordreset.New(s.ConfirmPasswordReset))

	return &http.Server{
		Handler:           router,
		Addr:              deps.Config.Address,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
