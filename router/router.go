// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/me-tracker/cliparse"
	"github.com/danielhkuo/me-tracker/handlers"
	"github.com/danielhkuo/me-tracker/middleware"
	"github.com/danielhkuo/me-tracker/session"
	"github.com/danielhkuo/me-tracker/store"
	"github.com/danielhkuo/me-tracker/validation"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) (http.Handler, error) {
	sessions, err := session.NewManager(session.Config{
		Secret: cfg.SessionSecret,
		Secure: cfg.IsProduction(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	st := store.New(db)
	validator := validation.New()
	metrics := middleware.NewMetrics()

	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, sessions)
	teamHandler := handlers.NewTeamHandler(st, validator)
	strategyHandler := handlers.NewStrategyHandler(st, validator)
	projectHandler := handlers.NewProjectHandler(st, validator)
	livelihoodHandler := handlers.NewLivelihoodHandler(st, validator)
	workshopHandler := handlers.NewWorkshopHandler(st, validator)

	// public wraps a handler with logging and metrics
	public := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(metrics.Wrap(route, h))
	}
	// private additionally requires a valid session
	private := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return public(route, middleware.RequireSession(sessions, st, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Session
	mux.HandleFunc("GET /login", public("/login", authHandler.LoginPage))
	mux.HandleFunc("POST /login", public("/login", authHandler.Login))
	mux.HandleFunc("POST /logout", public("/logout", authHandler.Logout))

	// Records
	mux.HandleFunc("GET /team", private("/team", teamHandler.List))
	mux.HandleFunc("POST /team", private("/team", teamHandler.Create))

	mux.HandleFunc("GET /strategy", private("/strategy", strategyHandler.List))
	mux.HandleFunc("POST /strategy", private("/strategy", strategyHandler.Create))

	mux.HandleFunc("GET /project", private("/project", projectHandler.List))
	mux.HandleFunc("POST /project", public("/project", handlers.LoginOrCreate(
		authHandler.Login,
		middleware.RequireSession(sessions, st, projectHandler.Create),
	)))

	mux.HandleFunc("GET /livelihood", private("/livelihood", livelihoodHandler.List))
	mux.HandleFunc("POST /livelihood", private("/livelihood", livelihoodHandler.Create))

	mux.HandleFunc("GET /workshop", private("/workshop", workshopHandler.List))
	mux.HandleFunc("POST /workshop", private("/workshop", workshopHandler.Create))

	// Root endpoint
	mux.HandleFunc("GET /{$}", private("/", authHandler.Home))

	return middleware.Recover(mux), nil
}
