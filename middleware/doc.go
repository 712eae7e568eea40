// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request id is echoed in X-Request-ID.

# Session Gate

RequireSession resolves the signed session cookie to a staff record and
stores it in the request context:

	mux.HandleFunc("GET /team", middleware.RequireSession(sessions, st, h.List))

	user := middleware.UserFromContext(r.Context())

Requests without a session are redirected to /login?redirectTo=<path>. A
session naming an unknown user is destroyed first. A store failure while
loading the user is a 500 and leaves the session alone.

# Metrics

Metrics counts requests and observes latency per route on its own
Prometheus registry:

	m := middleware.NewMetrics()
	mux.HandleFunc("GET /team", m.Wrap("/team", handler))
	mux.Handle("GET /metrics", m.Handler())

# Panics

Recover maps a panic to the generic 500 body.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusForbidden, "Not authorized")
	middleware.InternalError(w, "failed to insert team", err)

InternalError logs the cause and always writes
{"error":"An unexpected error occurred"}.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
