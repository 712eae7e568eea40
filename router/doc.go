// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires handlers to routes using Go 1.22+ method patterns.

	handler, err := router.NewRouter(db, cfg)

# Routes

Public:

	GET  /health    liveness (503 when the database is unreachable)
	GET  /metrics   Prometheus metrics
	GET  /login     login form data
	POST /login     sign in
	POST /logout    sign out

Session required (writes also require ADMIN):

	GET|POST /team
	GET|POST /strategy
	GET|POST /project
	GET|POST /livelihood
	GET|POST /workshop
	GET      /

POST /project also accepts the login form without a session.

Every route except /health and /metrics is logged and counted. Panics
anywhere in the tree become the generic 500 response.
*/
package router
