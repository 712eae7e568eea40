// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the M&E tracker.

# Handler Types

Each handler is a struct with store and validator dependencies:

  - TeamHandler: teams
  - StrategyHandler: strategic objectives
  - ProjectHandler: projects
  - LivelihoodHandler: livelihood grants
  - WorkshopHandler: workshops
  - AuthHandler: login, logout and the landing page

Handlers are created via constructor functions:

	teamHandler := handlers.NewTeamHandler(st, validator)

# Routes

Every entity route has a list and a create operation:

	GET  /team  → List (teams and the current user)
	POST /team  → Create (ADMIN only)

Handlers expect the session gate (middleware.RequireSession) to have
resolved the current user. List responses carry the reference data the
create form needs, e.g. GET /project also returns objectives and teams.

# Write Path

Creates run the same steps in order:

 1. role check: non-admins get 403 {"error":"Not authorized"}
 2. form parse and coercion
 3. validation: 400 {"errors":[{path, message}], "fieldErrors":{...}}
 4. insert: 200 with the created record

Nothing reaches the store unless every earlier step passed. Store errors
are logged and answered with the generic 500 body.

# Login

POST /login verifies the email and password and sets the session cookie,
then redirects to redirectTo when it is a local path. Unknown emails and
wrong passwords get the same 400 response. POST /project also accepts the
login form; LoginOrCreate dispatches on the presence of email and password.
*/
package handlers
