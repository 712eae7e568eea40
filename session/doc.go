// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session issues and verifies the ME_session cookie.

The cookie carries a single user id, signed and timestamped with
gorilla/securecookie. Decoding rejects cookies that were tampered with or are
older than MaxAge (30 days).

	m, err := session.NewManager(session.Config{Secret: cfg.SessionSecret, Secure: cfg.IsProduction()})

	cookie, err := m.Create(staff.ID)
	http.SetCookie(w, cookie)

	userID, ok := m.UserID(r)
	user, err := m.CurrentUser(ctx, r, st)

	http.SetCookie(w, m.Destroy())

RequireUser returns an *UnauthenticatedError carrying the requested path;
its LoginURL is where the caller should redirect.
*/
package session
