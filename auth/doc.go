// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential checks, staff ID generation and the role
check guarding writes.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword("s3cret")
	ok := auth.CheckPassword(hash, "s3cret")

Authenticate looks staff up by email and verifies the password. An unknown
email is still compared against a dummy hash, and both failures return the
same ErrInvalidCredentials.

# Authorization

Every create operation requires the ADMIN role:

	if !auth.IsAuthorized(user, auth.CreateTeam) {
		// 403
	}

Read actions only require a resolved user.

# ID Generation

Staff IDs are random UUIDs:

	id := auth.GenerateID()
*/
package auth
