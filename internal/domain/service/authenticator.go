package service

import "context"

// CredentialAuthenticator verifies a username/password pair against the
// stored credentials. Implementations must normalize every mismatch —
// unknown username or wrong password — to the single InvalidCredentials
// domain error so callers cannot enumerate usernames.
type CredentialAuthenticator interface {
	// Authenticate returns nil when the plaintext password matches the
	// stored hash for the given username.
	Authenticate(ctx context.Context, username, password string) error
}
