package auth

import (
	"context"

	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/domain/repository"
	"voltstore/internal/domain/service"

	"github.com/pkg/errors"
)

// credentialAuthenticator verifies username/password pairs against the user
// store. Every mismatch — unknown username, wrong password — comes back as
// the one InvalidCredentials error, so responses cannot be used to probe
// which usernames exist.
type credentialAuthenticator struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
}

// NewCredentialAuthenticator is the constructor for credentialAuthenticator.
func NewCredentialAuthenticator(userRepo repository.UserRepository, hasher service.PasswordHasher) service.CredentialAuthenticator {
	return &credentialAuthenticator{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Authenticate loads the stored hash for the username and compares it with
// the candidate password.
func (a *credentialAuthenticator) Authenticate(ctx context.Context, username, password string) error {
	user, err := a.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
	}
	if err != nil {
		return errors.Wrap(err, "failed to load user for authentication")
	}

	if !a.hasher.Check(password, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
	}

	return nil
}
