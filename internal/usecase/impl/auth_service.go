// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"voltstore/internal/domain/entity"
	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/domain/repository"
	"voltstore/internal/domain/service"
	"voltstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// placeholderToken is returned in every auth result.
// TODO: issue a real signed token here once the token format is decided.
const placeholderToken = "dummy-token"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	policy        *service.PasswordPolicy
	hasher        service.PasswordHasher
	authenticator service.CredentialAuthenticator
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	Policy        *service.PasswordPolicy
	Hasher        service.PasswordHasher
	Authenticator service.CredentialAuthenticator
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		policy:        params.Policy,
		hasher:        params.Hasher,
		authenticator: params.Authenticator,
		logger:        params.Logger,
	}
}

// Register orchestrates the complete registration flow: uniqueness checks,
// password-policy validation, hashing, persistence and the first-user admin
// bootstrap. Everything runs in one database transaction so two concurrent
// registrations for the same username cannot both pass the existence check
// and both insert; the unique constraints on users.username and users.email
// are the ultimate arbiter either way.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		taken, err := userRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username existence")
		}
		if taken {
			return domainerrors.ErrUsernameTaken.WrapMessage("registration failed")
		}

		taken, err = userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if taken {
			return domainerrors.ErrEmailTaken.WrapMessage("registration failed")
		}

		if err := srv.policy.Validate(input.Password); err != nil {
			return err
		}

		// The plaintext lives only on the stack from here on; it is never
		// persisted or logged.
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Roles:        entity.Roles{entity.RoleCustomer},
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// First-user bootstrap: if this insert made the store's very first
		// account, upgrade that same account to ADMIN. The count runs inside
		// the registration transaction, so the rule fires exactly once.
		count, err := userRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count users")
		}
		if count == 1 {
			newUser.Roles = entity.Roles{entity.RoleAdmin}
			if err := userRepo.Update(ctx, newUser); err != nil {
				return errors.WithStack(err)
			}
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", registeredUser.ID), slog.Any("roles", registeredUser.Roles))

	return &usecase.AuthOutput{Token: placeholderToken, User: registeredUser}, nil
}

// Login delegates credential verification to the authenticator and then loads
// the full user record. The authenticator collapses unknown-username and
// wrong-password into the one InvalidCredentials error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting login", slog.String("username", input.Username))

	if err := srv.authenticator.Authenticate(ctx, input.Username, input.Password); err != nil {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(err, "login failed")
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Verification just succeeded against this username, so the record
		// must exist. Treat its absence as a broken invariant.
		srv.logger.Error("User record missing after successful authentication", slog.String("username", input.Username))

		return nil, domainerrors.ErrUserVanished.WrapMessage("login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user after authentication")
	}

	srv.logger.Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: placeholderToken, User: user}, nil
}
