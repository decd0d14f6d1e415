package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"voltstore/internal/domain/entity"
	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/domain/service"
	"voltstore/internal/infra/auth"
	"voltstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthServiceForTest() (usecase.AuthUsecase, *memoryUserRepo) {
	userRepo := newMemoryUserRepo()
	txManager := &memoryTxManager{
		users:    userRepo,
		products: newMemoryProductRepo(),
		orders:   newMemoryOrderRepo(),
	}
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	svc := NewAuthService(AuthServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		Policy:        service.NewPasswordPolicy(),
		Hasher:        hasher,
		Authenticator: auth.NewCredentialAuthenticator(userRepo, hasher),
		Logger:        newTestLogger(),
	})

	return svc, userRepo
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
	}
}

func TestRegister_FirstUserBecomesAdmin(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	output, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	assert.Equal(t, "dummy-token", output.Token)
	assert.Equal(t, entity.Roles{entity.RoleAdmin}, output.User.Roles)
	assert.NotEmpty(t, output.User.ID)
}

func TestRegister_LaterUsersAreCustomers(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.Roles{entity.RoleCustomer}, output.User.Roles)
}

func TestRegister_RejectsDuplicateUsername(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()

	first, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "Str0ng!pass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	// The rejected attempt must not touch the existing record.
	existing, err := userRepo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, existing.ID)
	assert.Equal(t, "alice@example.com", existing.Email)
	assert.Equal(t, entity.Roles{entity.RoleAdmin}, existing.Roles)
	assert.Equal(t, first.User.PasswordHash, existing.PasswordHash)

	count, err := userRepo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestRegister_UsernameCheckedBeforeEmail(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	// Both taken: the username violation must win.
	_, err = svc.Register(context.Background(), validRegisterInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestRegister_RejectsWeakPassword(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()

	input := validRegisterInput()
	input.Password = "short"

	_, err := svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))

	// Nothing persisted.
	count, err := userRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegister_DoesNotStorePlaintextPassword(t *testing.T) {
	svc, userRepo := newAuthServiceForTest()

	input := validRegisterInput()
	output, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	stored, err := userRepo.FindByID(context.Background(), output.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, input.Password, stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestLogin_Succeeds(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "dummy-token", output.Token)
	assert.Equal(t, "alice", output.User.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "Wr0ng!pass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "nobody",
		Password: "Str0ng!pass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
