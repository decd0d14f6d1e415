package auth

import (
	"context"
	"testing"

	"voltstore/internal/domain/entity"
	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stubUserRepo serves a single fixed user.
type stubUserRepo struct {
	user *entity.User
}

func (r *stubUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }
func (r *stubUserRepo) ExistsByEmail(context.Context, string) (bool, error)    { return false, nil }
func (r *stubUserRepo) Count(context.Context) (int64, error)                   { return 0, nil }
func (r *stubUserRepo) Create(context.Context, *entity.User) error             { return nil }
func (r *stubUserRepo) Update(context.Context, *entity.User) error             { return nil }

func newStubRepoWithUser(t *testing.T, password string) *stubUserRepo {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &stubUserRepo{user: &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
	}}
}

func TestAuthenticate_Succeeds(t *testing.T) {
	repo := newStubRepoWithUser(t, "Str0ng!pass")
	authenticator := NewCredentialAuthenticator(repo, NewBcryptHasherWithCost(bcrypt.MinCost))

	assert.NoError(t, authenticator.Authenticate(context.Background(), "alice", "Str0ng!pass"))
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestAuthenticate_NormalizesFailures(t *testing.T) {
	repo := newStubRepoWithUser(t, "Str0ng!pass")
	authenticator := NewCredentialAuthenticator(repo, NewBcryptHasherWithCost(bcrypt.MinCost))

	wrongPassword := authenticator.Authenticate(context.Background(), "alice", "Wr0ng!pass")
	unknownUser := authenticator.Authenticate(context.Background(), "mallory", "Str0ng!pass")

	assert.True(t, errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownUser, domainerrors.ErrInvalidCredentials))
}
