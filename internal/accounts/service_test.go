package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tasktrack/internal/apperr"
	"tasktrack/internal/auth"
	"tasktrack/internal/models"
)

// fakeUserStore is an in-memory UserStore mirroring the database's
// uniqueness behavior.
type fakeUserStore struct {
	nextID int
	byID   map[int]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, byID: map[int]models.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, nu models.NewUser) (models.User, error) {
	for _, u := range f.byID {
		if u.Login == nu.Login || u.Email == nu.Email {
			return models.User{}, apperr.ErrConflict
		}
	}
	user := models.User{
		ID:           f.nextID,
		Login:        nu.Login,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		FirstName:    nu.FirstName,
		LastName:     nu.LastName,
		CreatedAt:    nu.CreatedAt,
	}
	f.byID[f.nextID] = user
	f.nextID++
	return user, nil
}

func (f *fakeUserStore) UserByID(_ context.Context, id int) (models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, apperr.ErrNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (f *fakeUserStore) UserByLogin(_ context.Context, login string) (models.User, error) {
	for _, u := range f.byID {
		if u.Login == login {
			return u, nil
		}
	}
	return models.User{}, apperr.ErrNotFound
}

func (f *fakeUserStore) ListUsers(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.byID))
	for id := 1; id < f.nextID; id++ {
		if u, ok := f.byID[id]; ok {
			u.PasswordHash = ""
			users = append(users, u)
		}
	}
	return users, nil
}

func newTestService(t *testing.T) (*Service, *fakeUserStore) {
	t.Helper()
	tokens, err := auth.NewTokens("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	users := newFakeUserStore()
	return NewService(users, auth.NewPasswords(bcrypt.MinCost), tokens), users
}

func TestRegisterHashesPasswordAndStampsDate(t *testing.T) {
	svc, users := newTestService(t)
	fixed := time.Date(2024, 3, 17, 15, 30, 0, 0, time.UTC)
	svc.clock = func() time.Time { return fixed }

	user, err := svc.Register(context.Background(), RegisterInput{
		Login: "alice", Email: "alice@x.com", Password: "pw1",
		FirstName: "Alice", LastName: "Anderson",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Login)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "2024-03-17", user.CreatedAt.String())

	stored := users.byID[user.ID]
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
}

func TestRegisterDuplicateLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{Login: "alice", Email: "alice@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Login: "alice", Email: "other@x.com", Password: "pw2"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// First registration is unaffected.
	got, err := svc.GetUser(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", got.Email)
}

func TestLoginScenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Login: "alice", Email: "alice@x.com", Password: "pw1"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)

	tokens, err := auth.NewTokens("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	subject, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, apperr.ErrBadPassword)
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "pw1")
	assert.ErrorIs(t, err, apperr.ErrUnknownLogin)
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestListUsers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, in := range []RegisterInput{
		{Login: "alice", Email: "alice@x.com", Password: "pw1"},
		{Login: "bob", Email: "bob@x.com", Password: "pw2"},
	} {
		_, err := svc.Register(ctx, in)
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
