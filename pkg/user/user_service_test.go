package user

import (
	"context"
	"testing"

	"Savora-Backend/domain"
	"Savora-Backend/entities"
	"Savora-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entities.User{},
		byID:    map[string]*entities.User{},
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *entities.User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	resp, err := svc.Register(ctx, domain.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", resp.Email)

	// Stored password is hashed, never the plaintext.
	stored := repo.byEmail["budi@example.com"]
	assert.NotEqual(t, "supersecret", stored.Password)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, domain.RegisterRequest{
			Name:     "Budi Again",
			Email:    "budi@example.com",
			Password: "supersecret",
		})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	})

	t.Run("login with the right password", func(t *testing.T) {
		loginResp, err := svc.Login(ctx, domain.LoginRequest{
			Email:    "budi@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, loginResp.Token)
		assert.Equal(t, domain.RoleUser, loginResp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{
			Email:    "budi@example.com",
			Password: "not-it",
		})
		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	})
}

func TestIssueAPIKey_AdminOnly(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	admin := &entities.User{ID: uuid.New(), Email: "admin@example.com", Role: domain.RoleAdmin}
	member := &entities.User{ID: uuid.New(), Email: "member@example.com", Role: domain.RoleUser}
	require.NoError(t, repo.CreateUser(ctx, admin))
	require.NoError(t, repo.CreateUser(ctx, member))

	resp, err := svc.IssueAPIKey(ctx, domain.IssueAPIKeyRequest{Label: "ci"}, admin.ID.String())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.APIKey)
	assert.Equal(t, "ci", resp.Label)
	assert.False(t, resp.ExpiresAt.IsZero())

	_, err = svc.IssueAPIKey(ctx, domain.IssueAPIKeyRequest{Label: "ci"}, member.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}
