package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/afristyle/afristyle/internal/common"
	"github.com/afristyle/afristyle/internal/server/config"
	"github.com/afristyle/afristyle/internal/server/models"
)

type fakeUserRepo struct {
	CreateRet *models.User
	CreateErr error
	LastUser  *models.User

	ByEmailRet *models.User
	ByEmailErr error

	ByIDRet *models.User
	ByIDErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.LastUser = user
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	if f.CreateRet != nil {
		return f.CreateRet, nil
	}
	user.ID = "u1"
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.ByEmailRet, f.ByEmailErr
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.ByIDRet, f.ByIDErr
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Minute}
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, testConfig())

	user, token, err := svc.Register(context.Background(), "a@b.c", "pw123", "Ama")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)

	// stored hash verifies against the original password
	require.NoError(t, bcrypt.CompareHashAndPassword(repo.LastUser.PasswordHash, []byte("pw123")))

	userID, err := GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, testConfig())

	_, _, err := svc.Register(context.Background(), "", "pw", "")
	require.ErrorIs(t, err, ErrEmailRequired)

	_, _, err = svc.Register(context.Background(), "a@b.c", "", "")
	require.ErrorIs(t, err, ErrPasswordRequired)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{ByEmailRet: &models.User{ID: "u1", Email: "a@b.c", PasswordHash: hash}}
	svc := NewAuthService(repo, testConfig())

	user, token, err := svc.Login(context.Background(), "a@b.c", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{ByEmailRet: &models.User{ID: "u1", PasswordHash: hash}}
	svc := NewAuthService(repo, testConfig())

	_, _, err = svc.Login(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	repo := &fakeUserRepo{ByEmailErr: common.ErrNotFound}
	svc := NewAuthService(repo, testConfig())

	_, _, err := svc.Login(context.Background(), "nobody@b.c", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
