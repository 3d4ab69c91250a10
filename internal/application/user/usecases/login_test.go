package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"punchcard/internal/domain/user"
	"punchcard/internal/shared/authorization"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(password, hash string) error {
	args := m.Called(password, hash)
	return args.Error(0)
}

type mockTokenGenerator struct {
	mock.Mock
}

func (m *mockTokenGenerator) Generate(userID uint, email string, role authorization.UserRole) (string, int64, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func activeUser(t *testing.T) *user.User {
	t.Helper()

	u, err := user.NewUser("alice", "alice@example.com", "$2a$10$hash", authorization.RoleUser)
	require.NoError(t, err)
	u.ID = 1
	return u
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepository)
	verifier := new(mockVerifier)
	tokens := new(mockTokenGenerator)

	u := activeUser(t)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(u, nil)
	verifier.On("Verify", "secret123", u.PasswordHash).Return(nil)
	tokens.On("Generate", uint(1), "alice@example.com", authorization.RoleUser).
		Return("signed-token", int64(86400), nil)

	uc := NewLoginUseCase(repo, verifier, tokens, noopLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "alice@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(86400), result.ExpiresIn)
	assert.Equal(t, "alice", result.User.Username)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockUserRepository)
	verifier := new(mockVerifier)
	tokens := new(mockTokenGenerator)

	u := activeUser(t)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(u, nil)
	verifier.On("Verify", "wrong", u.PasswordHash).Return(fmt.Errorf("password verification failed"))

	uc := NewLoginUseCase(repo, verifier, tokens, noopLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "alice@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mockUserRepository)

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, errors.NewNotFoundError("user not found"))

	uc := NewLoginUseCase(repo, new(mockVerifier), new(mockTokenGenerator), noopLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "ghost@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	// Indistinguishable from a wrong password.
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	repo := new(mockUserRepository)
	verifier := new(mockVerifier)

	u := activeUser(t)
	u.Deactivate()
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(u, nil)

	uc := NewLoginUseCase(repo, verifier, new(mockTokenGenerator), noopLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "alice@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}
