package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"punchcard/internal/domain/user"
	"punchcard/internal/shared/authorization"
	"punchcard/internal/shared/errors"
)

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := new(mockHasher)
	tokens := new(mockTokenGenerator)

	repo.On("GetByEmail", mock.Anything, "bob@example.com").
		Return(nil, errors.NewNotFoundError("user not found"))
	repo.On("GetByUsername", mock.Anything, "bob").
		Return(nil, errors.NewNotFoundError("user not found"))
	hasher.On("Hash", "secret123").Return("$2a$10$hash", nil)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		u := args.Get(1).(*user.User)
		u.ID = 9
	}).Return(nil)
	tokens.On("Generate", uint(9), "bob@example.com", authorization.RoleUser).
		Return("signed-token", int64(86400), nil)

	uc := NewRegisterUseCase(repo, hasher, tokens, noopLogger{})
	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(86400), result.ExpiresIn)
	assert.Equal(t, "bob", result.User.Username)
	assert.Equal(t, authorization.RoleUser.String(), result.User.Role)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepository)

	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(activeUser(t), nil)

	uc := NewRegisterUseCase(repo, new(mockHasher), new(mockTokenGenerator), noopLogger{})
	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	assert.Contains(t, err.Error(), "email already exists")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := new(mockUserRepository)

	repo.On("GetByEmail", mock.Anything, "new@example.com").
		Return(nil, errors.NewNotFoundError("user not found"))
	repo.On("GetByUsername", mock.Anything, "alice").Return(activeUser(t), nil)

	uc := NewRegisterUseCase(repo, new(mockHasher), new(mockTokenGenerator), noopLogger{})
	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Email:    "new@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	assert.Contains(t, err.Error(), "username is already taken")
}

func TestRegister_ShortPassword(t *testing.T) {
	repo := new(mockUserRepository)

	uc := NewRegisterUseCase(repo, new(mockHasher), new(mockTokenGenerator), noopLogger{})
	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}
