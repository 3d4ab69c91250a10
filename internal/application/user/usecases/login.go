package usecases

import (
	"context"

	"punchcard/internal/application/user/dto"
	"punchcard/internal/domain/user"
	"punchcard/internal/shared/authorization"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenGenerator issues signed access tokens.
type TokenGenerator interface {
	Generate(userID uint, email string, role authorization.UserRole) (string, int64, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      dto.UserDTO
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	verifier PasswordVerifier,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same message as a wrong password, so login cannot be used to
			// probe which emails exist.
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to load user for login", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	if !u.IsActive {
		uc.logger.Warnw("login attempt on deactivated account", "user_id", u.ID)
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	if err := uc.verifier.Verify(cmd.Password, u.PasswordHash); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", u.ID, "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID)

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.NewUserDTO(u),
	}, nil
}
