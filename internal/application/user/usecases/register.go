package usecases

import (
	"context"

	"punchcard/internal/application/user/dto"
	"punchcard/internal/domain/user"
	"punchcard/internal/shared/authorization"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	Token     string
	ExpiresIn int64
	User      dto.UserDTO
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

// RegisterUseCase handles public self-registration. New accounts always get
// the user role; only an existing admin can promote them.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if cmd.Username == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username, email, and password are required")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	// Pre-checks give distinct messages; the unique indexes on users still
	// backstop a concurrent registration that races past them.
	if _, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil {
		return nil, errors.NewConflictError("user with this email already exists")
	} else if !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check existing email", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}
	if _, err := uc.userRepo.GetByUsername(ctx, cmd.Username); err == nil {
		return nil, errors.NewConflictError("username is already taken")
	} else if !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check existing username", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	u, err := user.NewUser(cmd.Username, cmd.Email, hash, authorization.RoleUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate token after registration", "user_id", u.ID, "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	uc.logger.Infow("user registered", "user_id", u.ID, "username", u.Username)

	return &RegisterResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.NewUserDTO(u),
	}, nil
}
