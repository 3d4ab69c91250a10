package usecases

import (
	"context"

	"punchcard/internal/application/user/dto"
	"punchcard/internal/domain/user"
	"punchcard/internal/shared/authorization"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

// UpdateUserCommand carries optional field updates; nil means leave as is.
type UpdateUserCommand struct {
	UserID   uint
	ActorID  uint
	Username *string
	Email    *string
	Password *string
	Role     *string
}

type UpdateUserResult struct {
	User dto.UserDTO
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error)
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	if cmd.Username != nil {
		u.Username = *cmd.Username
	}
	if cmd.Email != nil {
		u.Email = *cmd.Email
	}
	if cmd.Role != nil {
		if cmd.UserID == cmd.ActorID && authorization.ParseUserRole(*cmd.Role) != u.Role {
			// An admin demoting themselves could lock everyone out.
			return nil, errors.NewValidationError("cannot change your own role")
		}
		if err := u.ChangeRole(authorization.ParseUserRole(*cmd.Role)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Password != nil {
		if len(*cmd.Password) < minPasswordLength {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update user")
		}
		if err := u.SetPasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.IsConflictError(err) || errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user updated", "user_id", u.ID)

	return &UpdateUserResult{User: dto.NewUserDTO(u)}, nil
}
