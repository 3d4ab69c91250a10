package usecases

import (
	"context"

	"punchcard/internal/domain/user"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID  uint
	ActorID uint
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("cannot delete your own account")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to delete user")
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
