package usecases

import (
	"context"

	"punchcard/internal/application/user/dto"
	"punchcard/internal/domain/user"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

type ToggleActiveCommand struct {
	UserID  uint
	ActorID uint
}

type ToggleActiveResult struct {
	User dto.UserDTO
}

type ToggleActiveExecutor interface {
	Execute(ctx context.Context, cmd ToggleActiveCommand) (*ToggleActiveResult, error)
}

type ToggleActiveUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewToggleActiveUseCase(userRepo user.Repository, logger logger.Interface) *ToggleActiveUseCase {
	return &ToggleActiveUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ToggleActiveUseCase) Execute(ctx context.Context, cmd ToggleActiveCommand) (*ToggleActiveResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return nil, errors.NewValidationError("cannot deactivate your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	if u.IsActive {
		u.Deactivate()
	} else {
		u.Activate()
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to toggle user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user active state toggled", "user_id", u.ID, "is_active", u.IsActive)

	return &ToggleActiveResult{User: dto.NewUserDTO(u)}, nil
}
