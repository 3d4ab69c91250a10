package usecases

import (
	"context"

	"punchcard/internal/application/user/dto"
	"punchcard/internal/domain/user"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

type GetProfileCommand struct {
	UserID uint
}

type GetProfileResult struct {
	User dto.UserDTO
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, cmd GetProfileCommand) (*GetProfileResult, error)
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, cmd GetProfileCommand) (*GetProfileResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load profile")
	}

	return &GetProfileResult{User: dto.NewUserDTO(u)}, nil
}
