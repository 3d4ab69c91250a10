package usecases

import (
	"context"

	"punchcard/internal/application/user/dto"
	"punchcard/internal/domain/user"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

type ListUsersCommand struct{}

type ListUsersResult struct {
	Users []dto.UserDTO
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error)
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &ListUsersResult{Users: dto.NewUserDTOs(users)}, nil
}
