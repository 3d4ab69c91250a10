package usecases

import (
	"context"

	"punchcard/internal/application/attendance/dto"
	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

type TodayStatusCommand struct {
	UserID uint
}

type TodayStatusResult struct {
	Today dto.TodayStatusDTO
}

type TodayStatusExecutor interface {
	Execute(ctx context.Context, cmd TodayStatusCommand) (*TodayStatusResult, error)
}

type TodayStatusUseCase struct {
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewTodayStatusUseCase(attendanceRepo attendance.Repository, logger logger.Interface) *TodayStatusUseCase {
	return &TodayStatusUseCase{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *TodayStatusUseCase) Execute(ctx context.Context, cmd TodayStatusCommand) (*TodayStatusResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	today := biztime.DateString(biztime.NowUTC())
	sessions, err := uc.attendanceRepo.ListByUserAndDate(ctx, cmd.UserID, today)
	if err != nil {
		uc.logger.Errorw("failed to load today's sessions", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load today's status")
	}

	var total int64
	for _, s := range sessions {
		total += int64(s.Duration().Minutes())
	}

	return &TodayStatusResult{
		Today: dto.TodayStatusDTO{
			Date:         today,
			Status:       string(attendance.ClassifyDay(sessions)),
			Sessions:     dto.NewSessionDTOs(sessions),
			TotalMinutes: total,
		},
	}, nil
}
