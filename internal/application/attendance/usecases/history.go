package usecases

import (
	"context"

	"punchcard/internal/application/attendance/dto"
	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/authorization"
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/query"
)

type HistoryCommand struct {
	RequestorID   uint
	RequestorRole string
	// UserID is the owner of the requested records; zero means the
	// requestor's own.
	UserID    uint
	StartDate string
	EndDate   string
}

type HistoryResult struct {
	Sessions []dto.SessionDTO
	Stats    dto.PeriodStatsDTO
}

type HistoryExecutor interface {
	Execute(ctx context.Context, cmd HistoryCommand) (*HistoryResult, error)
}

type HistoryUseCase struct {
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewHistoryUseCase(attendanceRepo attendance.Repository, logger logger.Interface) *HistoryUseCase {
	return &HistoryUseCase{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *HistoryUseCase) Execute(ctx context.Context, cmd HistoryCommand) (*HistoryResult, error) {
	if cmd.RequestorID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	ownerID := cmd.UserID
	if ownerID == 0 {
		ownerID = cmd.RequestorID
	}
	role := authorization.ParseUserRole(cmd.RequestorRole)
	if !authorization.CanAccessRecordsOf(cmd.RequestorID, role, ownerID) {
		return nil, errors.NewForbiddenError("cannot view another user's attendance")
	}

	dateRange, err := query.FromParams(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	sessions, err := uc.attendanceRepo.ListByUser(ctx, ownerID, dateRange)
	if err != nil {
		uc.logger.Errorw("failed to load history", "user_id", ownerID, "error", err)
		return nil, errors.NewInternalError("failed to load attendance history")
	}

	stats := attendance.ComputePeriodStats(sessions, biztime.NowUTC())

	return &HistoryResult{
		Sessions: dto.NewSessionDTOs(sessions),
		Stats:    dto.NewPeriodStatsDTO(stats),
	}, nil
}
