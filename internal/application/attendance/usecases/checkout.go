package usecases

import (
	"context"

	"punchcard/internal/application/attendance/dto"
	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/constants"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
)

type CheckOutCommand struct {
	UserID  uint
	QRToken string
}

type CheckOutResult struct {
	Session dto.SessionDTO
}

type CheckOutExecutor interface {
	Execute(ctx context.Context, cmd CheckOutCommand) (*CheckOutResult, error)
}

type CheckOutUseCase struct {
	attendanceRepo attendance.Repository
	qrValidator    QRValidator
	transactor     Transactor
	logger         logger.Interface
}

func NewCheckOutUseCase(
	attendanceRepo attendance.Repository,
	qrValidator QRValidator,
	transactor Transactor,
	logger logger.Interface,
) *CheckOutUseCase {
	return &CheckOutUseCase{
		attendanceRepo: attendanceRepo,
		qrValidator:    qrValidator,
		transactor:     transactor,
		logger:         logger,
	}
}

func (uc *CheckOutUseCase) Execute(ctx context.Context, cmd CheckOutCommand) (*CheckOutResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.QRToken == "" {
		return nil, errors.NewValidationError("QR token is required")
	}

	if !uc.qrValidator.Validate(cmd.QRToken) {
		uc.logger.Warnw("check-out rejected: invalid QR token", "user_id", cmd.UserID)
		return nil, errors.NewValidationError(constants.ErrMsgInvalidQRCode)
	}

	now := biztime.NowUTC()
	today := biztime.DateString(now)

	var session *attendance.Session
	err := uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		s, err := uc.attendanceRepo.FindOpen(txCtx, cmd.UserID, today)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewValidationError(constants.ErrMsgNoOpenSession)
			}
			return err
		}

		if err := s.Close(now); err != nil {
			return errors.NewValidationError(err.Error())
		}
		// Conditional close: a concurrent check-out that won the race leaves
		// zero rows to update, and the stored check-out stays untouched.
		if err := uc.attendanceRepo.Close(txCtx, s); err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewValidationError(constants.ErrMsgNoOpenSession)
			}
			return err
		}
		session = s
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("check-out failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to check out")
	}

	uc.logger.Infow("user checked out",
		"user_id", cmd.UserID,
		"session_id", session.ID,
		"duration_minutes", int64(session.Duration().Minutes()))

	return &CheckOutResult{Session: dto.NewSessionDTO(session)}, nil
}
