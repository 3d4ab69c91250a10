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

// QRValidator reports whether a scanned display token is genuine and within
// its validity window.
type QRValidator interface {
	Validate(token string) bool
}

// Transactor runs a function inside a database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CheckInCommand struct {
	UserID  uint
	QRToken string
}

type CheckInResult struct {
	Session dto.SessionDTO
}

type CheckInExecutor interface {
	Execute(ctx context.Context, cmd CheckInCommand) (*CheckInResult, error)
}

type CheckInUseCase struct {
	attendanceRepo attendance.Repository
	qrValidator    QRValidator
	transactor     Transactor
	logger         logger.Interface
}

func NewCheckInUseCase(
	attendanceRepo attendance.Repository,
	qrValidator QRValidator,
	transactor Transactor,
	logger logger.Interface,
) *CheckInUseCase {
	return &CheckInUseCase{
		attendanceRepo: attendanceRepo,
		qrValidator:    qrValidator,
		transactor:     transactor,
		logger:         logger,
	}
}

func (uc *CheckInUseCase) Execute(ctx context.Context, cmd CheckInCommand) (*CheckInResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.QRToken == "" {
		return nil, errors.NewValidationError("QR token is required")
	}

	if !uc.qrValidator.Validate(cmd.QRToken) {
		uc.logger.Warnw("check-in rejected: invalid QR token", "user_id", cmd.UserID)
		return nil, errors.NewValidationError(constants.ErrMsgInvalidQRCode)
	}

	now := biztime.NowUTC()
	today := biztime.DateString(now)

	var session *attendance.Session
	err := uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Pre-check for a friendly error; the unique index still backstops
		// concurrent check-ins that race past it.
		if _, err := uc.attendanceRepo.FindOpen(txCtx, cmd.UserID, today); err == nil {
			return errors.NewValidationError(constants.ErrMsgOpenSessionExists)
		} else if !errors.IsNotFoundError(err) {
			return err
		}

		s, err := attendance.NewSession(cmd.UserID, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.attendanceRepo.Create(txCtx, s); err != nil {
			return err
		}
		session = s
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("check-in failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to check in")
	}

	uc.logger.Infow("user checked in",
		"user_id", cmd.UserID,
		"session_id", session.ID,
		"date", session.Date)

	return &CheckInResult{Session: dto.NewSessionDTO(session)}, nil
}
