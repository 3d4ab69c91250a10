// Package dto defines the transport representations of attendance data.
package dto

import (
	"time"

	"punchcard/internal/domain/attendance"
)

// SessionDTO is one check-in/check-out cycle as returned to clients.
// Timestamps are RFC3339 UTC; DurationMinutes is zero while the session is
// open.
type SessionDTO struct {
	ID              uint    `json:"id"`
	Date            string  `json:"date"`
	CheckInTime     string  `json:"check_in_time"`
	CheckOutTime    *string `json:"check_out_time"`
	DurationMinutes int64   `json:"duration_minutes"`
	IsOpen          bool    `json:"is_open"`
}

// RecordDTO is a session joined with the owning user, as listed in the admin
// report.
type RecordDTO struct {
	SessionDTO
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

// TodayStatusDTO summarizes the current day for one user.
type TodayStatusDTO struct {
	Date         string       `json:"date"`
	Status       string       `json:"status"`
	Sessions     []SessionDTO `json:"sessions"`
	TotalMinutes int64        `json:"total_minutes"`
}

// PeriodStatsDTO summarizes a user's sessions over a reporting period.
type PeriodStatsDTO struct {
	DaysPresent            int   `json:"days_present"`
	AverageDurationMinutes int64 `json:"average_duration_minutes"`
	SessionsThisWeek       int   `json:"sessions_this_week"`
}

func NewSessionDTO(s *attendance.Session) SessionDTO {
	d := SessionDTO{
		ID:          s.ID,
		Date:        s.Date,
		CheckInTime: s.CheckInTime.UTC().Format(time.RFC3339),
		IsOpen:      s.IsOpen(),
	}
	if s.CheckOutTime != nil {
		out := s.CheckOutTime.UTC().Format(time.RFC3339)
		d.CheckOutTime = &out
		d.DurationMinutes = int64(s.Duration().Minutes())
	}
	return d
}

func NewSessionDTOs(sessions []*attendance.Session) []SessionDTO {
	dtos := make([]SessionDTO, len(sessions))
	for i, s := range sessions {
		dtos[i] = NewSessionDTO(s)
	}
	return dtos
}

func NewRecordDTO(rec *attendance.Record, today string) RecordDTO {
	return RecordDTO{
		SessionDTO: NewSessionDTO(rec.Session),
		Username:   rec.Username,
		Email:      rec.Email,
		Status:     string(attendance.ClassifyRecord(rec.Session, today)),
	}
}

func NewRecordDTOs(records []*attendance.Record, today string) []RecordDTO {
	dtos := make([]RecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = NewRecordDTO(rec, today)
	}
	return dtos
}

func NewPeriodStatsDTO(stats attendance.PeriodStats) PeriodStatsDTO {
	return PeriodStatsDTO{
		DaysPresent:            stats.DaysPresent,
		AverageDurationMinutes: int64(stats.AverageDuration.Minutes()),
		SessionsThisWeek:       stats.SessionsThisWeek,
	}
}
