package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchcard/internal/shared/biztime"
)

func closedSession(t *testing.T, userID uint, checkIn time.Time, dur time.Duration) *Session {
	t.Helper()
	s, err := NewSession(userID, checkIn)
	require.NoError(t, err)
	require.NoError(t, s.Close(checkIn.Add(dur)))
	return s
}

func openSession(t *testing.T, userID uint, checkIn time.Time) *Session {
	t.Helper()
	s, err := NewSession(userID, checkIn)
	require.NoError(t, err)
	return s
}

func TestClassifyDay(t *testing.T) {
	checkIn := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, DayNoSessions, ClassifyDay(nil))

	open := openSession(t, 1, checkIn)
	assert.Equal(t, DayHasOpenSession, ClassifyDay([]*Session{open}))

	closed := closedSession(t, 1, checkIn, 2*time.Hour)
	assert.Equal(t, DayHasOpenSession, ClassifyDay([]*Session{closed, open}))
	assert.Equal(t, DayAllClosed, ClassifyDay([]*Session{closed}))
}

func TestClassifyRecord(t *testing.T) {
	today := "2026-03-10"
	checkIn := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)

	open := openSession(t, 1, checkIn)
	open.Date = "2026-03-09"
	assert.Equal(t, StatusIncomplete, ClassifyRecord(open, today))

	open.Date = today
	assert.Equal(t, StatusInProgress, ClassifyRecord(open, today))

	closed := closedSession(t, 1, checkIn, time.Hour)
	closed.Date = "2026-03-09"
	assert.Equal(t, StatusComplete, ClassifyRecord(closed, today))
	closed.Date = today
	assert.Equal(t, StatusComplete, ClassifyRecord(closed, today))
}

func TestComputePeriodStats_AverageExcludesOpen(t *testing.T) {
	// Wednesday noon in the office timezone
	now := time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)

	sessions := []*Session{
		closedSession(t, 1, checkIn, 1*time.Hour),
		closedSession(t, 1, checkIn, 2*time.Hour),
		closedSession(t, 1, checkIn, 3*time.Hour),
		openSession(t, 1, now),
	}

	stats := ComputePeriodStats(sessions, now)
	assert.Equal(t, 2*time.Hour, stats.AverageDuration)
}

func TestComputePeriodStats_DaysAndWeek(t *testing.T) {
	// 2026-03-11 is a Wednesday; the week starts Sunday 2026-03-08
	now := time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC)

	mon := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)  // in week
	tue := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC) // in week
	old := time.Date(2026, 3, 4, 3, 0, 0, 0, time.UTC)  // previous week

	sessions := []*Session{
		closedSession(t, 1, mon, time.Hour),
		closedSession(t, 1, mon, time.Hour), // same day, second cycle
		closedSession(t, 1, tue, time.Hour),
		closedSession(t, 1, old, time.Hour),
	}

	stats := ComputePeriodStats(sessions, now)
	assert.Equal(t, 3, stats.DaysPresent)
	assert.Equal(t, 3, stats.SessionsThisWeek)
}

func TestComputePeriodStats_Empty(t *testing.T) {
	stats := ComputePeriodStats(nil, time.Now())
	assert.Equal(t, 0, stats.DaysPresent)
	assert.Equal(t, time.Duration(0), stats.AverageDuration)
	assert.Equal(t, 0, stats.SessionsThisWeek)
}

func TestTabulate(t *testing.T) {
	today := biztime.DateString(time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC))
	checkIn := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)

	closed := closedSession(t, 7, checkIn, 90*time.Minute)
	open := openSession(t, 7, checkIn)
	open.Date = "2026-03-01"

	rows := Tabulate([]*Record{
		{Session: closed, Username: "alice", Email: "alice@example.com"},
		{Session: open, Username: "alice", Email: "alice@example.com"},
	}, today)

	require.Len(t, rows, 2)

	assert.Equal(t, "alice", rows[0].Username)
	assert.True(t, rows[0].HasDuration)
	assert.Equal(t, 90*time.Minute, rows[0].Duration)
	assert.Equal(t, StatusComplete, rows[0].Status)

	assert.False(t, rows[1].HasDuration)
	assert.Nil(t, rows[1].CheckOutTime)
	assert.Equal(t, StatusIncomplete, rows[1].Status)
}

func TestFullDayScenario(t *testing.T) {
	// 09:00-12:00 and 13:00-17:00 office time on the same day
	morning := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)   // 09:00 UTC+6
	afternoon := time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC) // 13:00 UTC+6

	first := closedSession(t, 5, morning, 3*time.Hour)
	second := closedSession(t, 5, afternoon, 4*time.Hour)

	sessions := []*Session{first, second}
	require.Equal(t, first.Date, second.Date)

	assert.Equal(t, DayAllClosed, ClassifyDay(sessions))

	var total time.Duration
	for _, s := range sessions {
		total += s.Duration()
	}
	assert.Equal(t, 7*time.Hour, total)
}
