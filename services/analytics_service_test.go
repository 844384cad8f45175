package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	user := createTestUser(t, db, "ola")

	seed := func(date string, steps, calories, hr int, sleep float64) {
		_, err := NewHealthLogService(db).Upsert(user.ID, date, HealthLogInput{
			Steps:          steps,
			CaloriesBurned: calories,
			HeartRateAvg:   hr,
			SleepDuration:  sleep,
		})
		require.NoError(t, err)
	}
	seed("2025-03-08", 8000, 300, 70, 7)
	seed("2025-03-09", 6000, 250, 80, 6.5)
	seed("2025-03-10", 10000, 400, 75, 8)

	out, err := svc.Overview(user.ID, 7)
	require.NoError(t, err)

	assert.Equal(t, 24000, out.Summary.TotalSteps)
	assert.Equal(t, 950, out.Summary.TotalCaloriesBurned)
	assert.Equal(t, 75, out.Summary.AvgHeartRate)
	assert.Equal(t, 7.2, out.Summary.AvgSleep)

	// oldest first for charting
	require.Len(t, out.DailyData, 3)
	assert.Equal(t, "2025-03-08", out.DailyData[0].Date)
	assert.Equal(t, "2025-03-10", out.DailyData[2].Date)
}

func TestOverviewWindowLimitsDays(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	user := createTestUser(t, db, "pat")

	for _, d := range []string{"2025-03-05", "2025-03-06", "2025-03-07", "2025-03-08"} {
		createTestLog(t, db, user.ID, d, 1000, 100, 6)
	}

	out, err := svc.Overview(user.ID, 2)
	require.NoError(t, err)

	// only the 2 most recent days count
	assert.Equal(t, 2000, out.Summary.TotalSteps)
	require.Len(t, out.DailyData, 2)
	assert.Equal(t, "2025-03-07", out.DailyData[0].Date)
	assert.Equal(t, "2025-03-08", out.DailyData[1].Date)
}

func TestOverviewEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)
	user := createTestUser(t, db, "quin")

	out, err := svc.Overview(user.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Summary.TotalSteps)
	assert.Equal(t, 0, out.Summary.AvgHeartRate)
	assert.Equal(t, 0.0, out.Summary.AvgSleep)
	assert.Empty(t, out.DailyData)
}
