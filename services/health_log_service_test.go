package services

import (
	"testing"
	"time"

	"vitalsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertReplacesNotDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "una")

	first, err := svc.Upsert(user.ID, "2025-03-10", HealthLogInput{Steps: 4000, SleepDuration: 6})
	require.NoError(t, err)
	assert.Equal(t, "manual", first.Source)

	second, err := svc.Upsert(user.ID, "2025-03-10", HealthLogInput{Steps: 9000, SleepDuration: 7.5})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 9000, second.Steps)

	var count int64
	db.Model(&models.DailyHealthLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	// a different date is a different row
	_, err = svc.Upsert(user.ID, "2025-03-11", HealthLogInput{Steps: 100})
	require.NoError(t, err)
	db.Model(&models.DailyHealthLog{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestUpsertWritesZeroValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "zed")

	_, err := svc.Upsert(user.ID, "2025-03-10", HealthLogInput{
		Steps:          9000,
		SleepDuration:  8,
		CaloriesBurned: 450,
		MoodLevel:      4,
	})
	require.NoError(t, err)

	// the day gets corrected down to nothing; zeros must actually land
	_, err = svc.Upsert(user.ID, "2025-03-10", HealthLogInput{})
	require.NoError(t, err)

	lg, err := svc.ByDate(user.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 0, lg.Steps)
	assert.Equal(t, 0.0, lg.SleepDuration)
	assert.Equal(t, 0, lg.CaloriesBurned)
	assert.Equal(t, 0, lg.MoodLevel)
}

func TestMergeActivityTotalsPreservesManualFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "mia")

	_, err := svc.Upsert(user.ID, "2025-03-10", HealthLogInput{
		Steps:            2000,
		SleepDuration:    7.5,
		SleepQuality:     "good",
		CaloriesConsumed: 1800,
		MoodLevel:        4,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MergeActivityTotals(user.ID, "2025-03-10", 11000, 8.4, 520, 142, "strava"))

	lg, err := svc.ByDate(user.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 11000, lg.Steps)
	assert.Equal(t, 8.4, lg.DistanceKm)
	assert.Equal(t, 520, lg.CaloriesBurned)
	assert.Equal(t, 142, lg.HeartRateAvg)
	assert.Equal(t, "strava", lg.Source)

	// manually logged fields survive the import
	assert.Equal(t, 7.5, lg.SleepDuration)
	assert.Equal(t, "good", lg.SleepQuality)
	assert.Equal(t, 1800.0, lg.CaloriesConsumed)
	assert.Equal(t, 4, lg.MoodLevel)
}

func TestMergeActivityTotalsCreatesWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "cam")

	require.NoError(t, svc.MergeActivityTotals(user.ID, "2025-03-10", 5000, 4, 200, 0, "strava"))

	lg, err := svc.ByDate(user.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 5000, lg.Steps)
	assert.Equal(t, "strava", lg.Source)
}

func TestAddConsumedCaloriesAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "ben")

	// creates the day's log when nothing exists yet
	require.NoError(t, svc.AddConsumedCalories(user.ID, "2025-03-10", 250))
	// subsequent meals add up instead of replacing
	require.NoError(t, svc.AddConsumedCalories(user.ID, "2025-03-10", 600))

	lg, err := svc.ByDate(user.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 850.0, lg.CaloriesConsumed)
}

func TestRangeIsInclusiveAndOrdered(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "dan")

	for _, d := range []string{"2025-03-12", "2025-03-09", "2025-03-10", "2025-03-15"} {
		createTestLog(t, db, user.ID, d, 1000, 0, 0)
	}

	logs, err := svc.Range(user.ID, "2025-03-09", "2025-03-12")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "2025-03-09", logs[0].Date)
	assert.Equal(t, "2025-03-10", logs[1].Date)
	assert.Equal(t, "2025-03-12", logs[2].Date)
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "eve")

	for _, d := range []string{"2025-03-08", "2025-03-09", "2025-03-10"} {
		createTestLog(t, db, user.ID, d, 1000, 0, 0)
	}

	logs, err := svc.Recent(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2025-03-10", logs[0].Date)
	assert.Equal(t, "2025-03-09", logs[1].Date)
}

func TestHistoryMergesLogsAndActivities(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "hal")

	// History windows on wall clock, so the fixture uses real recent dates
	today := time.Now().UTC().Format("2006-01-02")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := svc.Upsert(user.ID, yesterday, HealthLogInput{Steps: 4000, DistanceKm: 3.126, CaloriesBurned: 180})
	require.NoError(t, err)
	_, err = svc.Upsert(user.ID, today, HealthLogInput{Steps: 9000, DistanceKm: 7, CaloriesBurned: 420})
	require.NoError(t, err)

	startTime, err := time.Parse("2006-01-02", today)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Activity{
		UserID:         user.ID,
		Source:         "strava",
		Type:           "Run",
		DurationMin:    35,
		DistanceKm:     7,
		CaloriesBurned: 420,
		StartTime:      startTime.Add(8 * time.Hour),
	}).Error)

	history, err := svc.History(user.ID, 30)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// newest first, activities attached to their own day
	assert.Equal(t, today, history[0].Date)
	assert.Equal(t, 9000, history[0].Steps)
	require.Len(t, history[0].Activities, 1)
	assert.Equal(t, "Run", history[0].Activities[0].Type)
	assert.Equal(t, 420.0, history[0].Activities[0].Calories)

	assert.Equal(t, yesterday, history[1].Date)
	assert.Equal(t, 3.13, history[1].DistanceKm) // rounded to 2 decimals
	assert.NotNil(t, history[1].Activities)
	assert.Empty(t, history[1].Activities)
}

func TestByDateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthLogService(db)

	_, err := svc.ByDate(42, "2025-03-10")
	assert.True(t, IsNotFound(err))
}
