package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitalsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetFor(t *testing.T) {
	tests := []struct {
		actType string
		want    float64
	}{
		{"Run", 8},
		{"Walk", 3.5},
		{"Hike", 3.5},
		{"Ride", 6},
		{"Swim", 3},
		{"", 3},
	}

	for _, tt := range tests {
		t.Run(tt.actType, func(t *testing.T) {
			assert.Equal(t, tt.want, metFor(tt.actType))
		})
	}
}

func TestEstimateCalories(t *testing.T) {
	// 8 MET * 70 kg * 0.5 h = 280 kcal
	assert.Equal(t, 280, EstimateCalories(8, 70, 30))
	// 3.5 MET * 60 kg * 1 h = 210 kcal
	assert.Equal(t, 210, EstimateCalories(3.5, 60, 60))
	assert.Equal(t, 0, EstimateCalories(8, 70, 0))
}

func TestEstimateSteps(t *testing.T) {
	assert.Equal(t, 6560, EstimateSteps("Run", 5))
	assert.Equal(t, 1312, EstimateSteps("Walk", 1))
	// wheels don't count as steps
	assert.Equal(t, 0, EstimateSteps("Ride", 20))
	assert.Equal(t, 0, EstimateSteps("Swim", 2))
}

func TestSyncActivitiesSkipsBadStartDate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "sam")
	user.StravaAccessToken = "valid-token"
	user.StravaRefreshToken = "refresh-token"
	user.StravaExpiresAt = time.Now().Add(time.Hour).Unix()
	require.NoError(t, db.Save(user).Error)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer valid-token", r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{
				"id": 101,
				"type": "Run",
				"moving_time": 1800,
				"distance": 5000,
				"start_date": "2025-03-10T08:00:00Z",
				"start_date_local": "2025-03-10T09:00:00Z"
			},
			{
				"id": 102,
				"type": "Ride",
				"moving_time": 3600,
				"distance": 20000,
				"start_date": "not-a-timestamp",
				"start_date_local": "2025-03-11T09:00:00Z"
			}
		]`))
	}))
	defer srv.Close()

	svc := &StravaService{
		db:            db,
		client:        &http.Client{Timeout: 5 * time.Second},
		activitiesURL: srv.URL,
	}

	days, err := svc.SyncActivities(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, days) // the corrupt activity contributes nothing

	var count int64
	db.Model(&models.Activity{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var act models.Activity
	require.NoError(t, db.Where("strava_activity_id = ?", 101).First(&act).Error)
	assert.Equal(t, "Run", act.Type)
	assert.Equal(t, 6560, act.Steps)           // 5 km on foot
	assert.Equal(t, 280.0, act.CaloriesBurned) // 8 MET * 70 kg * 0.5 h
	assert.False(t, act.StartTime.IsZero())

	lg, err := NewHealthLogService(db).ByDate(user.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 6560, lg.Steps)
	assert.Equal(t, 280, lg.CaloriesBurned)
	assert.Equal(t, "strava", lg.Source)
}
