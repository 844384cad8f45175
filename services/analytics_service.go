package services

import (
	"math"

	"vitalsync/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

type ActivitySummary struct {
	TotalSteps          int     `json:"totalSteps"`
	TotalCaloriesBurned int     `json:"totalCaloriesBurned"`
	AvgHeartRate        int     `json:"avgHeartRate"`
	AvgSleep            float64 `json:"avgSleep"`
}

type AnalyticsOverview struct {
	Summary   ActivitySummary         `json:"summary"`
	DailyData []models.DailyHealthLog `json:"dailyData"` // oldest first
}

// Overview aggregates the user's most recent daily logs into totals and
// averages. days is the window size (7 for weekly, 30 for monthly); missing
// days simply don't contribute.
func (s *AnalyticsService) Overview(userID uint, days int) (*AnalyticsOverview, error) {
	var logs []models.DailyHealthLog
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(days).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	var sum ActivitySummary
	var hrSum, sleepSum float64
	for _, lg := range logs {
		sum.TotalSteps += lg.Steps
		sum.TotalCaloriesBurned += lg.CaloriesBurned
		hrSum += float64(lg.HeartRateAvg)
		sleepSum += lg.SleepDuration
	}

	count := len(logs)
	if count == 0 {
		count = 1
	}
	sum.AvgHeartRate = int(math.Round(hrSum / float64(count)))
	sum.AvgSleep = math.Round(sleepSum/float64(count)*10) / 10

	// oldest first for charting
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}

	return &AnalyticsOverview{Summary: sum, DailyData: logs}, nil
}
