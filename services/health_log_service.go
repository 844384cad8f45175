package services

import (
	"errors"
	"math"
	"time"

	"vitalsync/models"

	"gorm.io/gorm"
)

type HealthLogService struct{ db *gorm.DB }

func NewHealthLogService(db *gorm.DB) *HealthLogService { return &HealthLogService{db: db} }

// HealthLogInput is the client-supplied part of a daily log; the (user,
// date) key comes from the request context and path.
type HealthLogInput struct {
	Steps          int     `json:"steps"`
	DistanceKm     float64 `json:"distance"`
	CaloriesBurned int     `json:"caloriesBurned"`
	HeartRateAvg   int     `json:"heartRateAvg"`

	SleepDuration float64 `json:"sleepDuration"`
	SleepQuality  string  `json:"sleepQuality"`

	CaloriesConsumed float64 `json:"caloriesConsumed"`
	WaterIntake      float64 `json:"waterIntake"`

	MoodLevel   int `json:"moodLevel"`
	StressLevel int `json:"stressLevel"`

	Source string `json:"source"`
}

// Upsert replaces the log for (userID, date), creating it when absent.
// At most one row per pair ever exists; the unique index backs this up.
// Assign takes a map, not the struct: a struct would make GORM skip
// zero-value fields, and a day corrected down to zero steps must actually
// store the zero.
func (s *HealthLogService) Upsert(userID uint, date string, in HealthLogInput) (*models.DailyHealthLog, error) {
	if in.Source == "" {
		in.Source = "manual"
	}

	lg := models.DailyHealthLog{UserID: userID, Date: date}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(map[string]any{
			"steps":             in.Steps,
			"distance_km":       in.DistanceKm,
			"calories_burned":   in.CaloriesBurned,
			"heart_rate_avg":    in.HeartRateAvg,
			"sleep_duration":    in.SleepDuration,
			"sleep_quality":     in.SleepQuality,
			"calories_consumed": in.CaloriesConsumed,
			"water_intake":      in.WaterIntake,
			"mood_level":        in.MoodLevel,
			"stress_level":      in.StressLevel,
			"source":            in.Source,
		}).
		FirstOrCreate(&lg).Error
	if err != nil {
		return nil, err
	}
	return &lg, nil
}

// MergeActivityTotals writes imported activity totals into the day's log
// without touching manually logged fields (sleep, nutrition, mood).
func (s *HealthLogService) MergeActivityTotals(userID uint, date string, steps int, distanceKm float64, calories, heartRateAvg int, source string) error {
	var lg models.DailyHealthLog
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&lg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		lg = models.DailyHealthLog{
			UserID:         userID,
			Date:           date,
			Steps:          steps,
			DistanceKm:     distanceKm,
			CaloriesBurned: calories,
			HeartRateAvg:   heartRateAvg,
			Source:         source,
		}
		return s.db.Create(&lg).Error
	}
	if err != nil {
		return err
	}

	return s.db.Model(&lg).Updates(map[string]any{
		"steps":           steps,
		"distance_km":     distanceKm,
		"calories_burned": calories,
		"heart_rate_avg":  heartRateAvg,
		"source":          source,
	}).Error
}

// AddConsumedCalories folds a logged meal into the day's consumed total,
// creating the log if the user has nothing for that date yet.
func (s *HealthLogService) AddConsumedCalories(userID uint, date string, calories float64) error {
	var lg models.DailyHealthLog
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&lg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		lg = models.DailyHealthLog{
			UserID:           userID,
			Date:             date,
			CaloriesConsumed: calories,
			Source:           "manual",
		}
		return s.db.Create(&lg).Error
	}
	if err != nil {
		return err
	}

	return s.db.Model(&lg).
		Update("calories_consumed", lg.CaloriesConsumed+calories).Error
}

func (s *HealthLogService) ByDate(userID uint, date string) (*models.DailyHealthLog, error) {
	var lg models.DailyHealthLog
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&lg).Error
	if err != nil {
		return nil, err
	}
	return &lg, nil
}

func (s *HealthLogService) Range(userID uint, start, end string) ([]models.DailyHealthLog, error) {
	var logs []models.DailyHealthLog
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

// Recent returns up to n most recent logs, newest first.
func (s *HealthLogService) Recent(userID uint, n int) ([]models.DailyHealthLog, error) {
	var logs []models.DailyHealthLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(n).
		Find(&logs).Error
	return logs, err
}

type HistoryActivity struct {
	Type        string  `json:"type"`
	DurationMin int     `json:"durationMin"`
	Calories    float64 `json:"calories"`
}

type HistoryDay struct {
	Date       string            `json:"date"`
	Steps      int               `json:"steps"`
	DistanceKm float64           `json:"distance"`
	Calories   int               `json:"calories"`
	Activities []HistoryActivity `json:"activities"`
}

// History merges the last N daily logs with the same window's recorded
// activities into one per-day view, newest first. Days with a log but no
// activities get an empty list, never null.
func (s *HealthLogService) History(userID uint, days int) ([]HistoryDay, error) {
	logs, err := s.Recent(userID, days)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	var activities []models.Activity
	if err := s.db.
		Where("user_id = ? AND start_time >= ?", userID, cutoff).
		Find(&activities).Error; err != nil {
		return nil, err
	}

	byDate := map[string][]HistoryActivity{}
	for _, act := range activities {
		date := act.StartTime.UTC().Format("2006-01-02")
		byDate[date] = append(byDate[date], HistoryActivity{
			Type:        act.Type,
			DurationMin: act.DurationMin,
			Calories:    act.CaloriesBurned,
		})
	}

	history := make([]HistoryDay, 0, len(logs))
	for _, lg := range logs {
		acts := byDate[lg.Date]
		if acts == nil {
			acts = []HistoryActivity{}
		}
		history = append(history, HistoryDay{
			Date:       lg.Date,
			Steps:      lg.Steps,
			DistanceKm: math.Round(lg.DistanceKm*100) / 100,
			Calories:   lg.CaloriesBurned,
			Activities: acts,
		})
	}
	return history, nil
}

func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
