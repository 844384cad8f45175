package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"vitalsync/models"

	"gorm.io/gorm"
)

// Daily point tiers. Thresholds apply to the current day's log only.
const (
	basePoints      = 10
	stepsTier1      = 8000
	stepsTier1Award = 20
	stepsTier2      = 12000
	stepsTier2Award = 10
	caloriesTier    = 400
	caloriesAward   = 20
	sleepTierHours  = 7
	sleepAward      = 20

	levelStep = 100 // points per level
)

// ComputeDailyPoints maps one day's health log to its point award. Tiers are
// additive: a 12k-step day earns both step awards. Max possible is 80.
func ComputeDailyPoints(lg *models.DailyHealthLog) int {
	points := basePoints

	if lg.Steps >= stepsTier1 {
		points += stepsTier1Award
	}
	if lg.Steps >= stepsTier2 {
		points += stepsTier2Award
	}
	if lg.CaloriesBurned >= caloriesTier {
		points += caloriesAward
	}
	if lg.SleepDuration >= sleepTierHours {
		points += sleepAward
	}

	return points
}

func levelFor(points int) int { return points/levelStep + 1 }

type SyncResult struct {
	NoActivity  bool `json:"-"`
	DailyPoints int  `json:"dailyPoints"`
	TotalPoints int  `json:"totalPoints"`
	Level       int  `json:"level"`
}

type LeaderboardEntry struct {
	UserID      uint   `json:"userId"`
	Name        string `json:"name"`
	DailyPoints int    `json:"dailyPoints"`
	Level       int    `json:"level"`
}

type GamificationService struct {
	db *gorm.DB

	mu        sync.Mutex
	userLocks map[uint]*sync.Mutex
}

func NewGamificationService(db *gorm.DB) *GamificationService {
	return &GamificationService{db: db, userLocks: make(map[uint]*sync.Mutex)}
}

// lockFor serializes syncs per user. Load-then-save on the profile row is
// not safe against a concurrent sync for the same user (retried requests,
// double-clicks), so the whole read-modify-write runs under this lock.
// Different users never contend.
func (s *GamificationService) lockFor(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

// Profile returns the user's gamification profile, creating a zeroed one on
// first access.
func (s *GamificationService) Profile(userID uint) (*models.GamificationProfile, error) {
	var profile models.GamificationProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.GamificationProfile{UserID: userID, Level: 1, Badges: []string{}}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Sync recomputes today's award from the current health log and reconciles
// it into the profile. today is YYYY-MM-DD, passed in by the caller so the
// day boundary is testable.
//
// Repeated same-day syncs are idempotent: the previously applied award for
// today is subtracted before the fresh one is added, so N syncs against the
// same log land on the same totals, and a sync after the log changed yields
// a corrected award rather than an accumulated one. Once the date rolls
// over, the prior day's award stays folded into lifetime points.
func (s *GamificationService) Sync(userID uint, today string) (*SyncResult, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	profile, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	var lg models.DailyHealthLog
	err = s.db.Where("user_id = ? AND date = ?", userID, today).First(&lg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No log, no award. A user who logged nothing today cannot gain or
		// lose points by calling sync.
		return &SyncResult{
			NoActivity:  true,
			DailyPoints: profile.DailyPoints,
			TotalPoints: profile.Points,
			Level:       profile.Level,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	award := ComputeDailyPoints(&lg)
	levelBefore := profile.Level

	if profile.LastUpdatedDate == today {
		profile.Points -= profile.DailyPoints
		if profile.Points < 0 {
			log.Printf("gamification: points underflow for user %d (daily=%d), clamping to 0", userID, profile.DailyPoints)
			profile.Points = 0
		}
	}

	profile.DailyPoints = award
	profile.Points += award
	profile.LastUpdatedDate = today
	profile.Level = levelFor(profile.Points)

	// Single-row write; the transaction keeps the pre-sync state visible if
	// the save is rejected.
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(profile).Error
	}); err != nil {
		return nil, fmt.Errorf("gamification sync failed: %w", err)
	}

	if profile.Level > levelBefore {
		s.notifyLevelUp(userID, profile.Level)
	}

	return &SyncResult{
		DailyPoints: profile.DailyPoints,
		TotalPoints: profile.Points,
		Level:       profile.Level,
	}, nil
}

// notifyLevelUp drops an in-app notification row. Best effort: a failed
// insert never fails the sync.
func (s *GamificationService) notifyLevelUp(userID uint, level int) {
	n := models.Notification{
		UserID:  userID,
		Type:    "alert",
		Message: fmt.Sprintf("You reached level %d! Keep it up.", level),
	}
	if err := s.db.Create(&n).Error; err != nil {
		log.Printf("gamification: level-up notification failed for user %d: %v", userID, err)
	}
}

// TopToday ranks profiles by their current daily points. Ties break on
// user id so the ordering is deterministic. Profiles whose owner has not
// synced today still show the last computed value; there is no rollover job
// zeroing daily points, matching the behavior the product shipped with.
func (s *GamificationService) TopToday(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var entries []LeaderboardEntry
	err := s.db.
		Table("gamification_profiles").
		Select("gamification_profiles.user_id, users.name, gamification_profiles.daily_points, gamification_profiles.level").
		Joins("JOIN users ON users.id = gamification_profiles.user_id").
		Where("gamification_profiles.daily_points > 0").
		Where("gamification_profiles.deleted_at IS NULL").
		Order("gamification_profiles.daily_points DESC, gamification_profiles.user_id ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Reset zeroes the profile. Resetting a user without a profile is a no-op
// success; the record itself is never deleted.
func (s *GamificationService) Reset(userID uint) error {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	var profile models.GamificationProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	profile.Points = 0
	profile.DailyPoints = 0
	profile.Level = 1
	profile.Badges = []string{}

	return s.db.Save(&profile).Error
}
