package services

import (
	"testing"

	"vitalsync/config"
	"vitalsync/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.User{Name: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestLog(t *testing.T, db *gorm.DB, userID uint, date string, steps, calories int, sleep float64) {
	t.Helper()

	lg := models.DailyHealthLog{
		UserID:         userID,
		Date:           date,
		Steps:          steps,
		CaloriesBurned: calories,
		SleepDuration:  sleep,
		Source:         "manual",
	}
	require.NoError(t, db.Create(&lg).Error)
}
