// controllers/gamification_controller.go
package controllers

import (
	"net/http"
	"time"

	"vitalsync/services"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	Svc *services.GamificationService
}

func NewGamificationController(svc *services.GamificationService) *GamificationController {
	return &GamificationController{Svc: svc}
}

// todayDate is the current calendar day in UTC, the app's reference
// timezone for day boundaries. The service itself only ever sees the
// string, so tests pass fixed dates.
func todayDate() string {
	return time.Now().UTC().Format("2006-01-02")
}

// GET /api/gamification/profile
func (g *GamificationController) GetGamificationProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := g.Svc.Profile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gamification profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// POST /api/gamification/sync
func (g *GamificationController) SyncGamification(c *gin.Context) {
	uid := c.GetUint("userID")

	res, err := g.Svc.Sync(uid, todayDate())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gamification sync failed"})
		return
	}

	if res.NoActivity {
		c.JSON(http.StatusOK, gin.H{"message": "No activity today"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Gamification synced",
		"dailyPoints": res.DailyPoints,
		"totalPoints": res.TotalPoints,
		"level":       res.Level,
	})
}

// GET /api/gamification/leaderboard/today
func (g *GamificationController) GetTodayLeaderboard(c *gin.Context) {
	entries, err := g.Svc.TopToday(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// POST /api/gamification/reset
func (g *GamificationController) ResetGamification(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := g.Svc.Reset(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reset failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gamification reset"})
}
