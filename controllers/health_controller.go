// controllers/health_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"vitalsync/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Logs *services.HealthLogService
}

func NewHealthController(logs *services.HealthLogService) *HealthController {
	return &HealthController{Logs: logs}
}

type healthSyncInput struct {
	Date string `json:"date" binding:"required"`
	services.HealthLogInput
}

// POST /api/health/sync — create or replace the day's log.
func (h *HealthController) SyncDailyHealth(c *gin.Context) {
	uid := c.GetUint("userID")

	var body healthSyncInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	lg, err := h.Logs.Upsert(uid, body.Date, body.HealthLogInput)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync health data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Daily health synced successfully",
		"data":    lg,
	})
}

// GET /api/health/day/:date
func (h *HealthController) GetHealthByDate(c *gin.Context) {
	uid := c.GetUint("userID")
	date := c.Param("date")

	lg, err := h.Logs.ByDate(uid, date)
	if err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No health data found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch health data"})
		return
	}

	c.JSON(http.StatusOK, lg)
}

// GET /api/health/history?days=30 — recent daily logs merged with that
// window's activities.
func (h *HealthController) GetHealthHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	days := 30
	if q := c.Query("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive number"})
			return
		}
		days = n
	}

	history, err := h.Logs.History(uid, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// GET /api/health/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *HealthController) GetHealthByRange(c *gin.Context) {
	uid := c.GetUint("userID")

	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start and end dates required"})
		return
	}

	logs, err := h.Logs.Range(uid, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch health data"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
