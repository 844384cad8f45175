// controllers/analytics_controller.go
package controllers

import (
	"net/http"

	"vitalsync/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GET /api/analytics/weekly — last 7 logged days
func (h *AnalyticsController) GetWeeklyAnalytics(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := h.Svc.Overview(uid, 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/analytics/monthly — last 30 logged days
func (h *AnalyticsController) GetMonthlyAnalytics(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := h.Svc.Overview(uid, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, out)
}
