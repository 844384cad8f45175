package controllers

import (
	"net/http"
	"time"

	"vitalsync/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	Svc *services.AIService
}

func NewAIController(svc *services.AIService) *AIController {
	return &AIController{Svc: svc}
}

// GET /api/ai/summary
func (a *AIController) GetAISummary(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := a.Svc.WeeklySummary(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI summary failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weeklyPulse": gin.H{
			"summaryText": out.SummaryText,
			"sleepAdvice": out.SleepAdvice,
			"updatedAt":   time.Now().UTC().Format(time.RFC3339),
		},
		"keyInsights": gin.H{
			"steps":    out.AvgSteps,
			"avgSleep": out.AvgSleep,
			"status":   out.Status,
			"trend":    out.Trend,
		},
		"recommendations": out.Recommendations,
	})
}
