package controllers

import (
	"net/http"

	"vitalsync/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Vision *services.FoodVisionService
	Logs   *services.HealthLogService
}

func NewFoodController(vision *services.FoodVisionService, logs *services.HealthLogService) *FoodController {
	return &FoodController{Vision: vision, Logs: logs}
}

// POST /api/food/analyze — estimate nutrition from a food photo.
func (f *FoodController) AnalyzeFoodImage(c *gin.Context) {
	var body struct {
		ImageBase64 string `json:"imageBase64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	analysis, usedFallback := f.Vision.AnalyzeImage(body.ImageBase64)

	resp := gin.H{"success": true, "data": analysis}
	if usedFallback {
		resp["fallback"] = true
	}
	c.JSON(http.StatusOK, resp)
}

type foodLogInput struct {
	Date string `json:"date"`
	Food struct {
		TotalCalories float64 `json:"totalCalories"`
	} `json:"foodData"`
}

// POST /api/food/log — fold an analyzed meal's calories into the day's log.
func (f *FoodController) LogFoodEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var body foodLogInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}

	if err := f.Logs.AddConsumedCalories(uid, body.Date, body.Food.TotalCalories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log food entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food entry logged successfully"})
}
