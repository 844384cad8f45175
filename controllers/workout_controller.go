package controllers

import (
	"net/http"

	"vitalsync/config"
	"vitalsync/models"

	"github.com/gin-gonic/gin"
)

// POST /api/workouts
func AddWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Type           string  `json:"type"`
		Duration       int     `json:"duration"`
		CaloriesBurned float64 `json:"caloriesBurned"`
		Date           string  `json:"date"`
		Source         string  `json:"source"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Type == "" || body.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type and date are required"})
		return
	}

	workout := models.Workout{
		UserID:         uid,
		Type:           body.Type,
		DurationMin:    body.Duration,
		CaloriesBurned: body.CaloriesBurned,
		Date:           body.Date,
		Source:         body.Source,
	}
	if err := config.DB.Create(&workout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add workout"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Workout added successfully", "data": workout})
}

// GET /api/workouts
func GetWorkouts(c *gin.Context) {
	uid := c.GetUint("userID")

	var workouts []models.Workout
	if err := config.DB.Where("user_id = ?", uid).Order("date DESC").Find(&workouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workouts"})
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// DELETE /api/workouts/:id
func DeleteWorkout(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Workout{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}
