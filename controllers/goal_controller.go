package controllers

import (
	"net/http"

	"vitalsync/config"
	"vitalsync/models"

	"github.com/gin-gonic/gin"
)

type goalInput struct {
	Type         string  `json:"type"`
	TargetValue  float64 `json:"targetValue"`
	CurrentValue float64 `json:"currentValue"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Status       string  `json:"status"`
}

// POST /api/goals
func CreateGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body goalInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Type == "" || body.TargetValue == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type and target value required"})
		return
	}

	goal := models.Goal{
		UserID:      uid,
		Type:        body.Type,
		TargetValue: body.TargetValue,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Goal created successfully", "data": goal})
}

// GET /api/goals
func GetGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	var goals []models.Goal
	if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// PUT /api/goals/:id
func UpdateGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	var goal models.Goal
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	var body goalInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Type != "" {
		goal.Type = body.Type
	}
	if body.TargetValue > 0 {
		goal.TargetValue = body.TargetValue
	}
	if body.CurrentValue > 0 {
		goal.CurrentValue = body.CurrentValue
	}
	if body.StartDate != "" {
		goal.StartDate = body.StartDate
	}
	if body.EndDate != "" {
		goal.EndDate = body.EndDate
	}
	if body.Status != "" {
		goal.Status = body.Status
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal updated successfully", "data": goal})
}

// DELETE /api/goals/:id
func DeleteGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Goal{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
