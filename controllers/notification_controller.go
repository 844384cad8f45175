package controllers

import (
	"net/http"

	"vitalsync/config"
	"vitalsync/models"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications
func GetNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// PUT /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	var notification models.Notification
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	notification.IsRead = true
	if err := config.DB.Save(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read", "data": notification})
}
