package controllers

import (
	"net/http"

	"vitalsync/config"
	"vitalsync/models"
	"vitalsync/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	resp := gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"age":    user.Age,
		"gender": user.Gender,
		"height": user.Height,
		"weight": user.Weight,
	}
	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		resp["bmi"] = bmi
		resp["bmiCategory"] = utils.BMICategory(bmi)
	}

	c.JSON(http.StatusOK, resp)
}

type UpdateProfileInput struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user": gin.H{
			"id":     user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"age":    user.Age,
			"gender": user.Gender,
			"height": user.Height,
			"weight": user.Weight,
		},
	})
}
