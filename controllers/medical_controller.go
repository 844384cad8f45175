package controllers

import (
	"errors"
	"net/http"
	"time"

	"vitalsync/config"
	"vitalsync/models"
	"vitalsync/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/medical
func GetMedicalProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var profile models.MedicalProfile
	err := config.DB.Where("user_id = ?", uid).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, nil) // clean UX: no profile yet
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medical profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type medicalInput struct {
	Conditions   []string             `json:"conditions"`
	Medications  []models.Medication  `json:"medications"`
	Vaccinations []models.Vaccination `json:"vaccinations"`
}

// POST /api/medical — upsert the whole profile document.
func UpsertMedicalProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var body medicalInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile models.MedicalProfile
	err := config.DB.Where("user_id = ?", uid).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.MedicalProfile{UserID: uid}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save medical profile"})
		return
	}

	profile.Conditions = body.Conditions
	profile.Medications = body.Medications
	profile.Vaccinations = body.Vaccinations

	if err := config.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save medical profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medical profile saved successfully", "data": profile})
}

// POST /api/medical/reports — upload a base64 report file to S3 and append
// its URL to the profile.
func UploadMedicalReport(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Title      string `json:"title" binding:"required"`
		FileBase64 string `json:"file_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	url, err := utils.UploadBase64FileToS3(body.FileBase64, "medical-reports")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload report"})
		return
	}

	var profile models.MedicalProfile
	err = config.DB.Where("user_id = ?", uid).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.MedicalProfile{UserID: uid}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	profile.Reports = append(profile.Reports, models.MedicalReport{
		Title:      body.Title,
		FileURL:    url,
		UploadedAt: time.Now(),
	})

	if err := config.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report uploaded", "fileUrl": url})
}
