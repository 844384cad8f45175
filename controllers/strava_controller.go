package controllers

import (
	"net/http"
	"strconv"

	"vitalsync/services"

	"github.com/gin-gonic/gin"
)

type StravaController struct {
	Svc *services.StravaService
}

func NewStravaController(svc *services.StravaService) *StravaController {
	return &StravaController{Svc: svc}
}

// GET /api/strava/connect — redirect the user to Strava's consent page.
func (s *StravaController) Connect(c *gin.Context) {
	uid := c.GetUint("userID")
	c.Redirect(http.StatusFound, s.Svc.AuthorizeURL(uid))
}

// GET /api/strava/callback?code=...&state=<userID>
// Strava calls this without our bearer token, so the user id comes back in
// the OAuth state parameter.
func (s *StravaController) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code or state"})
		return
	}

	uid, err := strconv.ParseUint(state, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state"})
		return
	}

	if err := s.Svc.HandleCallback(uint(uid), code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Strava OAuth failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Strava connected successfully"})
}

// POST /api/strava/sync
func (s *StravaController) Sync(c *gin.Context) {
	uid := c.GetUint("userID")

	days, err := s.Svc.SyncActivities(uid)
	if err != nil {
		if err.Error() == "strava not connected" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Strava not connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Strava sync failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Strava synced successfully", "days": days})
}
