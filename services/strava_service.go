package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"vitalsync/models"

	"gorm.io/gorm"
)

const (
	stravaAuthURL       = "https://www.strava.com/oauth/authorize"
	stravaTokenURL      = "https://www.strava.com/oauth/token"
	stravaActivitiesURL = "https://www.strava.com/api/v3/athlete/activities"

	defaultWeightKg = 70   // used when the athlete's weight is unknown
	stepsPerKm      = 1312 // walking/running steps per kilometer
)

type StravaService struct {
	db           *gorm.DB
	client       *http.Client
	clientID     string
	clientSecret string
	redirectURI  string

	tokenURL      string
	activitiesURL string
}

func NewStravaService(db *gorm.DB) *StravaService {
	return &StravaService{
		db:            db,
		client:        &http.Client{Timeout: 15 * time.Second},
		clientID:      os.Getenv("STRAVA_CLIENT_ID"),
		clientSecret:  os.Getenv("STRAVA_CLIENT_SECRET"),
		redirectURI:   os.Getenv("STRAVA_REDIRECT_URI"),
		tokenURL:      stravaTokenURL,
		activitiesURL: stravaActivitiesURL,
	}
}

// AuthorizeURL builds the OAuth consent URL. The user id rides along in
// state so the callback can attribute the grant.
func (s *StravaService) AuthorizeURL(userID uint) string {
	q := url.Values{}
	q.Set("client_id", s.clientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", s.redirectURI)
	q.Set("scope", "activity:read_all")
	q.Set("state", fmt.Sprintf("%d", userID))
	return stravaAuthURL + "?" + q.Encode()
}

type stravaTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	Athlete      struct {
		ID int64 `json:"id"`
	} `json:"athlete"`
}

func (s *StravaService) exchangeToken(payload map[string]string) (*stravaTokenResponse, error) {
	b, _ := json.Marshal(payload)
	resp, err := s.client.Post(s.tokenURL, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("strava token request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read strava token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("strava token error (%d)", resp.StatusCode)
	}

	var tr stravaTokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("decode strava token response: %w", err)
	}
	return &tr, nil
}

// HandleCallback exchanges the OAuth code and stores the tokens on the user.
func (s *StravaService) HandleCallback(userID uint, code string) error {
	tr, err := s.exchangeToken(map[string]string{
		"client_id":     s.clientID,
		"client_secret": s.clientSecret,
		"code":          code,
		"grant_type":    "authorization_code",
	})
	if err != nil {
		return err
	}

	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"strava_access_token":  tr.AccessToken,
			"strava_refresh_token": tr.RefreshToken,
			"strava_expires_at":    tr.ExpiresAt,
			"strava_athlete_id":    tr.Athlete.ID,
		}).Error
}

// ensureValidToken returns a usable access token, refreshing and persisting
// it first when the stored one has expired.
func (s *StravaService) ensureValidToken(user *models.User) (string, error) {
	now := time.Now().Unix()
	if user.StravaExpiresAt > now {
		return user.StravaAccessToken, nil
	}

	tr, err := s.exchangeToken(map[string]string{
		"client_id":     s.clientID,
		"client_secret": s.clientSecret,
		"grant_type":    "refresh_token",
		"refresh_token": user.StravaRefreshToken,
	})
	if err != nil {
		return "", err
	}

	user.StravaAccessToken = tr.AccessToken
	user.StravaRefreshToken = tr.RefreshToken
	user.StravaExpiresAt = tr.ExpiresAt
	if err := s.db.Save(user).Error; err != nil {
		return "", err
	}
	return tr.AccessToken, nil
}

type stravaActivity struct {
	ID             int64   `json:"id"`
	Type           string  `json:"type"`
	MovingTime     int     `json:"moving_time"` // seconds
	Distance       float64 `json:"distance"`    // meters
	AvgHeartRate   float64 `json:"average_heartrate"`
	MaxHeartRate   float64 `json:"max_heartrate"`
	StartDate      string  `json:"start_date"`
	StartDateLocal string  `json:"start_date_local"`
}

// metFor approximates activity intensity for calorie estimates.
func metFor(actType string) float64 {
	switch actType {
	case "Run":
		return 8
	case "Walk", "Hike":
		return 3.5
	case "Ride":
		return 6
	default:
		return 3
	}
}

// EstimateCalories converts duration at a MET intensity into kcal for the
// given body weight.
func EstimateCalories(met, weightKg, durationMin float64) int {
	return int(math.Round(met * weightKg * (durationMin / 60)))
}

// EstimateSteps derives a step count from distance for on-foot activities;
// everything else contributes zero steps.
func EstimateSteps(actType string, distanceKm float64) int {
	if actType == "Run" || actType == "Walk" {
		return int(math.Round(distanceKm * stepsPerKm))
	}
	return 0
}

// SyncActivities imports the athlete's recent activities, upserting each by
// Strava id and rolling the per-date totals up into daily health logs with
// source=strava. Returns the number of days touched.
func (s *StravaService) SyncActivities(userID uint) (int, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return 0, err
	}
	if user.StravaRefreshToken == "" {
		return 0, fmt.Errorf("strava not connected")
	}

	accessToken, err := s.ensureValidToken(&user)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest("GET", s.activitiesURL+"?per_page=50", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("strava activities request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read strava activities: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("strava activities error (%d)", resp.StatusCode)
	}

	var activities []stravaActivity
	if err := json.Unmarshal(body, &activities); err != nil {
		return 0, fmt.Errorf("decode strava activities: %w", err)
	}

	weight := user.Weight
	if weight <= 0 {
		weight = defaultWeightKg
	}

	type dayTotals struct {
		steps    int
		distance float64
		calories int
		hrSum    float64
		hrCount  int
	}
	daily := map[string]*dayTotals{}

	for _, act := range activities {
		startTime, err := time.Parse(time.RFC3339, act.StartDate)
		if err != nil {
			log.Printf("strava: skipping activity %d, bad start_date %q: %v", act.ID, act.StartDate, err)
			continue
		}

		date := act.StartDateLocal
		if len(date) >= 10 {
			date = date[:10]
		}
		durationMin := float64(act.MovingTime) / 60
		distanceKm := act.Distance / 1000

		calories := EstimateCalories(metFor(act.Type), weight, durationMin)
		steps := EstimateSteps(act.Type, distanceKm)

		d := daily[date]
		if d == nil {
			d = &dayTotals{}
			daily[date] = d
		}
		d.steps += steps
		d.distance += distanceKm
		d.calories += calories
		if act.AvgHeartRate > 0 {
			d.hrSum += act.AvgHeartRate
			d.hrCount++
		}

		imported := models.Activity{
			UserID:           userID,
			Source:           "strava",
			StravaActivityID: act.ID,
			Type:             act.Type,
			DurationMin:      int(math.Round(durationMin)),
			DistanceKm:       distanceKm,
			Steps:            steps,
			AvgHeartRate:     int(math.Round(act.AvgHeartRate)),
			MaxHeartRate:     int(math.Round(act.MaxHeartRate)),
			CaloriesBurned:   float64(calories),
			StartTime:        startTime,
		}
		if err := s.db.
			Where("strava_activity_id = ?", act.ID).
			Assign(imported).
			FirstOrCreate(&imported).Error; err != nil {
			return 0, err
		}
	}

	logSvc := NewHealthLogService(s.db)
	for date, d := range daily {
		hr := 0
		if d.hrCount > 0 {
			hr = int(math.Round(d.hrSum / float64(d.hrCount)))
		}
		err := logSvc.MergeActivityTotals(userID, date,
			d.steps, math.Round(d.distance*100)/100, d.calories, hr, "strava")
		if err != nil {
			return 0, err
		}
	}

	return len(daily), nil
}
