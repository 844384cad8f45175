package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type FoodVisionService struct {
	client *http.Client
	apiKey string
	model  string
}

func NewFoodVisionService() *FoodVisionService {
	return &FoodVisionService{
		client: &http.Client{Timeout: 30 * time.Second}, // vision calls are slow
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  "gemini-1.5-flash-latest",
	}
}

type FoodItemEstimate struct {
	Name     string  `json:"name"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

type FoodAnalysis struct {
	Identified    bool               `json:"identified"`
	Error         string             `json:"error,omitempty"`
	FoodItems     []FoodItemEstimate `json:"foodItems,omitempty"`
	TotalCalories float64            `json:"totalCalories,omitempty"`
	TotalProtein  float64            `json:"totalProtein,omitempty"`
	TotalCarbs    float64            `json:"totalCarbs,omitempty"`
	TotalFat      float64            `json:"totalFat,omitempty"`
	MealType      string             `json:"mealType,omitempty"` // breakfast | lunch | dinner | snack
	HealthScore   int                `json:"healthScore,omitempty"`
	HealthTip     string             `json:"healthTip,omitempty"`
	Warnings      []string           `json:"warnings,omitempty"`
}

const foodVisionPrompt = `Analyze this food image and provide nutritional information.

Return ONLY valid JSON. No markdown. No explanations.

{
  "identified": true,
  "foodItems": [
    {
      "name": "Food item name",
      "portion": "Estimated portion size (e.g., 1 cup, 200g)",
      "calories": 250,
      "protein": 12,
      "carbs": 30,
      "fat": 8,
      "fiber": 3
    }
  ],
  "totalCalories": 250,
  "totalProtein": 12,
  "totalCarbs": 30,
  "totalFat": 8,
  "mealType": "breakfast | lunch | dinner | snack",
  "healthScore": 7,
  "healthTip": "A brief health tip about this meal",
  "warnings": ["Any dietary warnings like high sodium, etc."]
}

If the image is not food or unrecognizable, return:
{
  "identified": false,
  "error": "Could not identify food in the image"
}`

// fallbackEstimate is returned when the vision model is unavailable or its
// output cannot be parsed, so the client always gets a usable shape.
func fallbackEstimate() *FoodAnalysis {
	return &FoodAnalysis{
		Identified: true,
		FoodItems: []FoodItemEstimate{{
			Name:     "Estimated Food Item",
			Portion:  "1 serving (approx 150g)",
			Calories: 250,
			Protein:  10,
			Carbs:    35,
			Fat:      8,
			Fiber:    3,
		}},
		TotalCalories: 250,
		TotalProtein:  10,
		TotalCarbs:    35,
		TotalFat:      8,
		MealType:      "snack",
		HealthScore:   6,
		HealthTip:     "AI analysis unavailable. Please verify nutrition information manually for accuracy.",
		Warnings:      []string{"Estimated values - actual nutrition may vary"},
	}
}

// AnalyzeImage estimates the nutrition in a base64-encoded food photo.
// The second return value reports whether the fallback estimate was used.
func (s *FoodVisionService) AnalyzeImage(imageBase64 string) (*FoodAnalysis, bool) {
	// strip a data URL prefix if the client sent one
	if i := strings.Index(imageBase64, ","); i >= 0 && strings.HasPrefix(imageBase64, "data:") {
		imageBase64 = imageBase64[i+1:]
	}

	out, err := s.generate(imageBase64)
	if err != nil {
		log.Printf("food vision failed, using fallback estimate: %v", err)
		return fallbackEstimate(), true
	}
	return out, false
}

func (s *FoodVisionService) generate(imageBase64 string) (*FoodAnalysis, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	body := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]any{
				{"text": foodVisionPrompt},
				{"inline_data": map[string]string{
					"mime_type": "image/jpeg",
					"data":      imageBase64,
				}},
			},
		}},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	u := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		s.model, s.apiKey,
	)

	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read vision response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision api error (%d)", resp.StatusCode)
	}

	var gr struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &gr); err != nil {
		return nil, fmt.Errorf("decode vision response error: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty vision response")
	}

	var out FoodAnalysis
	if err := json.Unmarshal([]byte(CleanModelJSON(gr.Candidates[0].Content.Parts[0].Text)), &out); err != nil {
		return nil, fmt.Errorf("vision returned invalid JSON: %w", err)
	}
	return &out, nil
}
