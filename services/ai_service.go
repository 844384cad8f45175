package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"
)

const groqChatURL = "https://api.groq.com/openai/v1/chat/completions"

type AIService struct {
	db     *gorm.DB
	client *http.Client
	apiKey string
	model  string
	apiURL string
}

func NewAIService(db *gorm.DB) *AIService {
	return &AIService{
		db:     db,
		client: &http.Client{Timeout: 20 * time.Second},
		apiKey: os.Getenv("GROQ_API_KEY"),
		model:  "llama-3.1-8b-instant",
		apiURL: groqChatURL,
	}
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type WeeklySummary struct {
	SummaryText     string           `json:"summaryText"`
	SleepAdvice     string           `json:"sleepAdvice"`
	Status          string           `json:"status"` // Recovered | Improving | Needs Attention
	Trend           string           `json:"trend"`  // Positive | Neutral | Negative
	Recommendations []Recommendation `json:"recommendations"`

	AvgSteps int     `json:"avgSteps"`
	AvgSleep float64 `json:"avgSleep"`
}

// CleanModelJSON strips markdown code fences the model tends to wrap its
// JSON in, despite being told not to.
func CleanModelJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// WeeklySummary aggregates the last 7 daily logs and asks the model for a
// UI-ready summary. The model's output is opaque: it may fail or return
// malformed JSON, both surface as errors without leaking the raw response
// to the caller.
func (a *AIService) WeeklySummary(userID uint) (*WeeklySummary, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY not set")
	}

	logs, err := NewHealthLogService(a.db).Recent(userID, 7)
	if err != nil {
		return nil, fmt.Errorf("db error fetching logs: %w", err)
	}

	var stepSum int
	var sleepSum float64
	for _, lg := range logs {
		stepSum += lg.Steps
		sleepSum += lg.SleepDuration
	}
	n := len(logs)
	if n == 0 {
		n = 1
	}
	avgSteps := int(math.Round(float64(stepSum) / float64(n)))
	avgSleep := math.Round(sleepSum/float64(n)*10) / 10

	prompt := fmt.Sprintf(`User health data (last 7 days):
- Average steps per day: %d
- Average sleep hours: %.1f

Return ONLY valid JSON. No markdown. No explanations.

{
  "summaryText": "2 line weekly health summary",
  "sleepAdvice": "1 sleep improvement advice",
  "status": "Recovered | Improving | Needs Attention",
  "trend": "Positive | Neutral | Negative",
  "recommendations": [
    { "title": "Short title", "description": "Short description" },
    { "title": "Short title", "description": "Short description" }
  ]
}`, avgSteps, avgSleep)

	raw, err := a.chat(prompt)
	if err != nil {
		return nil, err
	}

	var out WeeklySummary
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &out); err != nil {
		return nil, fmt.Errorf("ai returned invalid JSON: %w", err)
	}
	out.AvgSteps = avgSteps
	out.AvgSleep = avgSleep

	return &out, nil
}

// chat runs one user prompt through the Groq chat-completions endpoint and
// returns the assistant text.
func (a *AIService) chat(prompt string) (string, error) {
	body := map[string]any{
		"model": a.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.8,
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequest("POST", a.apiURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create ai request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read ai response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("ai api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("ai api error (%d)", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode ai response error: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty ai response")
	}
	return out.Choices[0].Message.Content, nil
}
