package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanModelJSON(tt.in))
		})
	}
}

func TestWeeklySummary(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "wes")
	createTestLog(t, db, user.ID, "2025-03-09", 6000, 0, 6)
	createTestLog(t, db, user.ID, "2025-03-10", 10000, 0, 8)

	// fenced output on purpose: the model wraps JSON despite instructions
	modelJSON := "```json\n" + `{
		"summaryText": "Solid week overall.",
		"sleepAdvice": "Keep a consistent bedtime.",
		"status": "Improving",
		"trend": "Positive",
		"recommendations": [
			{"title": "Walk more", "description": "Add a short evening walk."}
		]
	}` + "\n```"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "Average steps per day: 8000")
		assert.Contains(t, req.Messages[0].Content, "Average sleep hours: 7.0")

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": modelJSON}},
			},
		})
	}))
	defer srv.Close()

	svc := &AIService{
		db:     db,
		client: &http.Client{Timeout: 5 * time.Second},
		apiKey: "test-key",
		model:  "llama-3.1-8b-instant",
		apiURL: srv.URL,
	}

	out, err := svc.WeeklySummary(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solid week overall.", out.SummaryText)
	assert.Equal(t, "Improving", out.Status)
	assert.Equal(t, "Positive", out.Trend)
	require.Len(t, out.Recommendations, 1)
	assert.Equal(t, "Walk more", out.Recommendations[0].Title)
	assert.Equal(t, 8000, out.AvgSteps)
	assert.Equal(t, 7.0, out.AvgSleep)
}

func TestWeeklySummaryAPIError(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "err")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limit exceeded"},
		})
	}))
	defer srv.Close()

	svc := &AIService{
		db:     db,
		client: &http.Client{Timeout: 5 * time.Second},
		apiKey: "test-key",
		model:  "llama-3.1-8b-instant",
		apiURL: srv.URL,
	}

	_, err := svc.WeeklySummary(user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestWeeklySummaryInvalidModelJSON(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "bad")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "Sure! Here is your summary:"}},
			},
		})
	}))
	defer srv.Close()

	svc := &AIService{
		db:     db,
		client: &http.Client{Timeout: 5 * time.Second},
		apiKey: "test-key",
		model:  "llama-3.1-8b-instant",
		apiURL: srv.URL,
	}

	_, err := svc.WeeklySummary(user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestWeeklySummaryRequiresAPIKey(t *testing.T) {
	db := newTestDB(t)
	svc := &AIService{db: db}

	_, err := svc.WeeklySummary(1)
	require.Error(t, err)
}
