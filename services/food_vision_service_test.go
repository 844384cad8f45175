package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeImageFallsBackWithoutAPIKey(t *testing.T) {
	svc := &FoodVisionService{client: &http.Client{Timeout: time.Second}}

	out, usedFallback := svc.AnalyzeImage("data:image/jpeg;base64,AAAA")
	require.NotNil(t, out)
	assert.True(t, usedFallback)
	assert.True(t, out.Identified)
	assert.Equal(t, 250.0, out.TotalCalories)
	require.Len(t, out.FoodItems, 1)
	assert.NotEmpty(t, out.Warnings)
}
