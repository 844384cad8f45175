package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 75)
	require.NoError(t, err)
	assert.InDelta(t, 23.15, bmi, 0.01)

	_, err = CalculateBMI(0, 75)
	assert.Error(t, err)
	_, err = CalculateBMI(180, -5)
	assert.Error(t, err)
	_, err = CalculateBMI(300, 75)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25.0, "Overweight"},
		{30.0, "Obese"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi))
	}
}

func TestGenerateRandomToken(t *testing.T) {
	token := GenerateRandomToken(6)
	assert.Len(t, token, 6)
	for _, c := range token {
		assert.Contains(t, tokenCharset, string(c))
	}
}

func TestGenerateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateJWT(42)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["userId"].(float64))
}
