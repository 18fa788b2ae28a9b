package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode string
	}{
		{
			name:     "validation error",
			err:      NewValidationError("title is required", nil),
			wantType: ErrorTypeValidation,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "not found error",
			err:      NewNotFoundError("task", "42"),
			wantType: ErrorTypeNotFound,
			wantCode: "NOT_FOUND",
		},
		{
			name:     "storage error",
			err:      NewStorageError("set tasks", fmt.Errorf("disk full")),
			wantType: ErrorTypeStorage,
			wantCode: "STORAGE_ERROR",
		},
		{
			name:     "weather error",
			err:      NewWeatherError("weather request failed", nil),
			wantType: ErrorTypeWeather,
			wantCode: "WEATHER_UNAVAILABLE",
		},
		{
			name:     "location error",
			err:      NewLocationError("all location strategies exhausted", nil),
			wantType: ErrorTypeLocation,
			wantCode: "LOCATION_UNAVAILABLE",
		},
		{
			name:     "credentials error",
			err:      NewCredentialsError(),
			wantType: ErrorTypeCredentials,
			wantCode: "INVALID_CREDENTIALS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.IsType(tt.wantType))
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.True(t, IsErrorType(tt.err, tt.wantType))
		})
	}
}

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewWeatherError("weather request failed", cause)

	assert.Contains(t, err.Error(), "weather request failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, err.Unwrap())
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("command failed: %w", NewLocationError("no location", nil))

	appErr, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.True(t, appErr.IsType(ErrorTypeLocation))

	_, ok = AsAppError(fmt.Errorf("plain error"))
	assert.False(t, ok)
}

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "Invalid credentials", GetUserMessage(NewCredentialsError()))
	assert.Equal(t, "title is required", GetUserMessage(NewValidationError("title is required", nil)))
	assert.Contains(t, GetUserMessage(NewWeatherError("bad gateway", nil)), "unavailable")
	assert.Equal(t, "plain", GetUserMessage(fmt.Errorf("plain")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewCredentialsError()))
	assert.True(t, ShouldLogError(NewStorageError("get", nil)))
	assert.True(t, ShouldLogError(NewWeatherError("down", nil)))
}
