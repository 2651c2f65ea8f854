package sdkerrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/cdiscount-sdk/pkg/sdkerrors"
)

func TestNewAPIErrorFromResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantTraceID string
		wantDetails any
		wantBody    string
	}{
		{
			name:        "title wins",
			status:      http.StatusBadRequest,
			body:        `{"title":"Bad input","error_description":"desc","detail":"det","traceId":"abc","errors":{"field":["bad"]}}`,
			wantMessage: "Bad input",
			wantTraceID: "abc",
			wantDetails: map[string]any{"field": []any{"bad"}},
			wantBody:    `{"title":"Bad input","error_description":"desc","detail":"det","traceId":"abc","errors":{"field":["bad"]}}`,
		},
		{
			name:        "error_description when no title",
			status:      http.StatusForbidden,
			body:        `{"error_description":"forbidden seller","detail":"det"}`,
			wantMessage: "forbidden seller",
			wantBody:    `{"error_description":"forbidden seller","detail":"det"}`,
		},
		{
			name:        "detail as last field",
			status:      http.StatusNotFound,
			body:        `{"detail":"order not found"}`,
			wantMessage: "order not found",
			wantBody:    `{"detail":"order not found"}`,
		},
		{
			name:        "empty body",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "API request failed",
			wantBody:    "{}",
		},
		{
			name:        "non JSON body",
			status:      http.StatusBadGateway,
			body:        "<html>gateway</html>",
			wantMessage: "API request failed",
			wantBody:    "<html>gateway</html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := sdkerrors.NewAPIErrorFromResponse(tt.status, []byte(tt.body))

			assert.Equal(t, tt.wantMessage, err.Message)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.wantTraceID, err.TraceID)
			assert.Equal(t, tt.wantDetails, err.Details)
			assert.Equal(t, tt.wantBody, string(err.Body))
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestAPIError_StatusHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, sdkerrors.NewAPIErrorFromResponse(http.StatusUnauthorized, nil).IsUnauthorized())
	assert.True(t, sdkerrors.NewAPIErrorFromResponse(http.StatusNotFound, nil).IsNotFound())
	assert.False(t, sdkerrors.NewAPIErrorFromResponse(http.StatusConflict, nil).IsNotFound())
}

func TestAPIError_NetworkFailureUnwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := sdkerrors.NewAPIError("Request failed: connection refused", 0, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "api error: Request failed: connection refused", err.Error())
	assert.Equal(t, 0, sdkerrors.StatusCode(err))
}

func TestAuthenticationError(t *testing.T) {
	t.Parallel()

	err := sdkerrors.NewAuthenticationError("invalid_client", http.StatusUnauthorized, nil)
	wrapped := fmt.Errorf("acquiring token: %w", err)

	var authErr *sdkerrors.AuthenticationError
	require.ErrorAs(t, wrapped, &authErr)
	assert.Equal(t, "invalid_client", authErr.Message)
	assert.Equal(t, http.StatusUnauthorized, sdkerrors.StatusCode(wrapped))
	assert.Equal(t, "authentication error: invalid_client (status 401)", err.Error())

	var apiErr *sdkerrors.APIError
	assert.False(t, errors.As(wrapped, &apiErr))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := sdkerrors.NewValidationError("", nil)
	assert.Equal(t, "Validation failed", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.False(t, err.HasErrors())

	err.Add("orderId", "is required")
	err.Add("orderId", "must be numeric")
	assert.True(t, err.HasErrors())
	assert.Equal(t, []string{"is required", "must be numeric"}, err.Errors["orderId"])
	assert.Contains(t, err.Error(), "orderId")
}

func TestConfigurationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("client_id is required")
	err := sdkerrors.NewConfigurationError("invalid configuration", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(
		t,
		"configuration error: invalid configuration: client_id is required",
		err.Error(),
	)
	assert.Equal(t, 0, sdkerrors.StatusCode(err))
}

func TestAsSDKError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantOK     bool
		wantStatus int
	}{
		{
			name:       "api error",
			err:        sdkerrors.NewAPIErrorFromResponse(http.StatusTeapot, nil),
			wantOK:     true,
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("op: %w", sdkerrors.NewValidationError("bad", nil)),
			wantOK:     true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base, ok := sdkerrors.AsSDKError(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantStatus, base.StatusCode)
			}
		})
	}
}
