package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", NotFoundError("ride", "r1"), http.StatusNotFound, "NOT_FOUND"},
		{"wrapped conflict", fmt.Errorf("accept: %w", ConflictError("ride", "r1", "already accepted")), http.StatusConflict, "CONFLICT"},
		{"validation with details", ValidationError("ride", "bad", map[string]string{"from": "from is required"}), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"validation without details", ValidationError("message", "sender is not a participant", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleServiceError(c, tc.err)

			req.Equal(tc.status, rec.Code)
			var body APIResponse
			req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
			req.Equal(StatusError, body.Status)
			req.Equal(tc.code, body.Error.Code)
		})
	}
}

func TestAppError(t *testing.T) {
	req := require.New(t)

	err := NotFoundError("thread", "t1")

	req.True(IsNotFound(err))
	req.False(IsConflict(err))
	req.Equal("thread t1: thread not found", err.Error())
	req.Equal("ride: no seats left", ConflictError("ride", "", ErrNoSeatsLeft).Error())
}
