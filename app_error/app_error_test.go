package app_error

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"scholarship/engine"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("application 1: %w", engine.ErrNotFound), http.StatusNotFound},
		{engine.ErrNotAssigned, http.StatusForbidden},
		{engine.ErrInvalidReviewer, http.StatusUnprocessableEntity},
		{engine.ErrAlreadySubmitted, http.StatusConflict},
		{fmt.Errorf("%w: %w: ACCEPT on ACCEPTED", engine.ErrAlreadyDecided, engine.ErrIllegalTransition), http.StatusConflict},
		{engine.ErrIllegalTransition, http.StatusConflict},
		{engine.ErrPrematureDecision, http.StatusConflict},
		{fmt.Errorf("%w: score out of range", engine.ErrValidation), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
		{New(errors.New("custom"), http.StatusTeapot), http.StatusTeapot},
		{New(engine.ErrNotFound, http.StatusGone), http.StatusGone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, Status(tc.err), tc.err.Error())
	}
}

func TestNewKeepsCause(t *testing.T) {
	err := New(engine.ErrNotFound, http.StatusGone)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, err)
	return w
}

func TestRespond(t *testing.T) {
	w := respond(fmt.Errorf("application 9: %w", engine.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "application 9: not found", body["error"])
}

func TestRespondHidesInternalErrors(t *testing.T) {
	w := respond(errors.New("pq: password authentication failed"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}
