package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scholarship/auth"
	"scholarship/engine"
	"scholarship/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(roles []repository.Permission) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected/:application_id", AuthMiddleware(roles), func(c *gin.Context) {
		applicationId, ok := pathId(c, "application_id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"actor": actorId(c), "application": applicationId})
	})
	return r
}

func tokenFor(t *testing.T, id int, permissions ...repository.Permission) string {
	token, err := auth.CreateToken(&repository.User{ID: id, Permissions: permissions})
	require.NoError(t, err)
	return token
}

func get(r *gin.Engine, path string, header string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "auth", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRequiresToken(t *testing.T) {
	w := get(testRouter(nil), "/protected/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(testRouter(nil), "/protected/1", "Bearer not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareChecksRoles(t *testing.T) {
	r := testRouter([]repository.Permission{repository.PermissionCommittee})

	w := get(r, "/protected/42", "Bearer "+tokenFor(t, 7, repository.PermissionReviewer), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(r, "/protected/42", "Bearer "+tokenFor(t, 3, repository.PermissionCommittee), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"actor": 3, "application": 42}`, w.Body.String())
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	w := get(testRouter(nil), "/protected/5", "", tokenFor(t, 9, repository.PermissionStudent))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"actor": 9, "application": 5}`, w.Body.String())
}

func TestPathIdRejectsGarbage(t *testing.T) {
	w := get(testRouter(nil), "/protected/abc", "Bearer "+tokenFor(t, 1), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewCreateToSubmission(t *testing.T) {
	score := 0
	submission := ReviewCreate{Score: &score, Decision: engine.DecisionFail, Comment: "incomplete"}.toSubmission(42, 7)
	assert.Equal(t, engine.ReviewSubmission{ApplicationID: 42, ReviewerID: 7, Score: 0, Decision: engine.DecisionFail, Comment: "incomplete"}, submission)
}

func TestApplicationResponse(t *testing.T) {
	submittedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	application := &repository.Application{
		ID:            42,
		StudentID:     5,
		ScholarshipID: 2,
		Status:        engine.StatusAssigned,
		Cgpa:          decimal.NewNullDecimal(decimal.RequireFromString("3.2")),
		Programme:     "Physics",
		SubmittedAt:   submittedAt,
	}
	response := toApplicationResponse(application)
	assert.Equal(t, 42, response.Id)
	assert.Equal(t, engine.StatusAssigned, response.Status)
	require.NotNil(t, response.Cgpa)
	assert.Equal(t, "3.2", response.Cgpa.String())
	assert.Nil(t, response.HouseholdIncome)
	assert.Nil(t, response.Scholarship)
	assert.Nil(t, toApplicationResponse(nil))
}
