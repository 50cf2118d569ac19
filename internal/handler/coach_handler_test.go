package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifecoach/internal/coach"
	"lifecoach/internal/model"
	"lifecoach/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeCoach struct {
	problems        []model.Problem
	recommendations []model.Recommendation
	err             error

	gotFeeling  string
	gotTroubles string
	gotChanges  string
	gotProblems []model.Problem
}

func (f *fakeCoach) Analyze(ctx context.Context, feeling, troubles, changes string) ([]model.Problem, error) {
	f.gotFeeling, f.gotTroubles, f.gotChanges = feeling, troubles, changes
	return f.problems, f.err
}

func (f *fakeCoach) Recommend(ctx context.Context, problems []model.Problem) ([]model.Recommendation, error) {
	f.gotProblems = problems
	return f.recommendations, f.err
}

func newTestRouter(c Coach) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewCoachHandler(c))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	return res.Detail
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeCoach{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, map[string]string{"status": "ok"}, res)
}

func TestAnalyze_Success(t *testing.T) {
	fake := &fakeCoach{
		problems: []model.Problem{
			{ID: 1, Title: "Work Stress", Description: "Too much workload"},
			{ID: 2, Title: "Sleep Issues", Description: "Cannot sleep well"},
			{ID: 3, Title: "Social Isolation", Description: "Lack of friends"},
		},
	}
	r := newTestRouter(fake)

	for _, path := range []string{"/analyze", "/api/analyze"} {
		w := doRequest(r, "POST", path, `{"feeling":"stressed","troubles":"work","changes":"relaxation"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var res AnalyzeResponse
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, 3, len(res.Problems))
		assert.Equal(t, "Work Stress", res.Problems[0].Title)
	}

	assert.Equal(t, "stressed", fake.gotFeeling)
	assert.Equal(t, "work", fake.gotTroubles)
	assert.Equal(t, "relaxation", fake.gotChanges)
}

func TestAnalyze_EmptyStringsAccepted(t *testing.T) {
	fake := &fakeCoach{problems: []model.Problem{{ID: 1}, {ID: 2}, {ID: 3}}}
	r := newTestRouter(fake)

	w := doRequest(r, "POST", "/analyze", `{"feeling":"","troubles":"","changes":""}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyze_ValidationError(t *testing.T) {
	r := newTestRouter(&fakeCoach{err: &coach.ValidationError{Message: "Expected exactly 3 problems, got 2"}})

	w := doRequest(r, "POST", "/analyze", `{"feeling":"stressed","troubles":"work","changes":"relaxation"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Expected exactly 3 problems, got 2", decodeDetail(t, w))
}

func TestAnalyze_ParseErrorIsServerError(t *testing.T) {
	r := newTestRouter(&fakeCoach{err: &coach.ResponseParseError{Err: errors.New("invalid character 'T'")}})

	w := doRequest(r, "POST", "/analyze", `{"feeling":"stressed","troubles":"work","changes":"relaxation"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, analyzeFailedMessage, decodeDetail(t, w))
}

func TestAnalyze_ServiceErrorHidesDetail(t *testing.T) {
	r := newTestRouter(&fakeCoach{err: &llm.ServiceError{Provider: "anthropic", Err: errors.New("invalid x-api-key")}})

	w := doRequest(r, "POST", "/analyze", `{"feeling":"stressed","troubles":"work","changes":"relaxation"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to analyze problems. Please try again later.", decodeDetail(t, w))
	assert.Equal(t, false, strings.Contains(w.Body.String(), "x-api-key"))
}

func TestAnalyze_MissingFields(t *testing.T) {
	fake := &fakeCoach{}
	r := newTestRouter(fake)

	w := doRequest(r, "POST", "/analyze", `{"feeling":"stressed","troubles":"work"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, true, strings.Contains(strings.ToLower(decodeDetail(t, w)), "changes"))
	assert.Equal(t, "", fake.gotFeeling)
}

func TestAnalyze_EmptyBody(t *testing.T) {
	r := newTestRouter(&fakeCoach{})

	w := doRequest(r, "POST", "/analyze", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRecommend_Success(t *testing.T) {
	fake := &fakeCoach{
		recommendations: []model.Recommendation{
			{ProblemID: 1, Advice: "Take regular breaks during work"},
			{ProblemID: 2, Advice: "Keep a consistent sleep schedule"},
			{ProblemID: 3, Advice: "Join a local club"},
		},
	}
	r := newTestRouter(fake)

	w := doRequest(r, "POST", "/api/recommend", `{"problems":[
		{"id":1,"title":"Work Stress","description":"Too much workload"},
		{"id":2,"title":"Sleep Issues","description":"Cannot sleep well"},
		{"id":3,"title":"Social Isolation","description":"Lack of friends"}
	]}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res RecommendResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 3, len(res.Recommendations))
	assert.Equal(t, "Take regular breaks during work", res.Recommendations[0].Advice)

	assert.Equal(t, 3, len(fake.gotProblems))
	assert.Equal(t, model.Problem{ID: 2, Title: "Sleep Issues", Description: "Cannot sleep well"}, fake.gotProblems[1])
}

func TestRecommend_ValidationError(t *testing.T) {
	r := newTestRouter(&fakeCoach{err: &coach.ValidationError{Message: "Recommendation missing required fields"}})

	w := doRequest(r, "POST", "/recommend", `{"problems":[{"id":1,"title":"Test","description":"Test"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Recommendation missing required fields", decodeDetail(t, w))
}

func TestRecommend_ServerError(t *testing.T) {
	r := newTestRouter(&fakeCoach{err: errors.New("connection reset")})

	w := doRequest(r, "POST", "/recommend", `{"problems":[{"id":1,"title":"Test","description":"Test"}]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, recommendFailedMessage, decodeDetail(t, w))
}

func TestRecommend_MissingProblems(t *testing.T) {
	r := newTestRouter(&fakeCoach{})

	w := doRequest(r, "POST", "/recommend", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRecommend_InvalidProblemStructure(t *testing.T) {
	r := newTestRouter(&fakeCoach{})

	w := doRequest(r, "POST", "/recommend", `{"problems":[{"id":1,"title":"Test"}]}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRecommend_EmptyProblemsList(t *testing.T) {
	fake := &fakeCoach{}
	r := newTestRouter(fake)

	w := doRequest(r, "POST", "/recommend", `{"problems":[]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"recommendations":[]}`, w.Body.String())
	assert.Equal(t, 0, len(fake.gotProblems))
}
