package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hirewise-backend/config"
	v1 "hirewise-backend/internal/delivery/http/v1"
	"hirewise-backend/internal/domain"
	"hirewise-backend/internal/store"
	"hirewise-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) (*apiClient, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(store.Deps{
		Scorer: store.ScorerFunc(func(domain.Job, domain.CandidateInfo) int { return 75 }),
	})
	cfg := &config.Config{
		FrontendURL:             "http://localhost:3000",
		RateLimitWindowSeconds:  60,
		RateLimitLoginThreshold: 100,
	}
	router := v1.NewRouter(v1.RouterDeps{
		SessionUC:     s,
		JobUC:         s,
		ApplicationUC: s,
		CandidateUC:   s,
		RecruiterUC:   s,
		AnalyticsUC:   usecase.NewAnalyticsUsecase(s),
		Config:        cfg,
	})
	return &apiClient{t: t, router: router}, s
}

func (a *apiClient) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (a *apiClient) login(email string, role domain.Role) {
	a.t.Helper()
	w, _ := a.do(http.MethodPost, "/v1/session", map[string]string{"email": email, "password": "secret", "role": string(role)})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHiringFlow(t *testing.T) {
	api, s := newAPI(t)

	// Recruiter posts a job
	api.login("rita@acme.io", domain.RoleRecruiter)
	w, env := api.do(http.MethodPost, "/v1/jobs", map[string]any{
		"title": "Backend Engineer", "description": "Build APIs", "department": "Engineering", "skills": []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode[domain.Job](t, env.Data)
	assert.Equal(t, domain.JobStatusActive, job.Status)
	assert.NotEmpty(t, job.CreatedBy)

	api.do(http.MethodDelete, "/v1/session", nil)

	// Candidate signs up and is logged in straight away
	w, env = api.do(http.MethodPost, "/v1/candidates", map[string]any{
		"name": "Cleo Park", "email": "cleo@mail.io", "skills": []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	candidate := decode[domain.Candidate](t, env.Data)
	assert.Equal(t, domain.RoleCandidate, s.CurrentSession(t.Context()).Role)

	w, env = api.do(http.MethodPost, "/v1/jobs/"+job.ID+"/apply", map[string]any{"resumeReference": "blob:cv-1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	app := decode[domain.Application](t, env.Data)
	assert.Equal(t, candidate.ID, app.CandidateID)
	assert.Equal(t, "Cleo Park", app.CandidateName)
	assert.Equal(t, 75, app.MatchScore)

	w, env = api.do(http.MethodGet, "/v1/candidates/"+candidate.ID+"/applications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Application](t, env.Data), 1)

	api.do(http.MethodDelete, "/v1/session", nil)

	// Logging back in by email finds the registered profile
	api.login("cleo@mail.io", domain.RoleCandidate)
	assert.Equal(t, candidate.ID, s.CurrentSession(t.Context()).User.ID)

	// Recruiter reviews and hires
	api.login("rita@acme.io", domain.RoleRecruiter)
	w, env = api.do(http.MethodGet, "/v1/jobs/"+job.ID+"/applications?sort=match_score", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Application](t, env.Data), 1)

	w, env = api.do(http.MethodPatch, "/v1/applications/"+app.ID, map[string]any{"status": "hired"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, domain.ApplicationStatusHired, decode[domain.Application](t, env.Data).Status)

	w, env = api.do(http.MethodGet, "/v1/analytics/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[domain.Stats](t, env.Data)
	assert.Equal(t, 1, stats.TotalJobs)
	assert.Equal(t, 75, stats.AvgMatchScore)

	w, _ = api.do(http.MethodGet, "/v1/analytics/report?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "Backend Engineer")
}

func TestErrorMapping(t *testing.T) {
	api, _ := newAPI(t)

	t.Run("logged out cannot post jobs", func(t *testing.T) {
		w, env := api.do(http.MethodPost, "/v1/jobs", map[string]any{"title": "T", "description": "D"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("candidates cannot post jobs", func(t *testing.T) {
		api.login("cleo@mail.io", domain.RoleCandidate)
		w, _ := api.do(http.MethodPost, "/v1/jobs", map[string]any{"title": "T", "description": "D"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("applying to a missing job is 404", func(t *testing.T) {
		api.login("cleo@mail.io", domain.RoleCandidate)
		w, _ := api.do(http.MethodPost, "/v1/jobs/missing-id/apply", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid job is 400 with details", func(t *testing.T) {
		api.login("rita@acme.io", domain.RoleRecruiter)
		w, env := api.do(http.MethodPost, "/v1/jobs", map[string]any{"title": "", "description": "D"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, string(env.Error), "Job Title: is required")
	})

	t.Run("login needs credentials and a known role", func(t *testing.T) {
		w, _ := api.do(http.MethodPost, "/v1/session", map[string]string{"email": "x@y.io", "role": "candidate"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = api.do(http.MethodPost, "/v1/session", map[string]string{"email": "x@y.io", "password": "p", "role": "owner"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("recruiter registry is admin only", func(t *testing.T) {
		api.login("rita@acme.io", domain.RoleRecruiter)
		w, _ := api.do(http.MethodGet, "/v1/recruiters", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		api.login("root@hirewise.io", domain.RoleAdmin)
		w, _ = api.do(http.MethodPost, "/v1/recruiters", map[string]string{"id": "r-1", "name": "Rita", "email": "rita@acme.io"})
		assert.Equal(t, http.StatusCreated, w.Code)
		w, _ = api.do(http.MethodPost, "/v1/recruiters", map[string]string{"id": "r-1", "name": "Rita", "email": "rita@acme.io"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("candidates cannot read each other", func(t *testing.T) {
		api.login("cleo@mail.io", domain.RoleCandidate)
		w, _ := api.do(http.MethodGet, "/v1/candidates/someone-else", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSessionEndpoints(t *testing.T) {
	api, _ := newAPI(t)

	w, env := api.do(http.MethodGet, "/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null,"userRole":""}`, string(env.Data))

	api.login("jane_doe@mail.io", domain.RoleAdmin)
	_, env = api.do(http.MethodGet, "/v1/session", nil)
	sess := decode[domain.Session](t, env.Data)
	assert.Equal(t, "jane doe", sess.User.Name)
	assert.Equal(t, []string{"all"}, sess.User.Permissions)

	// Logging out twice is fine
	w, _ = api.do(http.MethodDelete, "/v1/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = api.do(http.MethodDelete, "/v1/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
