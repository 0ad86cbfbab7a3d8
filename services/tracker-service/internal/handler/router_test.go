package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository/fake"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/usecase"
	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/auth"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
)

type testEnv struct {
	router        http.Handler
	users         *fake.UserRepository
	opportunities *fake.OpportunityRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zerolog.New(io.Discard)
	users := fake.NewUserRepository()
	identities := fake.NewIdentityRepository()
	opportunities := &fake.OpportunityRepository{Collections: map[string][]model.Opportunity{}}
	jwtAuth := auth.NewJWTAuthenticator("tracker", "tracker", "secret", time.Hour)

	router := NewRouter(&logger, RouterConfig{AllowedOrigins: []string{"*"}, RequestTimeout: 5 * time.Second}, jwtAuth, Usecases{
		Auth:           usecase.NewAuthUsecase(users, identities, jwtAuth, nil, nil, &logger),
		Profile:        usecase.NewProfileUsecase(users),
		Interest:       usecase.NewInterestUsecase(users),
		JobApplication: usecase.NewJobApplicationUsecase(users),
		Opportunity:    usecase.NewOpportunityUsecase(opportunities),
		Calendar:       usecase.NewCalendarUsecase(users, nil),
	})

	return &testEnv{router: router, users: users, opportunities: opportunities}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

func (e *testEnv) register(t *testing.T, username string) trackertypes.AuthResponse {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/register", "", trackertypes.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decodeBody[trackertypes.AuthResponse](t, rec)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())

	return v
}

func TestRouter_HealthAndNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody[trackertypes.HealthResponse](t, rec)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "Opportunity Tracker API is running", health.Message)

	rec = env.do(t, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	notFound := decodeBody[utilities.ErrorResponse](t, rec)
	assert.Equal(t, "Route not found", notFound.Error)
	assert.Equal(t, "The route /api/nope does not exist", notFound.Message)
}

func TestRouter_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	registered := env.register(t, "ada")
	assert.Equal(t, "User registered successfully", registered.Message)
	assert.Equal(t, "ada@example.com", registered.User.Email)
	assert.NotEmpty(t, registered.Token)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", trackertypes.RegisterRequest{
		Username: "other", Email: "ada@example.com", Password: "secret1", FirstName: "A", LastName: "B",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", decodeBody[utilities.ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPost, "/api/auth/register", "", trackertypes.RegisterRequest{
		Username: "ada", Email: "new@example.com", Password: "secret1", FirstName: "A", LastName: "B",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username already taken", decodeBody[utilities.ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", trackertypes.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decodeBody[trackertypes.AuthResponse](t, rec)
	assert.Equal(t, "Login successful", login.Message)
	assert.Equal(t, registered.User.ID, login.User.ID)

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", trackertypes.LoginRequest{Email: "ada@example.com", Password: "nope"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody[utilities.ErrorResponse](t, rec).Error)
}

func TestRouter_RegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       any
		wantFields []string
	}{
		{
			name:       "missing fields",
			body:       map[string]string{"email": "ada@example.com"},
			wantFields: []string{"username", "password", "firstName", "lastName"},
		},
		{
			name: "short password",
			body: trackertypes.RegisterRequest{
				Username: "ada", Email: "ada@example.com", Password: "123", FirstName: "A", LastName: "B",
			},
			wantFields: []string{"password"},
		},
		{
			name: "bad email",
			body: trackertypes.RegisterRequest{
				Username: "ada", Email: "not-an-email", Password: "secret1", FirstName: "A", LastName: "B",
			},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/register", "", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeBody[utilities.ErrorResponse](t, rec)
			for _, f := range tt.wantFields {
				assert.Contains(t, resp.Details, f)
			}
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Profile(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "ada").Token

	rec := env.do(t, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ada", decodeBody[trackertypes.ProfileResponse](t, rec).User.Username)

	bio := "Analytical engine enthusiast"
	rec = env.do(t, http.MethodPut, "/api/auth/profile", token, trackertypes.UpdateProfileRequest{Bio: &bio})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[trackertypes.UpdateProfileResponse](t, rec)
	assert.Equal(t, "Profile updated successfully", updated.Message)
	assert.Equal(t, bio, updated.User.Bio)
	assert.Equal(t, "Ada", updated.User.FirstName)

	long := string(bytes.Repeat([]byte("x"), 501))
	rec = env.do(t, http.MethodPut, "/api/auth/profile", token, trackertypes.UpdateProfileRequest{Bio: &long})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Interests(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "ada").Token

	toggle := trackertypes.ToggleInterestRequest{
		OpportunityID:   "h1",
		OpportunityType: "hackathon",
		OpportunityName: "HackOne",
		Deadline:        "2030-01-15",
	}

	rec := env.do(t, http.MethodPost, "/api/interests", token, toggle)
	require.Equal(t, http.StatusOK, rec.Code)
	added := decodeBody[trackertypes.ToggleInterestResponse](t, rec)
	assert.True(t, added.Success)
	assert.True(t, added.IsInterested)
	assert.Equal(t, "Added to interests", added.Message)

	rec = env.do(t, http.MethodGet, "/api/interests/check/h1/hackathon", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[trackertypes.CheckInterestResponse](t, rec).IsInterested)

	rec = env.do(t, http.MethodGet, "/api/interests/check/h1/contest", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[trackertypes.CheckInterestResponse](t, rec).IsInterested)

	rec = env.do(t, http.MethodGet, "/api/interests", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[trackertypes.ListInterestsResponse](t, rec)
	require.Len(t, list.Interests, 1)
	assert.Equal(t, "unknown", list.Interests[0].Platform)
	require.NotNil(t, list.Interests[0].Deadline)
	assert.Equal(t, time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC), list.Interests[0].Deadline.UTC())

	rec = env.do(t, http.MethodPost, "/api/interests", token, toggle)
	require.Equal(t, http.StatusOK, rec.Code)
	removed := decodeBody[trackertypes.ToggleInterestResponse](t, rec)
	assert.False(t, removed.IsInterested)
	assert.Equal(t, "Removed from interests", removed.Message)

	rec = env.do(t, http.MethodGet, "/api/interests", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"interests":[]}`, rec.Body.String())
}

func TestRouter_InterestValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "ada").Token

	tests := []struct {
		name string
		body trackertypes.ToggleInterestRequest
	}{
		{name: "unknown type", body: trackertypes.ToggleInterestRequest{OpportunityID: "1", OpportunityType: "job"}},
		{name: "bad deadline", body: trackertypes.ToggleInterestRequest{OpportunityID: "1", OpportunityType: "contest", Deadline: "soon"}},
		{name: "missing id", body: trackertypes.ToggleInterestRequest{OpportunityType: "contest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/interests", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	rec := env.do(t, http.MethodGet, "/api/interests/check/1/job", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_JobApplications(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "ada").Token

	create := trackertypes.CreateJobApplicationRequest{
		JobID:           "job-1",
		JobTitle:        "Backend Engineer",
		Company:         "Acme",
		ApplicationDate: "2025-02-10",
		Notes:           "referral",
	}

	rec := env.do(t, http.MethodPost, "/api/job-applications", token, create)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[trackertypes.JobApplicationResponse](t, rec)
	assert.Equal(t, "Job application added successfully", created.Message)
	assert.Equal(t, "applied", created.Application.Status)

	rec = env.do(t, http.MethodPost, "/api/job-applications", token, create)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Job application already exists", decodeBody[utilities.ErrorResponse](t, rec).Error)

	bad := create
	bad.JobID = "job-2"
	bad.ApplicationDate = "yesterday"
	rec = env.do(t, http.MethodPost, "/api/job-applications", token, bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	status := "interview"
	rec = env.do(t, http.MethodPut, "/api/job-applications/job-1", token, trackertypes.UpdateJobApplicationRequest{Status: &status})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[trackertypes.JobApplicationResponse](t, rec)
	assert.Equal(t, "Job application updated successfully", updated.Message)
	assert.Equal(t, "interview", updated.Application.Status)
	assert.Equal(t, "referral", updated.Application.Notes)

	wrong := "ghosted"
	rec = env.do(t, http.MethodPut, "/api/job-applications/job-1", token, trackertypes.UpdateJobApplicationRequest{Status: &wrong})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/job-applications/missing", token, trackertypes.UpdateJobApplicationRequest{Status: &status})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job application not found", decodeBody[utilities.ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodGet, "/api/job-applications", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[trackertypes.ListJobApplicationsResponse](t, rec).Applications, 1)

	rec = env.do(t, http.MethodDelete, "/api/job-applications/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/job-applications/job-1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job application deleted successfully", decodeBody[trackertypes.DeleteJobApplicationResponse](t, rec).Message)

	rec = env.do(t, http.MethodGet, "/api/job-applications", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"applications":[]}`, rec.Body.String())
}

func TestRouter_UpdateJobApplicationIgnoresEmptyFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "ada").Token

	rec := env.do(t, http.MethodPost, "/api/job-applications", token, trackertypes.CreateJobApplicationRequest{
		JobID:           "job-1",
		JobTitle:        "Backend Engineer",
		Company:         "Acme",
		ApplicationDate: "2025-02-10",
		Status:          "interview",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	empty := ""
	notes := "followed up"
	rec = env.do(t, http.MethodPut, "/api/job-applications/job-1", token, trackertypes.UpdateJobApplicationRequest{
		ApplicationDate: &empty,
		Status:          &empty,
		Notes:           &notes,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeBody[trackertypes.JobApplicationResponse](t, rec).Application
	assert.Equal(t, "interview", updated.Status)
	assert.True(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC).Equal(updated.ApplicationDate))
	assert.Equal(t, "followed up", updated.Notes)
}

func TestRouter_Opportunities(t *testing.T) {
	env := newTestEnv(t)
	env.opportunities.Collections[repository.OpenHackathonCollection] = []model.Opportunity{{"name": "o1"}, {"name": "o2"}}
	env.opportunities.Collections[repository.ClosedHackathonCollection] = []model.Opportunity{{"name": "c1"}}
	env.opportunities.Collections[repository.ContestCollection] = []model.Opportunity{{"name": "contest"}}

	rec := env.do(t, http.MethodGet, "/api/hackathons/all", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"name":"o1","category":"open"},
		{"name":"o2","category":"open"},
		{"name":"c1","category":"closed"}
	]`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/contests/all", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"contest"}]`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/jobs/all", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_Calendar(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "ada").Token

	rec := env.do(t, http.MethodPost, "/api/interests", token, trackertypes.ToggleInterestRequest{
		OpportunityID: "h1", OpportunityType: "hackathon", OpportunityName: "HackOne", Platform: "devpost",
		Deadline: "2099-01-01",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/calendar", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	calendar := decodeBody[trackertypes.CalendarResponse](t, rec)
	require.Len(t, calendar.Events, 1)
	assert.Equal(t, "HackOne (devpost)", calendar.Events[0].Title)
	assert.Equal(t, "interest", calendar.Events[0].Type)
	require.NotNil(t, calendar.Events[0].DaysUntil)
	assert.Positive(t, *calendar.Events[0].DaysUntil)
}

func TestRouter_InternalErrorsAreGeneric(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "ada").Token
	env.users.Err = assert.AnError

	rec := env.do(t, http.MethodGet, "/api/interests", token, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
