// Package client is a typed HTTP client for the tracker service. Protected calls take the
// bearer token as an argument; the client itself holds no credentials.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tracker api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Register(ctx context.Context, req trackertypes.RegisterRequest) (*trackertypes.AuthResponse, error) {
	var resp trackertypes.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req trackertypes.LoginRequest) (*trackertypes.AuthResponse, error) {
	var resp trackertypes.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) LoginWithGoogle(
	ctx context.Context,
	req trackertypes.GoogleLoginRequest,
) (*trackertypes.AuthResponse, error) {
	var resp trackertypes.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/google", "", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) GetProfile(ctx context.Context, token string) (*trackertypes.User, error) {
	var resp trackertypes.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", token, nil, &resp); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

func (c *Client) UpdateProfile(
	ctx context.Context,
	token string,
	req trackertypes.UpdateProfileRequest,
) (*trackertypes.User, error) {
	var resp trackertypes.UpdateProfileResponse
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", token, req, &resp); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

// ToggleInterest reports whether the caller is interested after the toggle.
func (c *Client) ToggleInterest(
	ctx context.Context,
	token string,
	req trackertypes.ToggleInterestRequest,
) (bool, error) {
	var resp trackertypes.ToggleInterestResponse
	if err := c.do(ctx, http.MethodPost, "/api/interests", token, req, &resp); err != nil {
		return false, err
	}

	return resp.IsInterested, nil
}

func (c *Client) ListInterests(ctx context.Context, token string) ([]trackertypes.Interest, error) {
	var resp trackertypes.ListInterestsResponse
	if err := c.do(ctx, http.MethodGet, "/api/interests", token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Interests, nil
}

func (c *Client) CheckInterest(ctx context.Context, token, opportunityID, opportunityType string) (bool, error) {
	path := "/api/interests/check/" + url.PathEscape(opportunityID) + "/" + url.PathEscape(opportunityType)

	var resp trackertypes.CheckInterestResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return false, err
	}

	return resp.IsInterested, nil
}

func (c *Client) CreateJobApplication(
	ctx context.Context,
	token string,
	req trackertypes.CreateJobApplicationRequest,
) (*trackertypes.JobApplication, error) {
	var resp trackertypes.JobApplicationResponse
	if err := c.do(ctx, http.MethodPost, "/api/job-applications", token, req, &resp); err != nil {
		return nil, err
	}

	return &resp.Application, nil
}

func (c *Client) ListJobApplications(ctx context.Context, token string) ([]trackertypes.JobApplication, error) {
	var resp trackertypes.ListJobApplicationsResponse
	if err := c.do(ctx, http.MethodGet, "/api/job-applications", token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Applications, nil
}

func (c *Client) UpdateJobApplication(
	ctx context.Context,
	token, jobID string,
	req trackertypes.UpdateJobApplicationRequest,
) (*trackertypes.JobApplication, error) {
	var resp trackertypes.JobApplicationResponse
	if err := c.do(ctx, http.MethodPut, "/api/job-applications/"+url.PathEscape(jobID), token, req, &resp); err != nil {
		return nil, err
	}

	return &resp.Application, nil
}

func (c *Client) DeleteJobApplication(ctx context.Context, token, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/api/job-applications/"+url.PathEscape(jobID), token, nil, nil)
}

func (c *Client) ListCalendarEvents(ctx context.Context, token string) ([]trackertypes.CalendarEvent, error) {
	var resp trackertypes.CalendarResponse
	if err := c.do(ctx, http.MethodGet, "/api/calendar", token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Events, nil
}

func (c *Client) ListHackathons(ctx context.Context) ([]trackertypes.Opportunity, error) {
	var resp []trackertypes.Opportunity
	if err := c.do(ctx, http.MethodGet, "/api/hackathons/all", "", nil, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) ListContests(ctx context.Context) ([]trackertypes.Opportunity, error) {
	var resp []trackertypes.Opportunity
	if err := c.do(ctx, http.MethodGet, "/api/contests/all", "", nil, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) ListJobs(ctx context.Context) ([]trackertypes.Opportunity, error) {
	var resp []trackertypes.Opportunity
	if err := c.do(ctx, http.MethodGet, "/api/jobs/all", "", nil, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) Health(ctx context.Context) (*trackertypes.HealthResponse, error) {
	var resp trackertypes.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body)

	if body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}

	return &APIError{StatusCode: resp.StatusCode, Message: body.Error, Details: body.Details}
}
