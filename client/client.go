// Package client is a typed HTTP client for the Samay Sahayak API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error (%d): %s: %s", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Client talks to one API server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

// GenerateTimetableRequest mirrors the generate-timetable payload.
type GenerateTimetableRequest struct {
	Tasks           []models.Task          `json:"tasks"`
	Technique       models.Technique       `json:"technique"`
	SessionConfig   models.SessionConfig   `json:"sessionConfig"`
	UserPreferences models.UserPreferences `json:"userPreferences"`
}

// GenerateTimetableResponse is the generation result envelope.
type GenerateTimetableResponse struct {
	Success     bool                 `json:"success"`
	Timetable   models.TimetableData `json:"timetable"`
	RawResponse string               `json:"rawResponse,omitempty"`
}

func (c *Client) GenerateTimetable(ctx context.Context, req GenerateTimetableRequest) (*GenerateTimetableResponse, error) {
	var out GenerateTimetableResponse
	if err := c.do(ctx, http.MethodPost, "/api/generate-timetable", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateCEOTimetable sends a free-text brain-dump for structuring.
func (c *Client) GenerateCEOTimetable(ctx context.Context, randomPlan string, prefs models.UserPreferences) (*GenerateTimetableResponse, error) {
	body := map[string]any{"randomPlan": randomPlan, "userPreferences": prefs}
	var out GenerateTimetableResponse
	if err := c.do(ctx, http.MethodPost, "/api/generate-ceo-timetable", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveTimetableResponse wraps the persisted entity.
type SaveTimetableResponse struct {
	Success   bool                  `json:"success"`
	Timetable models.SavedTimetable `json:"timetable"`
}

func (c *Client) SaveTimetable(ctx context.Context, userID string, data models.TimetableData) (*SaveTimetableResponse, error) {
	body := map[string]any{"userId": userID, "timetable": data}
	var out SaveTimetableResponse
	if err := c.do(ctx, http.MethodPost, "/api/timetables", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchTimetablesResponse lists a user's saved timetables.
type FetchTimetablesResponse struct {
	Success    bool                    `json:"success"`
	Timetables []models.SavedTimetable `json:"timetables"`
}

func (c *Client) FetchTimetables(ctx context.Context, userID string) (*FetchTimetablesResponse, error) {
	q := url.Values{"userId": {userID}}
	var out FetchTimetablesResponse
	if err := c.do(ctx, http.MethodGet, "/api/timetables", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTimetable(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/timetables/"+url.PathEscape(id), nil, nil, nil)
}

// SaveAnalyticsRequest mirrors the analytics upsert payload.
type SaveAnalyticsRequest struct {
	UserID          string                  `json:"userId"`
	Date            string                  `json:"date"`
	TimetableID     string                  `json:"timetableId,omitempty"`
	Technique       string                  `json:"technique,omitempty"`
	EnergyLevel     string                  `json:"energyLevel,omitempty"`
	Goal            string                  `json:"goal,omitempty"`
	TotalTasks      int                     `json:"totalTasks"`
	TotalWorkTime   int                     `json:"totalWorkTime"`
	TotalBreakTime  int                     `json:"totalBreakTime"`
	TaskCompletions []models.TaskCompletion `json:"taskCompletions"`
	Notes           string                  `json:"notes,omitempty"`
}

// AnalyticsResponse wraps a single analytics record.
type AnalyticsResponse struct {
	Success   bool                  `json:"success"`
	Analytics models.DailyAnalytics `json:"analytics"`
}

func (c *Client) SaveAnalytics(ctx context.Context, req SaveAnalyticsRequest) (*AnalyticsResponse, error) {
	var out AnalyticsResponse
	if err := c.do(ctx, http.MethodPost, "/api/analytics", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchAnalyticsResponse carries the history plus aggregated metrics.
type FetchAnalyticsResponse struct {
	Success   bool                    `json:"success"`
	Analytics []models.DailyAnalytics `json:"analytics"`
	Metrics   models.AnalyticsMetrics `json:"metrics"`
}

func (c *Client) FetchAnalytics(ctx context.Context, userID, startDate, endDate string) (*FetchAnalyticsResponse, error) {
	q := url.Values{"userId": {userID}}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	var out FetchAnalyticsResponse
	if err := c.do(ctx, http.MethodGet, "/api/analytics", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTaskCompletion(ctx context.Context, userID, date, taskID string, completed bool) (*AnalyticsResponse, error) {
	body := map[string]any{"userId": userID, "date": date, "taskId": taskID, "completed": completed}
	var out AnalyticsResponse
	if err := c.do(ctx, http.MethodPut, "/api/analytics/task", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetAnalyticsResponse reports how many records were removed.
type ResetAnalyticsResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

func (c *Client) ResetAnalytics(ctx context.Context, userID string) (*ResetAnalyticsResponse, error) {
	q := url.Values{"userId": {userID}}
	var out ResetAnalyticsResponse
	if err := c.do(ctx, http.MethodDelete, "/api/analytics", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database,omitempty"`
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var envelope struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
		apiErr.Details = envelope.Details
	} else {
		apiErr.Message = "unexpected status " + strconv.Itoa(resp.StatusCode)
	}
	return apiErr
}
