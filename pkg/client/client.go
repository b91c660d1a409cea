package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Praashon/devtrackr/internal/domain"
)

// Client is the API client for devtrackr
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WeekData is the week payload returned by the weeks endpoints
type WeekData struct {
	Week         domain.Week             `json:"week"`
	Aggregate    domain.WeekAggregate    `json:"aggregate"`
	Repositories []domain.UserRepository `json:"repositories"`
	Events       []domain.Event          `json:"events"`
}

// ReviewsData is the payload returned by the weekly-reviews endpoint
type ReviewsData struct {
	Reviews       []domain.WeeklyReview `json:"reviews"`
	Streak        int                   `json:"streak"`
	CurrentWeekID string                `json:"currentWeekId"`
}

// GoalsHabitsData is the payload returned by the goals-habits endpoint
type GoalsHabitsData struct {
	Goals            []domain.Goal  `json:"goals"`
	Habits           []domain.Habit `json:"habits"`
	CurrentWeekStart string         `json:"currentWeekStart"`
}

// SyncData is the payload returned by the sync endpoint
type SyncData struct {
	Connection   domain.Connection `json:"connection"`
	WeekID       string            `json:"weekId"`
	SyncedEvents int               `json:"syncedEvents"`
}

// GetCurrentWeek retrieves the current week with its aggregate
func (c *Client) GetCurrentWeek() (*WeekData, error) {
	var response struct {
		Data *WeekData `json:"data"`
	}
	if err := c.get("/api/v1/weeks/current", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetWeek retrieves a week by its identifier
func (c *Client) GetWeek(weekID string) (*WeekData, error) {
	var response struct {
		Data *WeekData `json:"data"`
	}
	if err := c.get("/api/v1/weeks/"+url.PathEscape(weekID), &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetWeeklyReviews retrieves the review history and current streak
func (c *Client) GetWeeklyReviews() (*ReviewsData, error) {
	var response struct {
		Data *ReviewsData `json:"data"`
	}
	if err := c.get("/api/v1/weekly-reviews", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetGoalsHabits retrieves the combined goals and habits payload
func (c *Client) GetGoalsHabits() (*GoalsHabitsData, error) {
	var response struct {
		Data *GoalsHabitsData `json:"data"`
	}
	if err := c.get("/api/v1/goals-habits", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetRepositories retrieves the registered repositories
func (c *Client) GetRepositories() ([]domain.UserRepository, error) {
	var response struct {
		Data struct {
			Repositories []domain.UserRepository `json:"repositories"`
		} `json:"data"`
	}
	if err := c.get("/api/v1/repositories", &response); err != nil {
		return nil, err
	}
	return response.Data.Repositories, nil
}

// Sync triggers an event sync for the current week
func (c *Client) Sync() (*SyncData, error) {
	var response struct {
		Data *SyncData `json:"data"`
	}
	if err := c.post("/api/v1/github/sync", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck() error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) get(path string, result interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	return c.decode(resp, result)
}

func (c *Client) post(path string, body interface{}, result interface{}) error {
	payload := []byte("{}")
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = encoded
	}
	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.decode(resp, result)
}

func (c *Client) decode(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
