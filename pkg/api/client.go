package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Client is the HTTP implementation of Service.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a client for the backend at baseURL. The token is sent as
// a bearer credential on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) Tasks(ctx context.Context, q TaskQuery) ([]workitem.Task, error) {
	query := url.Values{}
	if q.EmployeeID != "" {
		query.Set("employeeId", q.EmployeeID)
	}
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}

	var tasks []workitem.Task
	if err := c.get(ctx, fmt.Sprintf("/orgs/%s/tasks", url.PathEscape(q.OrgID)), query, &tasks); err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	for i := range tasks {
		tasks[i].Normalize()
	}
	return tasks, nil
}

func (c *Client) DailyDuties(ctx context.Context, q DutyQuery) ([]workitem.DailyDuty, error) {
	query := url.Values{}
	if q.EmployeeID != "" {
		query.Set("employeeId", q.EmployeeID)
	}

	var duties []workitem.DailyDuty
	if err := c.get(ctx, fmt.Sprintf("/orgs/%s/daily-duties", url.PathEscape(q.OrgID)), query, &duties); err != nil {
		return nil, fmt.Errorf("fetch daily duties: %w", err)
	}
	for i := range duties {
		duties[i].Normalize()
	}
	return duties, nil
}

func (c *Client) UpdateTaskStatus(ctx context.Context, orgID, taskID string, status workitem.TaskStatus) error {
	path := fmt.Sprintf("/orgs/%s/tasks/%s/status", url.PathEscape(orgID), url.PathEscape(taskID))
	if err := c.patch(ctx, path, map[string]string{"status": string(status)}); err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}

func (c *Client) UpdateDailyDutyStatus(ctx context.Context, orgID, dutyID string, status workitem.DutyStatus) error {
	path := fmt.Sprintf("/orgs/%s/daily-duties/%s/status", url.PathEscape(orgID), url.PathEscape(dutyID))
	if err := c.patch(ctx, path, map[string]string{"status": string(status)}); err != nil {
		return fmt.Errorf("update duty status: %w", err)
	}
	return nil
}

func (c *Client) Products(ctx context.Context, orgID string) ([]workitem.Product, error) {
	var products []workitem.Product
	if err := c.get(ctx, fmt.Sprintf("/orgs/%s/products", url.PathEscape(orgID)), nil, &products); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

func (c *Client) Guns(ctx context.Context, orgID string) ([]workitem.Gun, error) {
	var guns []workitem.Gun
	if err := c.get(ctx, fmt.Sprintf("/orgs/%s/guns", url.PathEscape(orgID)), nil, &guns); err != nil {
		return nil, fmt.Errorf("fetch guns: %w", err)
	}
	return guns, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) patch(ctx context.Context, path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 300 {
		return fmt.Errorf("%s %s status=%d body=%s", req.Method, req.URL.Path, res.StatusCode, string(body))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
