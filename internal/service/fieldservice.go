package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dispatch-portal-backend/internal/config"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/logger"

	"golang.org/x/oauth2/clientcredentials"
)

// FieldTask is a job record as the field-service platform reports it.
// Timestamps stay in the platform's native string form; normalization
// owns parsing so malformed records are counted there.
type FieldTask struct {
	ID              string `json:"id"`
	Subject         string `json:"subject"`
	ScheduledStart  string `json:"scheduled_start"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	AdminID         string `json:"admin_id"`
	AdminName       string `json:"admin_name"`
	TeamID          string `json:"team_id"`
	Address         string `json:"address"`
}

// FieldTeam is a team record owned by the field-service platform.
type FieldTeam struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	PartnerID string   `json:"partner_id"`
	AdminIDs  []string `json:"admin_ids"`
	Color     string   `json:"color"`
}

// FieldAdmin is an administrator record owned by the field-service platform.
type FieldAdmin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FieldTaskFilters narrows a task listing. The platform cannot filter tasks
// by date server-side; date filtering happens after fetch.
type FieldTaskFilters struct {
	AdminIDs []string
	TeamID   string
	Status   string
}

// FieldServiceClient talks to the field-service platform's REST API using
// client-credentials OAuth2.
type FieldServiceClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewFieldServiceClient creates a new field service client. When the platform
// is not configured the client is still constructed; its methods return
// ErrFieldServiceConfig so callers can treat the source as unavailable.
func NewFieldServiceClient(cfg *config.Config) *FieldServiceClient {
	timeout := time.Duration(cfg.FieldServiceTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.HasFieldService() {
		cc := clientcredentials.Config{
			ClientID:     cfg.FieldServiceClientID,
			ClientSecret: cfg.FieldServiceClientSecret,
			TokenURL:     cfg.FieldServiceTokenURL,
		}
		httpClient = cc.Client(context.Background())
		httpClient.Timeout = timeout
	}

	return &FieldServiceClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// fieldListEnvelope is the platform's paginated list response shape.
type fieldListEnvelope struct {
	Items json.RawMessage `json:"items"`
	Total int             `json:"total"`
}

// ListTasks returns the platform's tasks matching the given filters.
// Pagination is followed up to the configured page cap.
func (c *FieldServiceClient) ListTasks(ctx context.Context, filters FieldTaskFilters) ([]FieldTask, error) {
	values := url.Values{}
	if len(filters.AdminIDs) > 0 {
		values.Set("admin_ids", strings.Join(filters.AdminIDs, ","))
	}
	if filters.TeamID != "" {
		values.Set("team_id", filters.TeamID)
	}
	if filters.Status != "" {
		values.Set("status", filters.Status)
	}

	var tasks []FieldTask
	err := c.fetchAllPages(ctx, "/api/v1/tasks", values, func(items json.RawMessage) (int, error) {
		var batch []FieldTask
		if err := json.Unmarshal(items, &batch); err != nil {
			return 0, err
		}
		tasks = append(tasks, batch...)
		return len(batch), nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListTeams returns all teams the platform reports.
func (c *FieldServiceClient) ListTeams(ctx context.Context) ([]FieldTeam, error) {
	var teams []FieldTeam
	err := c.fetchAllPages(ctx, "/api/v1/teams", url.Values{}, func(items json.RawMessage) (int, error) {
		var batch []FieldTeam
		if err := json.Unmarshal(items, &batch); err != nil {
			return 0, err
		}
		teams = append(teams, batch...)
		return len(batch), nil
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListAdministrators returns all administrators the platform reports.
func (c *FieldServiceClient) ListAdministrators(ctx context.Context) ([]FieldAdmin, error) {
	var admins []FieldAdmin
	err := c.fetchAllPages(ctx, "/api/v1/administrators", url.Values{}, func(items json.RawMessage) (int, error) {
		var batch []FieldAdmin
		if err := json.Unmarshal(items, &batch); err != nil {
			return 0, err
		}
		admins = append(admins, batch...)
		return len(batch), nil
	})
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// fetchAllPages walks a paginated listing endpoint, handing each page's raw
// items to consume. The loop is hard-capped at FieldServiceMaxPages so a
// misbehaving endpoint can never stall a request indefinitely.
func (c *FieldServiceClient) fetchAllPages(ctx context.Context, path string, values url.Values, consume func(json.RawMessage) (int, error)) error {
	if !c.cfg.HasFieldService() {
		return apperrors.ErrFieldServiceConfig
	}

	base := strings.TrimRight(c.cfg.FieldServiceBaseURL, "/")
	baseURL, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid field service base URL '%s': %w", base, err)
	}

	pageSize := c.cfg.FieldServicePageSize
	if pageSize <= 0 {
		pageSize = 200
	}
	maxPages := c.cfg.FieldServiceMaxPages
	if maxPages <= 0 {
		maxPages = 25
	}

	for page := 1; page <= maxPages; page++ {
		values.Set("page", fmt.Sprintf("%d", page))
		values.Set("per_page", fmt.Sprintf("%d", pageSize))
		fullURL := baseURL.String() + path + "?" + values.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create field service request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("field service request failed: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("field service %s failed: status=%d body=%s", path, resp.StatusCode, string(body))
		}

		var envelope fieldListEnvelope
		err = json.NewDecoder(resp.Body).Decode(&envelope)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to decode field service response: %w", err)
		}

		count, err := consume(envelope.Items)
		if err != nil {
			return fmt.Errorf("failed to decode field service items: %w", err)
		}

		// Short page means the listing is exhausted
		if count < pageSize {
			return nil
		}
		if page == maxPages {
			logger.WithContext(ctx).Warnf("field service %s listing truncated at %d pages", path, maxPages)
		}
	}

	return nil
}
