package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch-portal-backend/internal/config"
	"dispatch-portal-backend/internal/database/models"
	apperrors "dispatch-portal-backend/internal/errors"
	"dispatch-portal-backend/internal/logger"
	"dispatch-portal-backend/internal/metrics"
	"dispatch-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExternalTeamResponse represents the response for external team snapshots
type ExternalTeamResponse struct {
	ID             uuid.UUID `json:"id"`
	ExternalID     string    `json:"external_id"`
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	PartnerID      *string   `json:"partner_id,omitempty"`
	MemberAdminIDs []string  `json:"member_admin_ids"`
	Color          string    `json:"color,omitempty"`
	SyncedAt       string    `json:"synced_at"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// ExternalTeamListResponse represents a paginated list of external team
// snapshots
type ExternalTeamListResponse struct {
	ExternalTeams []ExternalTeamResponse `json:"external_teams"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// ExternalTeamSyncResult summarizes one sync run
type ExternalTeamSyncResult struct {
	Synced   int       `json:"synced"`
	Pruned   int64     `json:"pruned"`
	SyncedAt time.Time `json:"synced_at"`
}

// ExternalTeamService maintains local snapshots of the teams the
// field-service platform owns. Snapshots let calendar and mapping lookups
// run without a platform round trip; a periodic sync refreshes them.
type ExternalTeamService struct {
	repo        repository.ExternalTeamRepositoryInterface
	fieldClient FieldServiceClientInterface
	metrics     metrics.Sink
	adminMemo   *Memo
}

// NewExternalTeamService creates a new external team service
func NewExternalTeamService(cfg *config.Config, repo repository.ExternalTeamRepositoryInterface, fieldClient FieldServiceClientInterface, sink metrics.Sink) *ExternalTeamService {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	ttl := time.Duration(cfg.DirectoryCacheTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ExternalTeamService{
		repo:        repo,
		fieldClient: fieldClient,
		metrics:     sink,
		adminMemo:   NewMemo(ttl),
	}
}

// clip shortens a string to fit a column limit
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// List retrieves external team snapshots with pagination
func (s *ExternalTeamService) List(page, pageSize int) (*ExternalTeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get external teams: %w", err)
	}

	responses := make([]ExternalTeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}

	return &ExternalTeamListResponse{
		ExternalTeams: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetByExternalID retrieves one snapshot by the platform's team ID
func (s *ExternalTeamService) GetByExternalID(externalID string) (*ExternalTeamResponse, error) {
	team, err := s.repo.GetByExternalID(externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExternalTeamNotFound
		}
		return nil, fmt.Errorf("failed to get external team: %w", err)
	}
	return s.toResponse(team), nil
}

// Sync pulls the platform's team list, upserts a snapshot per team, and
// prunes snapshots the platform no longer reports
func (s *ExternalTeamService) Sync(ctx context.Context) (*ExternalTeamSyncResult, error) {
	log := logger.WithContext(ctx)
	syncedAt := time.Now().UTC()

	teams, err := s.fieldClient.ListTeams(ctx)
	if err != nil {
		s.metrics.RecordExternalSync(false, 0)
		return nil, fmt.Errorf("failed to list platform teams: %w", err)
	}

	synced := 0
	for _, team := range teams {
		if team.ID == "" {
			log.Warnf("skipping platform team with empty id (title %q)", team.Title)
			continue
		}
		title := team.Title
		if title == "" {
			title = team.ID
		}
		snapshot := &models.ExternalTeam{
			BaseModel: models.BaseModel{
				Name:  clip(team.ID, 40),
				Title: clip(title, 100),
			},
			ExternalID:     team.ID,
			MemberAdminIDs: team.AdminIDs,
			Color:          team.Color,
			SyncedAt:       syncedAt,
		}
		if team.PartnerID != "" {
			partnerID := team.PartnerID
			snapshot.PartnerID = &partnerID
		}
		if err := s.repo.Upsert(snapshot); err != nil {
			s.metrics.RecordExternalSync(false, synced)
			return nil, fmt.Errorf("failed to upsert external team %s: %w", team.ID, err)
		}
		synced++
	}

	pruned, err := s.repo.DeleteSyncedBefore(syncedAt)
	if err != nil {
		s.metrics.RecordExternalSync(false, synced)
		return nil, fmt.Errorf("failed to prune stale external teams: %w", err)
	}

	s.metrics.RecordExternalSync(true, synced)
	log.Infof("external team sync completed: %d synced, %d pruned", synced, pruned)

	return &ExternalTeamSyncResult{
		Synced:   synced,
		Pruned:   pruned,
		SyncedAt: syncedAt,
	}, nil
}

// Administrators lists the platform's administrators, memoized briefly so
// the mapping UI can poll it without hammering the platform
func (s *ExternalTeamService) Administrators(ctx context.Context) ([]FieldAdmin, error) {
	const cacheKey = "administrators"
	if cached, ok := s.adminMemo.Get(cacheKey); ok {
		return cached.([]FieldAdmin), nil
	}

	admins, err := s.fieldClient.ListAdministrators(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list platform administrators: %w", err)
	}

	s.adminMemo.Set(cacheKey, admins)
	return admins, nil
}

func (s *ExternalTeamService) toResponse(team *models.ExternalTeam) *ExternalTeamResponse {
	memberIDs := team.MemberAdminIDs
	if memberIDs == nil {
		memberIDs = []string{}
	}
	return &ExternalTeamResponse{
		ID:             team.ID,
		ExternalID:     team.ExternalID,
		Name:           team.Name,
		Title:          team.Title,
		PartnerID:      team.PartnerID,
		MemberAdminIDs: memberIDs,
		Color:          team.Color,
		SyncedAt:       team.SyncedAt.Format(time.RFC3339),
		CreatedAt:      team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      team.UpdatedAt.Format(time.RFC3339),
	}
}
