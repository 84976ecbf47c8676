package service

import (
	"errors"
	"fmt"
	"sort"

	"dispatch-portal-backend/internal/database/models"
	"dispatch-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityService resolves between the portal's worker identities and the
// identities the external field-service platform knows them by
type IdentityService struct {
	workerRepo repository.WorkerRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
}

// NewIdentityService creates a new identity service
func NewIdentityService(workerRepo repository.WorkerRepositoryInterface, teamRepo repository.TeamRepositoryInterface) *IdentityService {
	return &IdentityService{
		workerRepo: workerRepo,
		teamRepo:   teamRepo,
	}
}

// ResolveEffectiveWorkerIDs returns the deduplicated union of the explicit
// workers and the members of the given teams, explicit workers first. A
// team with no members, including an unknown team ID, contributes nothing;
// only a failed lookup is an error.
func (s *IdentityService) ResolveEffectiveWorkerIDs(workerIDs []uuid.UUID, teamIDs []uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(workerIDs))
	effective := make([]uuid.UUID, 0, len(workerIDs))

	for _, id := range workerIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		effective = append(effective, id)
	}

	for _, teamID := range teamIDs {
		memberIDs, err := s.teamRepo.GetMemberWorkerIDs(teamID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve members of team %s: %w", teamID, err)
		}
		for _, id := range memberIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			effective = append(effective, id)
		}
	}

	return effective, nil
}

// ResolveExternalAdminIDs returns the external admin IDs held by the given
// workers, sorted for deterministic output. Workers without a mapping
// contribute nothing; a worker set whose mappings are all absent resolves
// to an empty list.
func (s *IdentityService) ResolveExternalAdminIDs(workerIDs []uuid.UUID) ([]string, error) {
	if len(workerIDs) == 0 {
		return []string{}, nil
	}

	workers, err := s.workerRepo.GetByIDs(workerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load workers for admin resolution: %w", err)
	}

	adminIDs := make([]string, 0, len(workers))
	for i := range workers {
		if workers[i].ExternalAdminID != nil && *workers[i].ExternalAdminID != "" {
			adminIDs = append(adminIDs, *workers[i].ExternalAdminID)
		}
	}
	sort.Strings(adminIDs)
	return adminIDs, nil
}

// MapExternalAdminIDToWorker returns the worker holding the given external
// admin ID. An unmapped admin ID is a gap, not a failure: the result is
// (nil, nil) and the caller keeps the platform's own attribution.
func (s *IdentityService) MapExternalAdminIDToWorker(adminID string) (*models.Worker, error) {
	if adminID == "" {
		return nil, nil
	}

	worker, err := s.workerRepo.GetByExternalAdminID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up admin mapping %s: %w", adminID, err)
	}
	return worker, nil
}
