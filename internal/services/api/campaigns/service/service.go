// Package service contains campaign reporting workflows
package service

import (
	"context"

	"github.com/google/uuid"

	perr "salesdesk/internal/platform/errors"

	"salesdesk/internal/services/api/campaigns/domain"
	"salesdesk/internal/services/api/campaigns/repo"
)

// Service defines the campaigns service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the campaigns service over the event store
type Svc struct {
	Repo repo.Repo
}

// New constructs a campaigns service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("campaigns.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// Stats returns grouped delivery-status counts for one campaign window
func (s *Svc) Stats(ctx context.Context, in domain.StatsInput) (domain.StatsOutput, error) {
	id, err := uuid.Parse(in.CampaignID)
	if err != nil {
		return domain.StatsOutput{}, perr.InvalidArgf("campaign_id is not a valid uuid")
	}
	rows, err := s.Repo.StatusCounts(ctx, id.String(), in.Start, in.End)
	if err != nil {
		return domain.StatsOutput{}, err
	}
	out := domain.StatsOutput{CampaignID: id.String(), ByStatus: make([]domain.StatusCount, 0, len(rows))}
	for _, r := range rows {
		out.Total += r.Count
		out.ByStatus = append(out.ByStatus, domain.StatusCount{Status: r.Status, Count: r.Count})
	}
	return out, nil
}
