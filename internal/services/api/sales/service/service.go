// Package service contains sales workflows
package service

import (
	"context"
	"time"

	"salesdesk/internal/modkit/repokit"
	"salesdesk/internal/services/api/sales/domain"
	"salesdesk/internal/services/api/sales/repo"
)

// Service defines the sales service contract
type Service interface {
	domain.ServicePort
	domain.ReaderPort
}

// liquidationStatuses is the fixed status set the pipeline operates on
var liquidationStatuses = []string{"Cargada", "Aprobada", "QR hecho"}

// Svc implements the sales service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	tz     *time.Location
}

// New constructs a sales service; loc is the business timezone date ranges
// are interpreted in
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], loc *time.Location) *Svc {
	if db == nil {
		panic("sales.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("sales.Service requires a non nil Repo binder")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, tz: loc}
}

// Query returns sale records matching the input
func (s *Svc) Query(ctx context.Context, in domain.QueryInput) ([]domain.Record, error) {
	rows, err := s.Repo.List(ctx, repo.ListQuery{
		Statuses:     in.Statuses,
		DateFrom:     in.DateFrom,
		DateTo:       in.DateTo,
		AdvisorID:    in.AdvisorID,
		SupervisorID: in.SupervisorID,
		Limit:        in.Limit,
		Timezone:     s.tz.String(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRecord(r))
	}
	return out, nil
}

// Get returns a single sale record by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Record, error) {
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	return toRecord(row), nil
}

// Liquidable returns the liquidation-relevant record set regardless of the
// statuses or limit the caller supplied. The liquidation pipeline buckets and
// counts over the whole set, so a capped fetch would silently skew every view
func (s *Svc) Liquidable(ctx context.Context, in domain.QueryInput) ([]domain.Record, error) {
	in.Statuses = liquidationStatuses
	in.Limit = repo.UnboundedLimit
	return s.Query(ctx, in)
}

func toRecord(r repo.RowSale) domain.Record {
	return domain.Record{
		ID:          r.ID,
		CUIL:        r.CUIL,
		HolderName:  r.HolderName,
		Status:      r.Status,
		ScheduledAt: deref(r.ScheduledAt),
		QRCreatedAt: deref(r.QRCreatedAt),
		CreatedAt:   r.CreatedAt,

		AdvisorID:   r.AdvisorID,
		AdvisorName: r.AdvisorName,

		SupervisorSnapshotID:   derefs(r.SupervisorSnapshotID),
		SupervisorSnapshotName: derefs(r.SupervisorSnapshotName),
		FallbackSupervisorID:   derefs(r.FallbackSupervisorID),
		FallbackSupervisorName: derefs(r.FallbackSupervisorName),

		Provider:  r.Provider,
		AuditorID: derefs(r.AuditorID),
		AdminID:   derefs(r.AdminID),
	}
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func derefs(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
