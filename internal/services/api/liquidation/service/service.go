// Package service runs the liquidation pipeline over fetched sale records
package service

import (
	"context"
	"time"

	core "salesdesk/internal/core/liquidation"
	"salesdesk/internal/services/api/liquidation/domain"
	salesdomain "salesdesk/internal/services/api/sales/domain"
)

// Service defines the liquidation service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the liquidation service over a sales reader and the pure core
type Svc struct {
	reader salesdomain.ReaderPort
	tz     *time.Location
}

// New constructs a liquidation service
func New(reader salesdomain.ReaderPort, loc *time.Location) *Svc {
	if reader == nil {
		panic("liquidation.Service requires a non nil sales reader")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Svc{reader: reader, tz: loc}
}

// View computes one liquidation view for the given state
// A date range in the criteria narrows the server fetch as well; the core
// re-applies the range so the two stay consistent
func (s *Svc) View(ctx context.Context, in domain.ViewInput) (domain.ViewOutput, error) {
	fetch := salesdomain.QueryInput{}
	crit := toCriteria(in.Criteria)
	if crit.HasDateRange() {
		fetch.DateFrom = crit.DateFrom
		fetch.DateTo = crit.DateTo
	}
	recs, err := s.reader.Liquidable(ctx, fetch)
	if err != nil {
		return domain.ViewOutput{}, err
	}

	res := core.ComputeView(toCore(recs), core.ViewState{
		WeekIndex: in.WeekIndex,
		Criteria:  crit,
		SortKey:   core.SortKey(in.SortKey),
	}, s.tz)

	return domain.ViewOutput{
		WeekKey:     res.WeekKey,
		WeekCount:   res.WeekCount,
		Records:     fromCore(res.Sorted),
		Supervisors: counts(res.BySupervisor),
		Providers:   counts(res.ByProvider),
	}, nil
}

// Weeks lists the business-week buckets over the full liquidable set
func (s *Svc) Weeks(ctx context.Context) (domain.WeeksOutput, error) {
	recs, err := s.reader.Liquidable(ctx, salesdomain.QueryInput{})
	if err != nil {
		return domain.WeeksOutput{}, err
	}
	buckets := core.BucketByWeek(toCore(recs), s.tz)
	out := domain.WeeksOutput{Weeks: make([]domain.WeekInfo, 0, buckets.WeekCount())}
	for _, key := range buckets.Keys() {
		out.Weeks = append(out.Weeks, domain.WeekInfo{Key: key, Count: len(buckets[key])})
	}
	return out, nil
}

func toCriteria(c domain.CriteriaInput) core.Criteria {
	return core.Criteria{
		Name:            c.Name,
		CUIL:            c.CUIL,
		AdvisorNames:    c.AdvisorNames,
		SupervisorNames: c.SupervisorNames,
		AuditorID:       c.AuditorID,
		AdminID:         c.AdminID,
		Provider:        c.Provider,
		Status:          core.Status(c.Status),
		DateFrom:        c.DateFrom,
		DateTo:          c.DateTo,
	}
}

func toCore(recs []salesdomain.Record) []core.SaleRecord {
	out := make([]core.SaleRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, core.SaleRecord{
			ID:          r.ID,
			CUIL:        r.CUIL,
			HolderName:  r.HolderName,
			Status:      core.Status(r.Status),
			ScheduledAt: r.ScheduledAt,
			QRCreatedAt: r.QRCreatedAt,
			CreatedAt:   r.CreatedAt,

			AdvisorID:   r.AdvisorID,
			AdvisorName: r.AdvisorName,

			SupervisorSnapshotID:   r.SupervisorSnapshotID,
			SupervisorSnapshotName: r.SupervisorSnapshotName,
			FallbackSupervisorID:   r.FallbackSupervisorID,
			FallbackSupervisorName: r.FallbackSupervisorName,

			Provider:  r.Provider,
			AuditorID: r.AuditorID,
			AdminID:   r.AdminID,
		})
	}
	return out
}

func fromCore(recs []core.SaleRecord) []salesdomain.Record {
	out := make([]salesdomain.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, salesdomain.Record{
			ID:          r.ID,
			CUIL:        r.CUIL,
			HolderName:  r.HolderName,
			Status:      string(r.Status),
			ScheduledAt: r.ScheduledAt,
			QRCreatedAt: r.QRCreatedAt,
			CreatedAt:   r.CreatedAt,

			AdvisorID:   r.AdvisorID,
			AdvisorName: r.AdvisorName,

			SupervisorSnapshotID:   r.SupervisorSnapshotID,
			SupervisorSnapshotName: r.SupervisorSnapshotName,
			FallbackSupervisorID:   r.FallbackSupervisorID,
			FallbackSupervisorName: r.FallbackSupervisorName,

			Provider:  r.Provider,
			AuditorID: r.AuditorID,
			AdminID:   r.AdminID,
		})
	}
	return out
}

func counts(in []core.Count) []domain.CountRow {
	out := make([]domain.CountRow, 0, len(in))
	for _, c := range in {
		out = append(out, domain.CountRow{Name: c.Name, Count: c.Count})
	}
	return out
}
