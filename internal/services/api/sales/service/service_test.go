package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"salesdesk/internal/modkit/repokit"
	ptime "salesdesk/internal/platform/time"
	"salesdesk/internal/services/api/sales/domain"
	"salesdesk/internal/services/api/sales/repo"
)

var art = time.FixedZone("ART", -3*60*60)

// fakeRepo serves canned rows and records the last ListQuery
type fakeRepo struct {
	rows []repo.RowSale
	row  repo.RowSale
	last repo.ListQuery
	err  error
}

func (f *fakeRepo) List(_ context.Context, q repo.ListQuery) ([]repo.RowSale, error) {
	f.last = q
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeRepo) Get(_ context.Context, _ string) (repo.RowSale, error) {
	if f.err != nil {
		return repo.RowSale{}, f.err
	}
	return f.row, nil
}

// fakeDB satisfies repokit.TxRunner; the service never touches it directly
type fakeDB struct{}

func (fakeDB) Tx(_ context.Context, fn func(q repokit.Queryer) error) error { return fn(nil) }
func (fakeDB) Exec(_ context.Context, _ string, _ ...any) (repokit.CommandTag, error) {
	var z repokit.CommandTag
	return z, nil
}

func (fakeDB) Query(_ context.Context, _ string, _ ...any) (repokit.Rows, error) {
	var z repokit.Rows
	return z, nil
}

func (fakeDB) QueryRow(_ context.Context, _ string, _ ...any) repokit.Row {
	var z repokit.Row
	return z
}

func newSvc(f *fakeRepo) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return New(fakeDB{}, binder, art)
}

func TestQuery_PassesFiltersAndTimezone(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	_, err := svc.Query(context.Background(), domain.QueryInput{
		Statuses:  []string{"Aprobada"},
		DateFrom:  "2025-11-01",
		DateTo:    "2025-11-30",
		AdvisorID: "adv-102",
		Limit:     50,
	})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if f.last.DateFrom != "2025-11-01" || f.last.DateTo != "2025-11-30" {
		t.Fatalf("range not forwarded: %+v", f.last)
	}
	if f.last.AdvisorID != "adv-102" || f.last.Limit != 50 {
		t.Fatalf("filters not forwarded: %+v", f.last)
	}
	if f.last.Timezone != art.String() {
		t.Fatalf("Timezone = %q, want business zone", f.last.Timezone)
	}
	if len(f.last.Statuses) != 1 || f.last.Statuses[0] != "Aprobada" {
		t.Fatalf("Statuses = %v", f.last.Statuses)
	}
}

func TestLiquidable_ForcesStatusSet(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	_, err := svc.Liquidable(context.Background(), domain.QueryInput{
		Statuses: []string{"Aprobada"}, // caller picks get overridden
	})
	if err != nil {
		t.Fatalf("Liquidable returned error: %v", err)
	}
	want := []string{"Cargada", "Aprobada", "QR hecho"}
	if len(f.last.Statuses) != len(want) {
		t.Fatalf("Statuses = %v, want %v", f.last.Statuses, want)
	}
	for i, s := range want {
		if f.last.Statuses[i] != s {
			t.Fatalf("Statuses = %v, want %v", f.last.Statuses, want)
		}
	}
}

func TestLiquidable_FetchesUnbounded(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	// week buckets and leaderboards aggregate over the whole set; a default
	// page cap here would silently truncate every downstream view
	_, err := svc.Liquidable(context.Background(), domain.QueryInput{Limit: 50})
	if err != nil {
		t.Fatalf("Liquidable returned error: %v", err)
	}
	if f.last.Limit != repo.UnboundedLimit {
		t.Fatalf("Limit = %d, want the unbounded sentinel %d", f.last.Limit, repo.UnboundedLimit)
	}
}

func TestToRecord_CollapsesNullables(t *testing.T) {
	t.Parallel()

	sched := time.Date(2025, 11, 10, 9, 0, 0, 0, art)
	sup := "Carla"
	supID := "sup-1"

	got := toRecord(repo.RowSale{
		ID:          "a",
		CUIL:        "20-30111222-3",
		HolderName:  "María Gómez",
		Status:      "Cargada",
		ScheduledAt: ptime.Ptr(sched),
		QRCreatedAt: ptime.Ptr(time.Time{}), // zero collapses to nil
		CreatedAt:   sched,

		SupervisorSnapshotID:   &supID,
		SupervisorSnapshotName: &sup,
		FallbackSupervisorID:   nil,
		FallbackSupervisorName: nil,
		AuditorID:              nil,
		AdminID:                nil,
	})

	if !got.ScheduledAt.Equal(sched) {
		t.Fatalf("ScheduledAt = %v, want %v", got.ScheduledAt, sched)
	}
	if !got.QRCreatedAt.IsZero() {
		t.Fatalf("nil QRCreatedAt should collapse to zero time, got %v", got.QRCreatedAt)
	}
	if got.SupervisorSnapshotName != "Carla" || got.SupervisorSnapshotID != "sup-1" {
		t.Fatalf("snapshot supervisor lost: %+v", got)
	}
	if got.FallbackSupervisorName != "" || got.AuditorID != "" || got.AdminID != "" {
		t.Fatalf("nil strings should collapse to empty, got %+v", got)
	}
}

func TestGet_PropagatesRepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	svc := newSvc(&fakeRepo{err: boom})

	_, err := svc.Get(context.Background(), "nope")
	if !errors.Is(err, boom) {
		t.Fatalf("Get error = %v, want boom", err)
	}
}
