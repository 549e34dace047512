// Package repo provides postgres access for sale records
package repo

import (
	"context"
	"time"

	perr "salesdesk/internal/platform/errors"

	"salesdesk/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for sales
type Repo interface {
	List(ctx context.Context, q ListQuery) ([]RowSale, error)
	Get(ctx context.Context, id string) (RowSale, error)
}

// UnboundedLimit asks List for the complete matching set
// Reserved for in-process callers that aggregate over all records; the HTTP
// input validation never lets it through from outside
const UnboundedLimit = -1

// ListQuery narrows the listing; zero fields constrain nothing
type ListQuery struct {
	Statuses     []string
	DateFrom     string // local YYYY-MM-DD, inclusive
	DateTo       string
	AdvisorID    string
	SupervisorID string
	// rows returned; 0 defaults to 1000, UnboundedLimit returns everything
	Limit int

	// IANA zone the date range is interpreted in; must be set when a range is
	Timezone string
}

// RowSale is a sale row from the database
// Nullable columns scan through pointers and collapse to zero values
type RowSale struct {
	ID          string
	CUIL        string
	HolderName  string
	Status      string
	ScheduledAt *time.Time
	QRCreatedAt *time.Time
	CreatedAt   time.Time

	AdvisorID   string
	AdvisorName string

	SupervisorSnapshotID   *string
	SupervisorSnapshotName *string
	FallbackSupervisorID   *string
	FallbackSupervisorName *string

	Provider  string
	AuditorID *string
	AdminID   *string
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const saleColumns = `
s.id::text as id, s.cuil, s.holder_name, s.status::text as status,
s.scheduled_at, s.qr_created_at, s.created_at,
s.advisor_id::text as advisor_id, s.advisor_name,
s.supervisor_snapshot_id::text as supervisor_snapshot_id, s.supervisor_snapshot_name,
a.supervisor_id::text as fallback_supervisor_id, sup.name as fallback_supervisor_name,
s.provider::text as provider, s.auditor_id::text as auditor_id, s.admin_id::text as admin_id`

const outColumns = `
s.id, s.cuil, s.holder_name, s.status,
s.scheduled_at, s.qr_created_at, s.created_at,
s.advisor_id, s.advisor_name,
s.supervisor_snapshot_id, s.supervisor_snapshot_name,
s.fallback_supervisor_id, s.fallback_supervisor_name,
s.provider, s.auditor_id, s.admin_id`

func (r *queries) List(ctx context.Context, q ListQuery) ([]RowSale, error) {
	limit := q.Limit
	switch {
	case limit < 0:
		// limit null in postgres means no limit; nullif below maps the sentinel
		limit = UnboundedLimit
	case limit == 0 || limit > 5000:
		limit = 1000
	}
	// the advisors join resolves the current supervisor for legacy rows
	// without a snapshot, reading the name off supervisors like the
	// directory queries do; the service layer decides which one governs
	// effective_day mirrors the core's date resolution: qr_created_at governs
	// a QR hecho sale, else scheduled_at, else created_at, as a local day
	const sql = `
with candidates as (
select ` + saleColumns + `,
((case when s.status::text = 'QR hecho' and s.qr_created_at is not null then s.qr_created_at
       else coalesce(s.scheduled_at, s.created_at) end) at time zone $7)::date as effective_day
from sales s
left join advisors a on a.id = s.advisor_id
left join supervisors sup on sup.id = a.supervisor_id
)
select ` + outColumns + `
from candidates s
where (cardinality($1::text[]) = 0 or s.status = any($1))
and (nullif($2, '') is null or s.effective_day >= nullif($2, '')::date)
and (nullif($3, '') is null or s.effective_day <= nullif($3, '')::date)
and ($4 = '' or s.advisor_id = $4)
and ($5 = '' or coalesce(s.supervisor_snapshot_id, s.fallback_supervisor_id) = $5)
order by s.scheduled_at desc nulls last, s.created_at desc
limit nullif($6, -1)
`
	statuses := q.Statuses
	if statuses == nil {
		statuses = []string{}
	}
	tz := q.Timezone
	if tz == "" {
		tz = "UTC"
	}
	rows, err := r.q.Query(ctx, sql, statuses, q.DateFrom, q.DateTo, q.AdvisorID, q.SupervisorID, limit, tz)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowSale
	for rows.Next() {
		rr, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Get(ctx context.Context, id string) (RowSale, error) {
	const sql = `
select ` + saleColumns + `
from sales s
left join advisors a on a.id = s.advisor_id
left join supervisors sup on sup.id = a.supervisor_id
where s.id::text = $1
`
	rows, err := r.q.Query(ctx, sql, id)
	if err != nil {
		return RowSale{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return RowSale{}, err
		}
		return RowSale{}, perr.NotFoundf("sale %s not found", id)
	}
	return scanSale(rows)
}

func scanSale(rows repokit.Rows) (RowSale, error) {
	var rr RowSale
	err := rows.Scan(
		&rr.ID,
		&rr.CUIL,
		&rr.HolderName,
		&rr.Status,
		&rr.ScheduledAt,
		&rr.QRCreatedAt,
		&rr.CreatedAt,
		&rr.AdvisorID,
		&rr.AdvisorName,
		&rr.SupervisorSnapshotID,
		&rr.SupervisorSnapshotName,
		&rr.FallbackSupervisorID,
		&rr.FallbackSupervisorName,
		&rr.Provider,
		&rr.AuditorID,
		&rr.AdminID,
	)
	return rr, err
}
