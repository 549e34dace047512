// Package repo provides clickhouse access for campaign message events
package repo

import (
	"context"

	"salesdesk/internal/platform/store"
)

// Repo is the minimal event-store surface for campaigns
type Repo interface {
	StatusCounts(ctx context.Context, campaignID, start, end string) ([]RowStatus, error)
}

// RowStatus is one grouped delivery-status row
type RowStatus struct {
	Status string
	Count  int64
}

// CH implements Repo over the clickhouse seam
type CH struct{ db store.Clickhouse }

// NewCH wires the clickhouse seam to the repo
func NewCH(db store.Clickhouse) *CH {
	if db == nil {
		panic("campaigns.Repo requires a non nil clickhouse seam")
	}
	return &CH{db: db}
}

// StatusCounts groups message events by delivery status inside the window
func (r *CH) StatusCounts(ctx context.Context, campaignID, start, end string) ([]RowStatus, error) {
	const sql = `
select status, toInt64(count()) as hits
from wa_campaign_events
where campaign_id = ?
and event_date >= toDate(?)
and event_date <= toDate(?)
group by status
order by hits desc, status asc
`
	rows, err := r.db.Query(ctx, sql, campaignID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowStatus
	for rows.Next() {
		var rr RowStatus
		if err := rows.Scan(&rr.Status, &rr.Count); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
