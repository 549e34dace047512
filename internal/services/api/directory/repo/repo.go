// Package repo provides postgres access for the staff directory
package repo

import (
	"context"

	"salesdesk/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for the directory
type Repo interface {
	Advisors(ctx context.Context) ([]RowPerson, error)
	Supervisors(ctx context.Context) ([]RowPerson, error)
}

// RowPerson is one directory row
type RowPerson struct {
	ID             string
	Name           string
	SupervisorID   *string
	SupervisorName *string
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

func (r *queries) Advisors(ctx context.Context) ([]RowPerson, error) {
	const sql = `
select a.id::text, a.name, s.id::text, s.name
from advisors a
left join supervisors s on s.id = a.supervisor_id
where a.active
order by a.name asc
`
	return r.people(ctx, sql)
}

func (r *queries) Supervisors(ctx context.Context) ([]RowPerson, error) {
	const sql = `
select s.id::text, s.name, null::text, null::text
from supervisors s
where s.active
order by s.name asc
`
	return r.people(ctx, sql)
}

func (r *queries) people(ctx context.Context, sql string) ([]RowPerson, error) {
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowPerson
	for rows.Next() {
		var rr RowPerson
		if err := rows.Scan(&rr.ID, &rr.Name, &rr.SupervisorID, &rr.SupervisorName); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
