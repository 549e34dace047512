// Package service contains directory workflows
package service

import (
	"context"

	"salesdesk/internal/modkit/repokit"
	"salesdesk/internal/services/api/directory/domain"
	"salesdesk/internal/services/api/directory/repo"
)

// Service defines the directory service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the directory service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a directory service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("directory.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("directory.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Advisors lists active advisors with their current supervisor
func (s *Svc) Advisors(ctx context.Context) ([]domain.Person, error) {
	rows, err := s.Repo.Advisors(ctx)
	if err != nil {
		return nil, err
	}
	return people(rows), nil
}

// Supervisors lists active supervisors
func (s *Svc) Supervisors(ctx context.Context) ([]domain.Person, error) {
	rows, err := s.Repo.Supervisors(ctx)
	if err != nil {
		return nil, err
	}
	return people(rows), nil
}

func people(rows []repo.RowPerson) []domain.Person {
	out := make([]domain.Person, 0, len(rows))
	for _, r := range rows {
		p := domain.Person{ID: r.ID, Name: r.Name}
		if r.SupervisorID != nil {
			p.SupervisorID = *r.SupervisorID
		}
		if r.SupervisorName != nil {
			p.SupervisorName = *r.SupervisorName
		}
		out = append(out, p)
	}
	return out
}
