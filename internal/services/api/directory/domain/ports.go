package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Advisors(ctx context.Context) ([]Person, error)
	Supervisors(ctx context.Context) ([]Person, error)
}
