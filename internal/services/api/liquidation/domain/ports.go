package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	View(ctx context.Context, in ViewInput) (ViewOutput, error)
	Weeks(ctx context.Context) (WeeksOutput, error)
}
