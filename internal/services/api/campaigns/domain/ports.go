package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Stats(ctx context.Context, in StatsInput) (StatsOutput, error)
}
