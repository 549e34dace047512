package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Query(ctx context.Context, in QueryInput) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
}

// ReaderPort is the record-fetching seam the liquidation module consumes
// It always returns the liquidation-relevant status set
type ReaderPort interface {
	Liquidable(ctx context.Context, in QueryInput) ([]Record, error)
}
