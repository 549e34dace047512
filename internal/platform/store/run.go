package store

import "context"

// RunAsRole wraps ctx with role and calls fn inside the provided TxRunner
func RunAsRole(ctx context.Context, tx TxRunner, role string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithRole(ctx, role)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}

// RunAsSuperadmin wraps ctx as superadmin and calls fn inside the provided TxRunner
func RunAsSuperadmin(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithSuperadmin(ctx)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
