package module

import (
	"context"

	"salesdesk/internal/services/api/liquidation/domain"
	liqsvc "salesdesk/internal/services/api/liquidation/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptViewPort struct{ svc liqsvc.Service }

// View computes a liquidation view
func (a adaptViewPort) View(ctx context.Context, in domain.ViewInput) (domain.ViewOutput, error) {
	return a.svc.View(ctx, in)
}

// Weeks lists business week buckets
func (a adaptViewPort) Weeks(ctx context.Context) (domain.WeeksOutput, error) {
	return a.svc.Weeks(ctx)
}
