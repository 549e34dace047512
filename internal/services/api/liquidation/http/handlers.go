// Package http provides http transport for liquidation
package http

import (
	stdhttp "net/http"

	"salesdesk/internal/modkit/httpkit"
	"salesdesk/internal/services/api/liquidation/domain"
	svc "salesdesk/internal/services/api/liquidation/service"
)

// Register mounts liquidation endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one filtered and aggregated view
	httpkit.PostJSON[domain.ViewInput](r, "/view", h.view)

	// week buckets for pagination
	httpkit.Get(r, "/weeks", h.weeks)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /liquidation/view Liquidation liquidationView
// @Summary Compute a liquidation view for a week or date range
// @Tags Liquidation
// @Accept json
// @Produce json
// @Param payload body domain.ViewInput true "View state"
// @Success 200 {object} domain.ViewOutput "ok"
// @Router /liquidation/view [post]
func (h *handlers) view(r *stdhttp.Request, in domain.ViewInput) (any, error) {
	return h.svc.View(r.Context(), in)
}

// swagger:route GET /liquidation/weeks Liquidation liquidationWeeks
// @Summary List business week buckets, most recent first
// @Tags Liquidation
// @Produce json
// @Success 200 {object} domain.WeeksOutput "ok"
// @Router /liquidation/weeks [get]
func (h *handlers) weeks(r *stdhttp.Request) (any, error) {
	return h.svc.Weeks(r.Context())
}
