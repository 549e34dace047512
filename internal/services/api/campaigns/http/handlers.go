// Package http provides http transport for campaigns
package http

import (
	stdhttp "net/http"

	"salesdesk/internal/modkit/httpkit"
	"salesdesk/internal/services/api/campaigns/domain"
	svc "salesdesk/internal/services/api/campaigns/service"
)

// Register mounts campaign endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.StatsInput](r, "/stats", h.stats)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /campaigns/stats Campaigns campaignsStats
// @Summary Delivery-status counts for one WhatsApp campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param payload body domain.StatsInput true "Query"
// @Success 200 {object} domain.StatsOutput "ok"
// @Router /campaigns/stats [post]
func (h *handlers) stats(r *stdhttp.Request, in domain.StatsInput) (any, error) {
	return h.svc.Stats(r.Context(), in)
}
