// Package http provides http transport for the staff directory
package http

import (
	stdhttp "net/http"

	"salesdesk/internal/modkit/httpkit"
	svc "salesdesk/internal/services/api/directory/service"
)

// Register mounts directory endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/advisors", h.advisors)
	httpkit.Get(r, "/supervisors", h.supervisors)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /directory/advisors Directory directoryAdvisors
// @Summary List active advisors for filter options
// @Tags Directory
// @Produce json
// @Success 200 {array} domain.Person "ok"
// @Router /directory/advisors [get]
func (h *handlers) advisors(r *stdhttp.Request) (any, error) {
	return h.svc.Advisors(r.Context())
}

// swagger:route GET /directory/supervisors Directory directorySupervisors
// @Summary List active supervisors for filter options
// @Tags Directory
// @Produce json
// @Success 200 {array} domain.Person "ok"
// @Router /directory/supervisors [get]
func (h *handlers) supervisors(r *stdhttp.Request) (any, error) {
	return h.svc.Supervisors(r.Context())
}
