// Package http provides http transport for sales
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	perr "salesdesk/internal/platform/errors"

	"salesdesk/internal/modkit/httpkit"
	"salesdesk/internal/services/api/sales/domain"
	svc "salesdesk/internal/services/api/sales/service"
)

// Register mounts sales endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// filtered listing
	httpkit.PostJSON[domain.QueryInput](r, "/query", h.query)

	// single record
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /sales/query Sales salesQuery
// @Summary List sale records matching a query
// @Tags Sales
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Query"
// @Success 200 {array} domain.Record "ok"
// @Router /sales/query [post]
func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	return h.svc.Query(r.Context(), in)
}

// swagger:route GET /sales/{id} Sales salesGet
// @Summary Fetch one sale record
// @Tags Sales
// @Produce json
// @Param id path string true "Sale id"
// @Success 200 {object} domain.Record "ok"
// @Router /sales/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return nil, perr.InvalidArgf("sale id is required")
	}
	return h.svc.Get(r.Context(), id)
}
