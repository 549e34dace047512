// Package module wires campaigns into the API using modkit
package module

import (
	"net/http"

	modkit "salesdesk/internal/modkit"
	"salesdesk/internal/modkit/httpkit"
	str "salesdesk/internal/platform/strings"
	camphttp "salesdesk/internal/services/api/campaigns/http"
	camprepo "salesdesk/internal/services/api/campaigns/repo"
	campsvc "salesdesk/internal/services/api/campaigns/service"
)

// Module implements the campaigns module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc campsvc.Service
}

// New constructs the campaigns module; requires the clickhouse seam on deps
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("campaigns"), modkit.WithPrefix("/campaigns")}, opts...)...)

	repo := camprepo.NewCH(deps.CH)
	svc := campsvc.New(repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = struct{ campsvc.Service }{svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		camphttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
