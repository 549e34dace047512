// Package module wires sales into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "salesdesk/internal/modkit"
	"salesdesk/internal/modkit/httpkit"
	str "salesdesk/internal/platform/strings"
	saleshttp "salesdesk/internal/services/api/sales/http"
	salesrepo "salesdesk/internal/services/api/sales/repo"
	salessvc "salesdesk/internal/services/api/sales/service"
)

// Module implements the sales module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc salessvc.Service
}

// New constructs the sales module; loc is the business timezone
func New(deps modkit.Deps, loc *time.Location, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("sales"), modkit.WithPrefix("/sales")}, opts...)...)

	repo := salesrepo.NewPG()
	svc := salessvc.New(deps.PG, repo, loc)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Reader: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		saleshttp.Register(r, m.svc)
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
