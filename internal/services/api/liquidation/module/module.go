// Package module wires liquidation into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "salesdesk/internal/modkit"
	"salesdesk/internal/modkit/httpkit"
	str "salesdesk/internal/platform/strings"
	liqhttp "salesdesk/internal/services/api/liquidation/http"
	liqsvc "salesdesk/internal/services/api/liquidation/service"
	salesdomain "salesdesk/internal/services/api/sales/domain"
)

// Ports declares the injected seams this module requires
type Ports struct {
	Sales salesdomain.ReaderPort
}

// Module implements the liquidation module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc liqsvc.Service
}

// New constructs the liquidation module; the sales reader arrives via
// modkit.WithPorts and loc is the business timezone
func New(deps modkit.Deps, loc *time.Location, opts ...modkit.Option) *Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("liquidation"), modkit.WithPrefix("/liquidation")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Sales == nil {
		panic("liquidation module requires a sales ReaderPort via WithPorts")
	}

	svc := liqsvc.New(p.Sales, loc)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptViewPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		liqhttp.Register(r, m.svc)
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
