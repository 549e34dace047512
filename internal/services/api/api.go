// Package api provides the HTTP API for the back office
package api

import (
	"time"

	"salesdesk/internal/platform/config"
	"salesdesk/internal/platform/logger"
	phttp "salesdesk/internal/platform/net/http"
	"salesdesk/internal/platform/store"

	"salesdesk/internal/modkit"
	"salesdesk/internal/modkit/httpkit"
	"salesdesk/internal/modkit/module"
	"salesdesk/internal/modkit/swaggerkit"

	campaignsmod "salesdesk/internal/services/api/campaigns/module"
	directorymod "salesdesk/internal/services/api/directory/module"
	liquidationmod "salesdesk/internal/services/api/liquidation/module"
	metamod "salesdesk/internal/services/api/meta/module"
	salesmod "salesdesk/internal/services/api/sales/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Timezone       *time.Location
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	loc := opt.Timezone
	if loc == nil {
		loc = time.UTC
	}

	// sales first: the liquidation module consumes its reader port
	sales := salesmod.New(deps, loc)
	reader := module.MustPortsOf[salesmod.Ports](sales).Reader

	liquidation := liquidationmod.New(
		deps,
		loc,
		modkit.WithPorts(liquidationmod.Ports{Sales: reader}),
	)

	mods := []module.Module{
		metamod.New(deps),
		sales,
		liquidation,
		directorymod.New(deps),
		campaignsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
