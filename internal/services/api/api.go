// Package api provides the HTTP API for the application
package api

import (
	"billnote/internal/core/platform"
	"billnote/internal/core/provenance"
	"billnote/internal/platform/config"
	"billnote/internal/platform/logger"
	phttp "billnote/internal/platform/net/http"

	"billnote/internal/modkit"
	"billnote/internal/modkit/httpkit"
	"billnote/internal/modkit/module"
	"billnote/internal/modkit/swaggerkit"

	metamod "billnote/internal/services/api/meta/module"
	platformdomain "billnote/internal/services/api/platform/domain"
	platformmod "billnote/internal/services/api/platform/module"
	provenancemod "billnote/internal/services/api/provenance/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Service        string
	Classifier     *platform.Classifier // nil uses the embedded rule table
	EnableSwagger  bool
	EnableProfiler bool
	Stack          httpkit.StackOptions
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []module.Module {
	deps := modkit.Deps{
		Log:        opt.Logger,
		Cfg:        opt.Config,
		Classifier: opt.Classifier,
		Service:    opt.Service,
	}
	if opt.Classifier != nil {
		deps.Provenance = provenance.NewHandler(
			provenance.WithStrategy(provenance.NewEvidence(opt.Classifier)))
	}
	deps = deps.WithDefaults()

	// platform owns the classifier; provenance and meta consume its ports
	platformMod := platformmod.New(deps)
	classifier := module.MustPortsOf[platformdomain.ClassifierPort](platformMod).Classifier()
	rules := module.MustPortsOf[platformdomain.RulesPort](platformMod)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Imports{Rules: rules})),
		platformMod,
		provenancemod.New(deps, modkit.WithPorts(provenancemod.Imports{Classifier: classifier})),
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	deps.Log.Info().
		Int("modules", len(mods)).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("api mounted")
	return mods
}
