// Package api assembles the API module with all domain systems and
// route registration.
package api

import (
	"net/http"

	"github.com/jmcandrew/stevedore/internal/config"
	"github.com/jmcandrew/stevedore/internal/infrastructure"
	"github.com/jmcandrew/stevedore/pkg/middleware"
	"github.com/jmcandrew/stevedore/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(cfg, runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
