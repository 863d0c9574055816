package api

import (
	"net/http"

	"github.com/jmcandrew/stevedore/internal/config"
	"github.com/jmcandrew/stevedore/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Workbench.Handler().Routes(),
		domain.Intake.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Feed.Handler().Routes(),
	)
}
