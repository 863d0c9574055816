package api

import (
	"github.com/jmcandrew/stevedore/internal/analysis"
	"github.com/jmcandrew/stevedore/internal/config"
	"github.com/jmcandrew/stevedore/internal/feed"
	"github.com/jmcandrew/stevedore/internal/intake"
	"github.com/jmcandrew/stevedore/internal/workbench"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Workbench workbench.System
	Intake    intake.System
	Feed      feed.System
}

// NewDomain creates all domain systems from the API runtime. The
// workbench store is seeded and the feed simulator is registered with
// the lifecycle coordinator.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	gateway := analysis.New(analysis.Options{
		Token:      cfg.Gateway.Token,
		BaseURL:    cfg.Gateway.BaseURL,
		Model:      cfg.Gateway.Model,
		AuditModel: cfg.Gateway.AuditModel,
		MaxTokens:  cfg.Gateway.MaxTokens,
	}, runtime.Logger)

	store := workbench.NewStore(nil)
	store.Seed(workbench.SeedDocuments(nil))
	workbenchSystem := workbench.New(store, gateway, runtime.Logger)

	intakeSystem := intake.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	feedSystem := feed.New(feed.Options{
		Interval: cfg.Feed.IntervalDuration(),
		Capacity: cfg.Feed.Capacity,
	}, runtime.Logger)
	feedSystem.Start(runtime.Lifecycle)

	return &Domain{
		Workbench: workbenchSystem,
		Intake:    intakeSystem,
		Feed:      feedSystem,
	}
}
