package workbench

import (
	"context"
	"log/slog"

	"github.com/jmcandrew/stevedore/internal/analysis"
)

// AnalysisOutcome pairs a gateway result with the operation that
// produced it.
type AnalysisOutcome struct {
	Kind   analysis.Kind
	Result *analysis.Result
}

// System defines the public contract for workbench operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context) []Document
	Find(ctx context.Context, id string) (Document, error)
	Create(ctx context.Context, cmd CreateCommand) (Document, error)
	EditContent(ctx context.Context, id, content string) (Document, error)
	Analyze(ctx context.Context, id string, kind analysis.Kind) (Document, error)
	Verify(ctx context.Context, id string) (Document, error)
	Unlock(ctx context.Context, id string) (Document, error)
}

type service struct {
	store   *Store
	gateway analysis.System
	logger  *slog.Logger
}

// New creates the workbench system over a store and an analysis gateway.
func New(store *Store, gateway analysis.System, logger *slog.Logger) System {
	return &service{
		store:   store,
		gateway: gateway,
		logger:  logger.With("system", "workbench"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) List(ctx context.Context) []Document {
	return s.store.List()
}

func (s *service) Find(ctx context.Context, id string) (Document, error) {
	return s.store.Find(id)
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (Document, error) {
	doc, err := s.store.Create(cmd)
	if err != nil {
		return Document{}, err
	}
	s.logger.Info("document created", "id", doc.ID, "title", doc.Title)
	return doc, nil
}

func (s *service) EditContent(ctx context.Context, id, content string) (Document, error) {
	return s.store.EditContent(id, content)
}

// Analyze runs one analysis operation end to end: the document enters
// analyzing, the gateway is invoked once, and the outcome is applied. A
// gateway failure reverts the document to draft with no history entry
// and surfaces as a single undifferentiated analysis error.
func (s *service) Analyze(ctx context.Context, id string, kind analysis.Kind) (Document, error) {
	doc, err := s.store.BeginAnalysis(id)
	if err != nil {
		return Document{}, err
	}

	result, err := s.gateway.Invoke(ctx, kind, doc.Content)
	if err != nil {
		if revertErr := s.store.FailAnalysis(id); revertErr != nil {
			s.logger.Error("analysis revert failed", "id", id, "error", revertErr)
		}
		s.logger.Warn("analysis failed", "id", id, "kind", kind, "error", err)
		return Document{}, err
	}

	updated, err := s.store.CompleteAnalysis(id, &AnalysisOutcome{Kind: kind, Result: result})
	if err != nil {
		return Document{}, err
	}

	s.logger.Info(
		"document analyzed",
		"id", id,
		"kind", kind,
		"confidence", result.ConfidenceScore,
	)
	return updated, nil
}

func (s *service) Verify(ctx context.Context, id string) (Document, error) {
	doc, err := s.store.Verify(id)
	if err != nil {
		return Document{}, err
	}
	s.logger.Info("document verified", "id", id)
	return doc, nil
}

func (s *service) Unlock(ctx context.Context, id string) (Document, error) {
	doc, err := s.store.Unlock(id)
	if err != nil {
		return Document{}, err
	}
	s.logger.Info("document unlocked", "id", id, "status", doc.Status)
	return doc, nil
}
