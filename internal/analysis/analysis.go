// Package analysis implements the analysis gateway for Stevedore.
// It defines the three analysis operations the workbench can run against
// a document and normalizes remote model responses into a single tagged
// result shape.
package analysis

import "fmt"

// Kind selects one of the three exclusive analysis operations.
type Kind string

const (
	// KindQuickExtraction requests entity/amount/date extraction.
	KindQuickExtraction Kind = "QUICK_EXTRACTION"
	// KindDeepAudit requests a risk and consistency review.
	KindDeepAudit Kind = "DEEP_AUDIT"
	// KindMarketContext requests external verification of the referenced entity.
	KindMarketContext Kind = "MARKET_CONTEXT"
)

// ParseKind validates a wire value as a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindQuickExtraction, KindDeepAudit, KindMarketContext:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// ResultKind tags the payload variant populated on a Result.
type ResultKind string

const (
	ResultExtraction   ResultKind = "extraction"
	ResultAudit        ResultKind = "audit"
	ResultIntelligence ResultKind = "intelligence"
)

// ResultKindFor returns the result tag produced by an operation kind.
func ResultKindFor(kind Kind) ResultKind {
	switch kind {
	case KindDeepAudit:
		return ResultAudit
	case KindMarketContext:
		return ResultIntelligence
	default:
		return ResultExtraction
	}
}

// Entity is a labeled value extracted from document text.
type Entity struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result is the normalized outcome of one analysis operation. Exactly one
// of Entities, Risks, or MarketContext is populated, matching Kind.
// Results are immutable once constructed.
type Result struct {
	Kind            ResultKind `json:"kind"`
	Summary         string     `json:"summary"`
	ConfidenceScore int        `json:"confidence_score"`
	Entities        []Entity   `json:"entities,omitempty"`
	Risks           []string   `json:"risks,omitempty"`
	MarketContext   []string   `json:"market_context,omitempty"`
}

// NewExtractionResult builds an extraction-tagged Result.
func NewExtractionResult(summary string, confidence int, entities []Entity) *Result {
	return &Result{
		Kind:            ResultExtraction,
		Summary:         summary,
		ConfidenceScore: clampConfidence(confidence),
		Entities:        entities,
	}
}

// NewAuditResult builds an audit-tagged Result.
func NewAuditResult(summary string, confidence int, risks []string) *Result {
	return &Result{
		Kind:            ResultAudit,
		Summary:         summary,
		ConfidenceScore: clampConfidence(confidence),
		Risks:           risks,
	}
}

// intelligenceConfidence is fixed: market-context findings are grounded
// in external sources rather than model self-assessment.
const intelligenceConfidence = 95

// NewIntelligenceResult builds an intelligence-tagged Result with a fixed
// confidence score. Duplicate source URIs are removed, preserving
// first-seen order.
func NewIntelligenceResult(summary string, sources []string) *Result {
	return &Result{
		Kind:            ResultIntelligence,
		Summary:         summary,
		ConfidenceScore: intelligenceConfidence,
		MarketContext:   dedupe(sources),
	}
}

// Validate reports whether exactly the payload variant matching Kind is
// populated.
func (r *Result) Validate() error {
	populated := 0
	if len(r.Entities) > 0 {
		populated++
	}
	if len(r.Risks) > 0 {
		populated++
	}
	if len(r.MarketContext) > 0 {
		populated++
	}
	if populated > 1 {
		return fmt.Errorf("result carries %d payload variants, want at most 1", populated)
	}

	switch r.Kind {
	case ResultExtraction:
		if len(r.Risks) > 0 || len(r.MarketContext) > 0 {
			return fmt.Errorf("extraction result carries foreign payload")
		}
	case ResultAudit:
		if len(r.Entities) > 0 || len(r.MarketContext) > 0 {
			return fmt.Errorf("audit result carries foreign payload")
		}
	case ResultIntelligence:
		if len(r.Entities) > 0 || len(r.Risks) > 0 {
			return fmt.Errorf("intelligence result carries foreign payload")
		}
	default:
		return fmt.Errorf("unknown result kind: %q", r.Kind)
	}
	return nil
}

func clampConfidence(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
