package workbench

import (
	"fmt"
	"sync"
)

// Store is the in-memory document entity store. It owns every workbench
// document and is the single place lifecycle transitions are applied, so
// the state machine guards hold regardless of the calling surface.
// Documents are never deleted.
type Store struct {
	mu    sync.RWMutex
	docs  map[string]*Document
	order []string
	seq   int
	clock Clock
}

// NewStore creates an empty store using the given clock for history
// timestamps and modification times.
func NewStore(clock Clock) *Store {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Store{
		docs:  make(map[string]*Document),
		clock: clock,
	}
}

// Seed loads an initial document set, preserving the given order.
// Existing ids are overwritten; intended for process start only.
func (s *Store) Seed(docs []Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range docs {
		d := docs[i]
		if _, exists := s.docs[d.ID]; !exists {
			s.order = append(s.order, d.ID)
		}
		s.docs[d.ID] = &d
	}
}

// List returns copies of all documents in seed/creation order.
func (s *Store) List() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.docs[id])
	}
	return out
}

// Find returns a copy of the document with the given id.
func (s *Store) Find(id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return *doc, nil
}

// Create registers a new draft document. An empty id is assigned from an
// internal sequence.
func (s *Store) Create(cmd CreateCommand) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := cmd.ID
	if id == "" {
		id = s.nextID()
	}
	if _, exists := s.docs[id]; exists {
		return Document{}, fmt.Errorf("%w: %s", ErrDuplicate, id)
	}

	title := cmd.Title
	if title == "" {
		title = "Untitled Document"
	}

	now := s.clock.Now()
	doc := &Document{
		ID:           id,
		Title:        title,
		Content:      cmd.Content,
		Status:       StatusDraft,
		LastModified: now,
		History: []HistoryEntry{
			{Action: ActionCreated, Timestamp: now, User: ActorSystem},
		},
	}

	s.docs[id] = doc
	s.order = append(s.order, id)
	return *doc, nil
}

// EditContent replaces a document's content in place. Edits are rejected
// while the document is verified or analyzing; the stored content is
// left untouched in either case.
func (s *Store) EditContent(id, content string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	switch doc.Status {
	case StatusVerified:
		return Document{}, fmt.Errorf("%w: %s", ErrLocked, id)
	case StatusAnalyzing:
		return Document{}, fmt.Errorf("%w: %s", ErrAnalysisInFlight, id)
	}

	doc.Content = content
	doc.LastModified = s.clock.Now()
	return *doc, nil
}

// Verify locks a document against further edits. Legal from any
// non-analyzing state; verifying an already verified document is an
// idempotent no-op with no ledger entry.
func (s *Store) Verify(id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if doc.Status == StatusVerified {
		return *doc, nil
	}
	if !doc.Status.Verifiable() {
		return Document{}, fmt.Errorf("%w: %s", ErrAnalysisInFlight, id)
	}

	now := s.clock.Now()
	doc.Status = StatusVerified
	doc.LastModified = now
	doc.History = prepend(doc.History, HistoryEntry{
		Action:    ActionVerified,
		Timestamp: now,
		User:      ActorOperator,
	})
	return *doc, nil
}

// Unlock returns a verified document to draft. Unlocking a document in
// any other state is a no-op: the transition is only defined from
// verified, so no ledger entry is recorded. The analysis result and type
// are retained across unlock.
func (s *Store) Unlock(id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if doc.Status != StatusVerified {
		return *doc, nil
	}

	now := s.clock.Now()
	doc.Status = StatusDraft
	doc.LastModified = now
	doc.History = prepend(doc.History, HistoryEntry{
		Action:    ActionUnlocked,
		Timestamp: now,
		User:      ActorOperator,
	})
	return *doc, nil
}

// BeginAnalysis transitions a document into analyzing. At most one
// analysis may be in flight per document: a second begin while analyzing
// fails with ErrAnalysisInFlight, and a verified document rejects with
// ErrLocked.
func (s *Store) BeginAnalysis(id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	switch doc.Status {
	case StatusAnalyzing:
		return Document{}, fmt.Errorf("%w: %s", ErrAnalysisInFlight, id)
	case StatusVerified:
		return Document{}, fmt.Errorf("%w: %s", ErrLocked, id)
	}

	doc.Status = StatusAnalyzing
	return *doc, nil
}

// CompleteAnalysis applies a successful gateway result: the document
// moves to analyzed, the result and operation kind are attached, and an
// "Analyzed" entry is prepended to the ledger. The document must be in
// analyzing; the begin/complete pairing makes stale results impossible.
func (s *Store) CompleteAnalysis(id string, result *AnalysisOutcome) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if doc.Status != StatusAnalyzing {
		return Document{}, fmt.Errorf("complete analysis: document %s is %s, want %s", id, doc.Status, StatusAnalyzing)
	}

	now := s.clock.Now()
	doc.Status = StatusAnalyzed
	doc.AnalysisResult = result.Result
	doc.AnalysisType = result.Kind
	doc.LastModified = now
	doc.History = prepend(doc.History, HistoryEntry{
		Action:    ActionAnalyzed(result.Kind),
		Timestamp: now,
		User:      ActorAIAgent,
	})
	return *doc, nil
}

// FailAnalysis reverts an analyzing document to draft. The revert is
// silent: no ledger entry is recorded for a failed gateway call.
func (s *Store) FailAnalysis(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if doc.Status != StatusAnalyzing {
		return nil
	}

	doc.Status = StatusDraft
	return nil
}

func (s *Store) nextID() string {
	for {
		s.seq++
		id := fmt.Sprintf("DOC-%03d", s.seq)
		if _, exists := s.docs[id]; !exists {
			return id
		}
	}
}
