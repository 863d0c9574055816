package feed

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// vocab pairs an action with its detail line.
type vocab struct {
	action  string
	details string
}

var (
	systemVocab = []vocab{
		{"Ingestion", "Received via secure gateway."},
		{"OCR Processing", "Text layer extraction complete."},
		{"Archival", "Document moved to cold storage."},
		{"Indexing", "Search index updated."},
	}
	validationVocab = []vocab{
		{"Logic Check", "Cross-referenced with ERP data."},
		{"Confidence Score", "Confidence updated to 99%."},
		{"Field Extraction", "Vendor tax ID verified."},
		{"Sanction Check", "Passed OFAC screening."},
	}
	securityVocab = []vocab{
		{"Access Log", "Encrypted view session started."},
		{"Flag Raised", "Unusual access pattern detected."},
		{"Export", "User exported document metadata."},
	}
	manualVocab = []vocab{
		{"Risk Override", "Manual clearance of flagged item."},
		{"Edit Field", "Correction applied to invoice date."},
		{"Comment", `Added internal note: "Pending approval".`},
	}

	entryTypes  = []EntryType{TypeSystem, TypeManual, TypeSecurity, TypeValidation}
	operators   = []string{"Sarah Jenkins", "Michael Ross", "David Chen", "Elena Rodriguez", "Marcus Thorne"}
	docPrefixes = []string{"INV", "BOL", "PO", "QUO", "CER"}
)

// Generator produces simulated audit entries with sequential ids.
type Generator struct {
	rand  *rand.Rand
	clock func() time.Time
	seq   int
}

// NewGenerator creates a Generator starting its id sequence after seq.
// A nil source falls back to the shared global source.
func NewGenerator(src rand.Source, seq int, clock func() time.Time) *Generator {
	g := &Generator{seq: seq, clock: clock}
	if src != nil {
		g.rand = rand.New(src)
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	return g
}

// Next produces the next simulated entry.
func (g *Generator) Next() Entry {
	g.seq++

	entryType := entryTypes[g.intN(len(entryTypes))]

	var pool []vocab
	var user string
	switch entryType {
	case TypeSystem:
		pool = systemVocab
		user = "System"
	case TypeValidation:
		pool = validationVocab
		user = "AI Agent"
	case TypeSecurity:
		pool = securityVocab
		user = operators[g.intN(len(operators))]
	default:
		pool = manualVocab
		user = operators[g.intN(len(operators))]
	}
	v := pool[g.intN(len(pool))]

	return Entry{
		ID:         fmt.Sprintf("LOG-%04d", g.seq),
		Timestamp:  g.clock(),
		Type:       entryType,
		Action:     v.action,
		Details:    v.details,
		DocumentID: fmt.Sprintf("%s-%d", docPrefixes[g.intN(len(docPrefixes))], 2024+g.intN(10000)),
		User:       user,
	}
}

func (g *Generator) intN(n int) int {
	if g.rand != nil {
		return g.rand.IntN(n)
	}
	return rand.IntN(n)
}
