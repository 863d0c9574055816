package feed

import "time"

// SeedEntries returns the audit records present when the feed starts,
// staggered backwards from now so the feed opens with history.
func SeedEntries(now time.Time) []Entry {
	at := func(offset time.Duration) time.Time { return now.Add(-offset) }

	return []Entry{
		{ID: "LOG-9921", Timestamp: at(0), Type: TypeValidation, Action: "Confidence Score Update", Details: "Score calculated at 98% based on vendor history.", DocumentID: "INV-2024-001", User: "AI Agent"},
		{ID: "LOG-9920", Timestamp: at(13 * time.Second), Type: TypeSystem, Action: "Ingestion", Details: "Document received via SMTP Gateway.", DocumentID: "INV-2024-001", User: "System"},
		{ID: "LOG-9918", Timestamp: at(7*time.Minute + 15*time.Second), Type: TypeManual, Action: "Risk Override", Details: `User cleared "Unusual Port" flag after review.`, DocumentID: "BOL-8821-X", User: "Sarah Jenkins"},
		{ID: "LOG-9915", Timestamp: at(11*time.Minute + 30*time.Second), Type: TypeSecurity, Action: "Access Log", Details: "Document viewed by compliance officer.", DocumentID: "BOL-8821-X", User: "Michael Ross"},
		{ID: "LOG-9912", Timestamp: at(26*time.Minute + 53*time.Second), Type: TypeValidation, Action: "Field Extraction", Details: "Extracted Total Amount: $12,500.00", DocumentID: "PO-9920-A", User: "AI Agent"},
		{ID: "LOG-9910", Timestamp: at(26*time.Minute + 55*time.Second), Type: TypeSystem, Action: "OCR Processing", Details: "Completed with 99.9% character accuracy.", DocumentID: "PO-9920-A", User: "AI Agent"},
		{ID: "LOG-9908", Timestamp: at(47*time.Minute + 5*time.Second), Type: TypeManual, Action: "Edit Field", Details: "Updated Invoice Date from 10/22 to 10/23", DocumentID: "CUST-2210", User: "David Chen"},
		{ID: "LOG-9905", Timestamp: at(time.Hour + 10*time.Second), Type: TypeValidation, Action: "Sanction Check", Details: "Vendor cross-referenced against OFAC list.", DocumentID: "INV-2024-002", User: "AI Agent"},
		{ID: "LOG-9901", Timestamp: at(time.Hour + 12*time.Minute + 15*time.Second), Type: TypeSecurity, Action: "Flag Raised", Details: "Unknown sender domain detected.", DocumentID: "UNK-DOC-11", User: "System"},
		{ID: "LOG-9899", Timestamp: at(time.Hour + 29*time.Minute + 45*time.Second), Type: TypeValidation, Action: "Logic Check", Details: "Line items sum matches total amount.", DocumentID: "QUO-5521", User: "AI Agent"},
	}
}
