package workbench

import "time"

// SeedDocuments returns the starter documents loaded into a fresh
// workbench so the dashboard has realistic intake material on first
// boot. Timestamps are staggered backwards from now to read like a
// morning's worth of intake.
func SeedDocuments(clock Clock) []Document {
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now()

	return []Document{
		{
			ID:           "DOC-001",
			Title:        "Invoice #INV-2024-001",
			Content:      "Invoice #INV-2024-001 issued by Global Logistics Partners Ltd for $45,200.00 USD regarding shipment of semiconductor components via air freight. Payment terms: Net 60. Note: Fuel surcharge adjustment pending per Q3 index.",
			Status:       StatusDraft,
			LastModified: now,
			History: []HistoryEntry{
				{Action: ActionCreated, Timestamp: now, User: ActorSystem},
			},
		},
		{
			ID:           "DOC-002",
			Title:        "Email Quote: Maersk",
			Content:      "From: sales@maersk.com\nSubject: Rate Quote Q4\n\nDear team,\nFollowing our call, we can offer a spot rate of $2,400 per 40HC for the Shanghai -> Rotterdam route. Valid until Nov 15th. Subject to GRI.",
			Status:       StatusDraft,
			LastModified: now.Add(-10 * time.Minute),
			History: []HistoryEntry{
				{Action: "Ingested", Timestamp: now.Add(-10 * time.Minute), User: "Email Gateway"},
			},
		},
		{
			ID:           "DOC-003",
			Title:        "Customs Declaration",
			Content:      "HS Code: 8542.31.0000\nDescription: Processors and controllers, whether or not combined with memories, converters, logic circuits, amplifiers, clock and timing circuits, or other circuits.\nOrigin: Taiwan\nValue: $125,000",
			Status:       StatusDraft,
			LastModified: now.Add(-time.Hour),
			History: []HistoryEntry{
				{Action: "Uploaded", Timestamp: now.Add(-time.Hour), User: "User Upload"},
			},
		},
	}
}
