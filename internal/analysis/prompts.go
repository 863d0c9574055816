package analysis

import "fmt"

const extractionSystem = `You are a supply chain document processor. You respond only with a JSON object matching this schema:
{"summary": string, "confidence_score": number between 0 and 100, "entities": [{"label": string, "value": string}]}`

const extractionUser = `Analyze the following supply chain document snippet.
Extract key operational entities (Dates, Amounts, Invoice IDs, Vendor Names).
Return a trusted, structured summary.

Document snippet: %q`

const auditSystem = `You are a senior supply chain risk auditor. You respond only with a JSON object matching this schema:
{"summary": string, "confidence_score": number between 0 and 100, "risks": [string]}
The summary is an executive summary of the audit findings. Each risk is one identified potential risk or anomaly.`

const auditUser = `Analyze the text for logical inconsistencies, potential fraud indicators, or contractual ambiguities.
Think deeply about the implications of the terms used.

Text to audit: %q`

const intelligenceSystem = `You are a market intelligence analyst verifying counterparties in trade documents. You respond only with a JSON object matching this schema:
{"summary": string, "sources": [string]}
The summary is a brief briefing on the entity. Each source is the URI of a reference supporting the briefing.`

const intelligenceUser = `Identify the main company or product mentioned in this text: %q.
Verify its current operational status, recent news, or corporate existence.
Provide a brief briefing on the entity.`

type promptPair struct {
	system string
	user   string
}

var prompts = map[Kind]promptPair{
	KindQuickExtraction: {extractionSystem, extractionUser},
	KindDeepAudit:       {auditSystem, auditUser},
	KindMarketContext:   {intelligenceSystem, intelligenceUser},
}

// Prompts returns the system instructions and rendered user prompt for
// an operation kind over the given document content.
func Prompts(kind Kind, content string) (system, user string, err error) {
	pair, ok := prompts[kind]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return pair.system, fmt.Sprintf(pair.user, content), nil
}
