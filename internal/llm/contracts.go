package llm

import "context"

// Analysis is the structured summary of one financial document. The model is
// required to return exactly this shape; replies that do not validate are
// rejected rather than passed through.
type Analysis struct {
	DocumentType string   `json:"document_type"`
	Explanation  string   `json:"explanation"`
	KeyDetails   []string `json:"key_details"`
	Calculations []string `json:"calculations"`
	Insights     string   `json:"insights"`
}

// NonFinancialDocumentType is the document_type the model must use when the
// content is unrelated to finance, banking, or investment.
const NonFinancialDocumentType = "non-financial"

// Analyzer is the interface the document pipeline depends on.
type Analyzer interface {
	// Analyze builds the analysis prompt for the extracted text, invokes the
	// model, and returns the validated analysis plus the raw reply JSON.
	Analyze(ctx context.Context, text string) (Analysis, []byte, error)
}

// Adviser answers a single free-form financial planning query with plain
// text. Used by the /ask endpoint; no schema applies.
type Adviser interface {
	Advise(ctx context.Context, query string) (string, error)
}
