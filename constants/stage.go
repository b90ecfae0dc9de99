package constants

// Stage is the canonical name of a document-pipeline stage. A request moves
// through these in order; any stage can terminate in StageFailed.
type Stage string

const (
	StageReceived   Stage = "RECEIVED"
	StageSaved      Stage = "SAVED"
	StageExtracting Stage = "EXTRACTING"
	StageExtracted  Stage = "EXTRACTED"
	StageAnalyzing  Stage = "ANALYZING"
	StageCompleted  Stage = "COMPLETED"
	StageFailed     Stage = "FAILED"
)
