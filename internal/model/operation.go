package model

import "time"

type OperationStatus string

const (
	OperationSuccess OperationStatus = "Success"
	OperationFailed  OperationStatus = "Failed"
	OperationSkipped OperationStatus = "Skipped"
)

// FileOperation is one file-level copy or move with its terminal outcome.
type FileOperation struct {
	SourcePath      string          `json:"source_path"`
	DestinationPath string          `json:"destination_path"`
	Status          OperationStatus `json:"status"`
	ErrorMessage    *string         `json:"error_message,omitempty"`
}

// OperationResult is the final outcome of executing an organization plan.
// Partial failure is modeled data, not an error: FailedCount > 0 simply
// means some operations did not complete.
type OperationResult struct {
	Success            bool            `json:"success"`
	Operations         []FileOperation `json:"operations"`
	SuccessfulCount    int             `json:"successful_count"`
	FailedCount        int             `json:"failed_count"`
	SkippedCount       int             `json:"skipped_count"`
	TotalSizeProcessed int64           `json:"total_size_processed"`
	DurationMs         int64           `json:"duration_ms"`
	Timestamp          time.Time       `json:"timestamp"`
}

// CountsConsistent reports whether the per-status counts add up to the
// operation list and Success agrees with FailedCount.
func (r OperationResult) CountsConsistent() bool {
	if r.SuccessfulCount+r.FailedCount+r.SkippedCount != len(r.Operations) {
		return false
	}
	return r.Success == (r.FailedCount == 0)
}

// OperationProgress is a transient progress snapshot pushed by the executor
// while a plan runs. Last write wins; never persisted.
type OperationProgress struct {
	CurrentFile string  `json:"current_file"`
	Processed   int     `json:"processed"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
}
