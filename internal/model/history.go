package model

import "time"

type HistoryStatus string

const (
	HistorySuccess HistoryStatus = "success"
	HistoryWarning HistoryStatus = "warning"
	HistoryError   HistoryStatus = "error"
)

// HistoryEntry is a condensed record of one past organize run. Entries are
// immutable once appended to the ledger.
type HistoryEntry struct {
	ID             string        `json:"id"`
	Timestamp      time.Time     `json:"timestamp"`
	FolderPath     string        `json:"folder_path"`
	TotalFiles     int           `json:"total_files"`
	TotalSize      int64         `json:"total_size"`
	DateRangeStart *time.Time    `json:"date_range_start,omitempty"`
	DateRangeEnd   *time.Time    `json:"date_range_end,omitempty"`
	FileTypes      FileTypeStats `json:"file_types"`
	Errors         int           `json:"errors"`
	Warnings       int           `json:"warnings"`
	Status         HistoryStatus `json:"status"`
}
