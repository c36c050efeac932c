package model

import "time"

// FileTypeStats breaks file counts down per FileType.
type FileTypeStats struct {
	Images    int `json:"images"`
	Videos    int `json:"videos"`
	Documents int `json:"documents"`
	Audio     int `json:"audio"`
	Archives  int `json:"archives"`
	Other     int `json:"other"`
}

// Total sums the per-type counts. Equal to ScanStats.TotalFiles for a
// well-formed scan.
func (s FileTypeStats) Total() int {
	return s.Images + s.Videos + s.Documents + s.Audio + s.Archives + s.Other
}

// QualityIssues counts files flagged by the scanner's quality heuristics.
type QualityIssues struct {
	Screenshots     int `json:"screenshots"`
	Duplicates      int `json:"duplicates"`
	LowResolution   int `json:"low_resolution"`
	SmallFiles      int `json:"small_files"`
	MissingMetadata int `json:"missing_metadata"`
	PotentialMemes  int `json:"potential_memes"`
}

type ScanStats struct {
	TotalFiles int           `json:"total_files"`
	FileTypes  FileTypeStats `json:"file_types"`
	// Screenshots and Duplicates are superseded by Quality but kept on the
	// wire for older UI builds.
	Screenshots    int           `json:"screenshots"`
	Duplicates     int           `json:"duplicates"`
	TotalSize      int64         `json:"total_size"`
	DateRangeStart *time.Time    `json:"date_range_start,omitempty"`
	DateRangeEnd   *time.Time    `json:"date_range_end,omitempty"`
	Quality        QualityIssues `json:"quality"`
}

// ScanResult is the snapshot produced by one scan of a folder. Stats are
// computed once at scan time; per-file edits to Files do not refresh them.
type ScanResult struct {
	RootPath string         `json:"root_path"`
	Files    []FileMetadata `json:"files"`
	Stats    ScanStats      `json:"stats"`
}
