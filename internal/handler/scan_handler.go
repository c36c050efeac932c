package handler

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"kosmos/internal/model"
	"kosmos/internal/store"
	"kosmos/pkg/apierror"
)

type ScanHandler struct {
	scans *store.ScanStore
}

func NewScanHandler(scans *store.ScanStore) *ScanHandler {
	return &ScanHandler{scans: scans}
}

// Get returns the current scan snapshot; data is null when no scan is held.
func (h *ScanHandler) Get(w http.ResponseWriter, _ *http.Request) {
	result := h.scans.Result()
	if result == nil {
		writeSuccess(w, http.StatusOK, nil, nil)
		return
	}
	writeSuccess(w, http.StatusOK, result, nil)
}

// Put replaces the snapshot with the scanner's result.
func (h *ScanHandler) Put(w http.ResponseWriter, r *http.Request) {
	var result model.ScanResult
	if err := decodeBody(r, &result); err != nil {
		writeError(w, err)
		return
	}
	if result.Files == nil {
		writeError(w, apierror.New("BAD_REQUEST", "scan result requires a files sequence", "files", http.StatusBadRequest))
		return
	}

	h.scans.SetScanResult(result)
	writeSuccess(w, http.StatusOK, scanSummary(h.scans), nil)
}

// Delete clears the snapshot and its persisted copy.
func (h *ScanHandler) Delete(w http.ResponseWriter, _ *http.Request) {
	h.scans.Clear()
	writeSuccess(w, http.StatusOK, nil, nil)
}

type fileUpdateRequest struct {
	FilePath string           `json:"file_path"`
	Update   model.FileUpdate `json:"update"`
}

// PatchFile merges a partial update into one file of the snapshot. An
// unknown path leaves the snapshot untouched and still succeeds.
func (h *ScanHandler) PatchFile(w http.ResponseWriter, r *http.Request) {
	var req fileUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.FilePath == "" {
		writeError(w, apierror.New("BAD_REQUEST", "file_path is required", "", http.StatusBadRequest))
		return
	}

	h.scans.UpdateFile(req.FilePath, req.Update)
	writeSuccess(w, http.StatusOK, h.scans.Result(), nil)
}

type scanSummaryData struct {
	HasScan        bool                `json:"has_scan"`
	RootPath       string              `json:"root_path,omitempty"`
	FileCount      int                 `json:"file_count"`
	TotalSize      int64               `json:"total_size"`
	TotalSizeHuman string              `json:"total_size_human"`
	Screenshots    int                 `json:"screenshots"`
	Duplicates     int                 `json:"duplicates"`
	FileTypes      model.FileTypeStats `json:"file_types"`
	Stats          *model.ScanStats    `json:"stats,omitempty"`
}

// Summary returns the derived projections over the current snapshot.
func (h *ScanHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, scanSummary(h.scans), nil)
}

func scanSummary(scans *store.ScanStore) scanSummaryData {
	data := scanSummaryData{
		FileCount:      scans.FileCount(),
		TotalSize:      scans.TotalSize(),
		TotalSizeHuman: humanize.Bytes(uint64(scans.TotalSize())),
		Screenshots:    len(scans.Screenshots()),
		Duplicates:     len(scans.Duplicates()),
	}
	if result := scans.Result(); result != nil {
		data.HasScan = true
		data.RootPath = result.RootPath
		data.FileTypes = result.Stats.FileTypes
		data.Stats = &result.Stats
	}
	return data
}
