package model

import "time"

type FileType string

const (
	FileTypeImage    FileType = "Image"
	FileTypeVideo    FileType = "Video"
	FileTypeDocument FileType = "Document"
	FileTypeAudio    FileType = "Audio"
	FileTypeArchive  FileType = "Archive"
	FileTypeOther    FileType = "Other"
)

// FileMetadata describes one discovered file inside a scan snapshot.
// FilePath is the unique key within a ScanResult.
type FileMetadata struct {
	FileName   string     `json:"file_name"`
	FilePath   string     `json:"file_path"`
	FileSize   int64      `json:"file_size"`
	FileType   FileType   `json:"file_type"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`

	// Type-dependent metadata, filled in by the scanner when available.
	DateTaken *time.Time `json:"date_taken,omitempty"`
	Width     *int       `json:"width,omitempty"`
	Height    *int       `json:"height,omitempty"`
	Duration  *int       `json:"duration,omitempty"`
	PageCount *int       `json:"page_count,omitempty"`

	Hash         string `json:"hash"`
	IsScreenshot bool   `json:"is_screenshot"`
	IsDuplicate  bool   `json:"is_duplicate"`

	CameraMake  *string `json:"camera_make,omitempty"`
	CameraModel *string `json:"camera_model,omitempty"`
}

// FileUpdate is a partial patch applied to a FileMetadata. Nil fields are
// left untouched. FilePath itself is not patchable since it is the key.
type FileUpdate struct {
	FileName     *string     `json:"file_name,omitempty"`
	FileSize     *int64      `json:"file_size,omitempty"`
	FileType     *FileType   `json:"file_type,omitempty"`
	DateTaken    *time.Time  `json:"date_taken,omitempty"`
	Width        *int        `json:"width,omitempty"`
	Height       *int        `json:"height,omitempty"`
	Duration     *int        `json:"duration,omitempty"`
	PageCount    *int        `json:"page_count,omitempty"`
	Hash         *string     `json:"hash,omitempty"`
	IsScreenshot *bool       `json:"is_screenshot,omitempty"`
	IsDuplicate  *bool       `json:"is_duplicate,omitempty"`
	CameraMake   *string     `json:"camera_make,omitempty"`
	CameraModel  *string     `json:"camera_model,omitempty"`
}

// Apply merges the patch into a copy of f and returns it.
func (u FileUpdate) Apply(f FileMetadata) FileMetadata {
	if u.FileName != nil {
		f.FileName = *u.FileName
	}
	if u.FileSize != nil {
		f.FileSize = *u.FileSize
	}
	if u.FileType != nil {
		f.FileType = *u.FileType
	}
	if u.DateTaken != nil {
		f.DateTaken = u.DateTaken
	}
	if u.Width != nil {
		f.Width = u.Width
	}
	if u.Height != nil {
		f.Height = u.Height
	}
	if u.Duration != nil {
		f.Duration = u.Duration
	}
	if u.PageCount != nil {
		f.PageCount = u.PageCount
	}
	if u.Hash != nil {
		f.Hash = *u.Hash
	}
	if u.IsScreenshot != nil {
		f.IsScreenshot = *u.IsScreenshot
	}
	if u.IsDuplicate != nil {
		f.IsDuplicate = *u.IsDuplicate
	}
	if u.CameraMake != nil {
		f.CameraMake = u.CameraMake
	}
	if u.CameraModel != nil {
		f.CameraModel = u.CameraModel
	}
	return f
}
