package model

type OrganizationStrategy string

const (
	StrategyDate        OrganizationStrategy = "Date"
	StrategyYear        OrganizationStrategy = "Year"
	StrategyYearMonth   OrganizationStrategy = "YearMonth"
	StrategyFileType    OrganizationStrategy = "FileType"
	StrategyDateAndType OrganizationStrategy = "DateAndType"
)

type OperationMode string

const (
	ModeCopy OperationMode = "Copy"
	ModeMove OperationMode = "Move"
)

// FolderPreview describes one destination folder of a plan before execution.
type FolderPreview struct {
	Path      string   `json:"path"`
	FileCount int      `json:"file_count"`
	TotalSize int64    `json:"total_size"`
	Files     []string `json:"files"`
}

// OrganizationPlan is a proposed mapping of scanned files into destination
// folders. Plans are built by the organizer backend and only consumed here.
type OrganizationPlan struct {
	DestinationRoot   string               `json:"destination_root"`
	Strategy          OrganizationStrategy `json:"strategy"`
	Mode              OperationMode        `json:"mode"`
	Folders           []FolderPreview      `json:"folders"`
	TotalFiles        int                  `json:"total_files"`
	TotalSize         int64                `json:"total_size"`
	FilesWithoutDates int                  `json:"files_without_dates"`
}

// PlannedFileCount sums file counts over all destination folders. At most
// TotalFiles; the remainder is the FilesWithoutDates bucket.
func (p OrganizationPlan) PlannedFileCount() int {
	n := 0
	for _, folder := range p.Folders {
		n += folder.FileCount
	}
	return n
}
