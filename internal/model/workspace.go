package model

import "time"

// DirEntry is one item of a plain directory listing shown while browsing,
// before (or without) a full metadata scan.
type DirEntry struct {
	Name       string     `json:"name"`
	Path       string     `json:"path"`
	Size       int64      `json:"size"`
	IsDir      bool       `json:"is_dir"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// WorkspaceFolder is the transient navigation state of the running session.
// While Loading is true, Files still holds the previous listing so the UI
// can keep showing it.
type WorkspaceFolder struct {
	Path    string     `json:"path"`
	Name    string     `json:"name"`
	Files   []DirEntry `json:"files"`
	Loading bool       `json:"loading"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a raw theme value.
func ParseTheme(raw string) (Theme, bool) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), true
	default:
		return "", false
	}
}
