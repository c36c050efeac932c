package model

import "time"

// FolderAccess is one entry in the folder access ledger, keyed by Path.
type FolderAccess struct {
	Path         string    `json:"path"`
	Name         string    `json:"name"`
	Count        int       `json:"count"`
	LastAccessed time.Time `json:"last_accessed"`
}
