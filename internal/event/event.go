package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeScanUpdated       Type = "scan.updated"
	TypeScanFileUpdated   Type = "scan.file_updated"
	TypeScanCleared       Type = "scan.cleared"
	TypeFolderAccessed    Type = "folder.accessed"
	TypeFoldersCleared    Type = "folder.cleared"
	TypeHistoryAdded      Type = "history.added"
	TypeHistoryRemoved    Type = "history.removed"
	TypeHistoryCleared    Type = "history.cleared"
	TypeOperationResult   Type = "operation.result"
	TypeOperationProgress Type = "operation.progress"
	TypeOperationsCleared Type = "operation.cleared"
	TypeNavigationChanged Type = "navigation.changed"
	TypeThemeChanged      Type = "theme.changed"
	TypeLayoutChanged     Type = "layout.changed"
	TypePanelToggled      Type = "layout.panel_toggled"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

// New builds an event with a fresh ID and the current UTC timestamp.
func New(t Type, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func()) // Returns channel and unsubscribe function
}
