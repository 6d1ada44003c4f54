package document

import "fmt"

// SyncStatus represents the document's synchronization state as tracked
// for a sync collaborator. This core only carries the state; it never
// performs synchronization.
type SyncStatus string

const (
	// SyncLocal indicates the document exists only on this device.
	SyncLocal SyncStatus = "local"

	// SyncSyncing indicates an upload or merge is in flight.
	SyncSyncing SyncStatus = "syncing"

	// SyncSynced indicates the document matches the remote copy.
	SyncSynced SyncStatus = "synced"
)

// IsValid returns true if the status is one of the supported values.
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncLocal, SyncSyncing, SyncSynced:
		return true
	default:
		return false
	}
}

// String returns the wire token for the status.
func (s SyncStatus) String() string {
	return string(s)
}

// ParseSyncStatus parses a wire token into a SyncStatus value.
// Returns an error if the token is not a supported status.
func ParseSyncStatus(s string) (SyncStatus, error) {
	status := SyncStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid sync status: %q", s)
	}
	return status, nil
}

// AllSyncStatuses returns all supported synchronization states.
func AllSyncStatuses() []SyncStatus {
	return []SyncStatus{SyncLocal, SyncSyncing, SyncSynced}
}
