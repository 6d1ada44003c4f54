package document

import "testing"

func TestSyncStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status SyncStatus
		want   bool
	}{
		{"local is valid", SyncLocal, true},
		{"syncing is valid", SyncSyncing, true},
		{"synced is valid", SyncSynced, true},
		{"empty is invalid", SyncStatus(""), false},
		{"unknown is invalid", SyncStatus("uploading"), false},
		{"uppercase is invalid", SyncStatus("LOCAL"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("SyncStatus.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSyncStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SyncStatus
		wantErr bool
	}{
		{"parse local", "local", SyncLocal, false},
		{"parse syncing", "syncing", SyncSyncing, false},
		{"parse synced", "synced", SyncSynced, false},
		{"empty string", "", "", true},
		{"unknown status", "pending", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSyncStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSyncStatus() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseSyncStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllSyncStatuses(t *testing.T) {
	statuses := AllSyncStatuses()
	if len(statuses) != 3 {
		t.Fatalf("AllSyncStatuses() returned %d statuses, want 3", len(statuses))
	}
	for _, s := range statuses {
		if !s.IsValid() {
			t.Errorf("AllSyncStatuses() contains invalid status %q", s)
		}
	}
}
