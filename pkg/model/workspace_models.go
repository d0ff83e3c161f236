package model

import "time"

// RecentFile records one collection path a profile has opened.
type RecentFile struct {
	ID        int
	ProfileID int
	Path      string
	Opened    time.Time
}

// Snapshot records the serialized payload of one successful save, so a
// prior export can be recovered.
type Snapshot struct {
	ID        int
	ProfileID int
	Path      string
	Payload   []byte
	Saved     time.Time
}
