package storage

import (
	"fmt"
	"time"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// WorkspaceStore defines the interface for recent-file and snapshot
// storage operations.
type WorkspaceStore interface {
	RecentFileAdd(profileID int, path string) error
	RecentFileGet(profileID int, limit int) ([]*model.RecentFile, error)
	SnapshotAdd(profileID int, path string, payload []byte, limit int) (int, error)
	SnapshotGet(profileID int, limit int) ([]*model.Snapshot, error)
}

// WorkspaceStorage implements the WorkspaceStore interface.
type WorkspaceStorage struct {
	storage *Storage
}

// NewWorkspaceStorage creates a new WorkspaceStorage instance.
func NewWorkspaceStorage(storage *Storage) *WorkspaceStorage {
	return &WorkspaceStorage{storage: storage}
}

// RecentFileAdd records a successful open. Re-opening a known path only
// refreshes its timestamp.
func (s *WorkspaceStorage) RecentFileAdd(profileID int, path string) error {
	db := s.storage.GetDatabase()
	_, err := db.Exec(
		`INSERT INTO recent_files (profile_id, path, opened) VALUES (?, ?, ?)
		 ON CONFLICT (profile_id, path) DO UPDATE SET opened = excluded.opened`,
		profileID, path, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record recent file: %w", err)
	}
	return nil
}

// RecentFileGet returns a profile's recently opened paths, newest first.
func (s *WorkspaceStorage) RecentFileGet(profileID int, limit int) ([]*model.RecentFile, error) {
	db := s.storage.GetDatabase()
	rows, err := db.Query(
		"SELECT id, profile_id, path, opened FROM recent_files WHERE profile_id = ? ORDER BY opened DESC LIMIT ?",
		profileID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent files: %w", err)
	}
	defer rows.Close()

	var files []*model.RecentFile
	for rows.Next() {
		var f model.RecentFile
		if err := rows.Scan(&f.ID, &f.ProfileID, &f.Path, &f.Opened); err != nil {
			return nil, fmt.Errorf("failed to scan recent file row: %w", err)
		}
		files = append(files, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent file rows: %w", err)
	}

	return files, nil
}

// SnapshotAdd records a save payload and prunes the profile's snapshots
// down to the configured limit.
func (s *WorkspaceStorage) SnapshotAdd(profileID int, path string, payload []byte, limit int) (int, error) {
	db := s.storage.GetDatabase()

	err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer db.Rollback()

	result, err := db.Exec(
		"INSERT INTO snapshots (profile_id, path, payload, saved) VALUES (?, ?, ?, ?)",
		profileID, path, payload, time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	if limit > 0 {
		_, err = db.Exec(
			`DELETE FROM snapshots WHERE profile_id = ? AND id NOT IN (
				SELECT id FROM snapshots WHERE profile_id = ? ORDER BY saved DESC, id DESC LIMIT ?
			)`,
			profileID, profileID, limit,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to prune snapshots: %w", err)
		}
	}

	if err := db.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return int(id), nil
}

// SnapshotGet returns a profile's snapshots, newest first.
func (s *WorkspaceStorage) SnapshotGet(profileID int, limit int) ([]*model.Snapshot, error) {
	db := s.storage.GetDatabase()
	rows, err := db.Query(
		"SELECT id, profile_id, path, payload, saved FROM snapshots WHERE profile_id = ? ORDER BY saved DESC, id DESC LIMIT ?",
		profileID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*model.Snapshot
	for rows.Next() {
		var sn model.Snapshot
		if err := rows.Scan(&sn.ID, &sn.ProfileID, &sn.Path, &sn.Payload, &sn.Saved); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snaps = append(snaps, &sn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", err)
	}

	return snaps, nil
}
