package storage

import (
	"fmt"
	"time"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// ProfileStore defines the interface for profile-related storage operations.
type ProfileStore interface {
	ProfileAdd(newProfile model.ProfileInfo) (int, error)
	ProfileGet(profileInfo model.ProfileInfo, profileFilter model.ProfileFilter) ([]*model.Profile, error)
	ProfileUpdate(profile *model.Profile, profileUpdateInfo model.ProfileInfo, profileFilter model.ProfileFilter) error
	ProfileDelete(profile *model.Profile) error
}

// ProfileStorage implements the ProfileStore interface.
type ProfileStorage struct {
	storage *Storage
}

// NewProfileStorage creates a new ProfileStorage instance.
func NewProfileStorage(storage *Storage) *ProfileStorage {
	return &ProfileStorage{storage: storage}
}

// ProfileAdd adds a new profile to the database.
func (s *ProfileStorage) ProfileAdd(newProfile model.ProfileInfo) (int, error) {
	db := s.storage.GetDatabase()
	now := time.Now()

	err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer db.Rollback()

	result, err := db.Exec(
		"INSERT INTO profiles (name, password_hash, active, created, updated) VALUES (?, ?, ?, ?, ?)",
		newProfile.Name, newProfile.PasswordHash, newProfile.Active, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	if err := db.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return int(id), nil
}

// ProfileGet retrieves profiles based on the provided info and filter.
func (s *ProfileStorage) ProfileGet(profileInfo model.ProfileInfo, profileFilter model.ProfileFilter) ([]*model.Profile, error) {
	db := s.storage.GetDatabase()
	query := "SELECT id, name, password_hash, active, created, updated FROM profiles WHERE 1=1"
	var args []interface{}

	if profileFilter.ID {
		query += " AND id = ?"
		args = append(args, profileInfo.ID)
	}
	if profileFilter.Name {
		query += " AND name = ?"
		args = append(args, profileInfo.Name)
	}
	if profileFilter.Active {
		query += " AND active = ?"
		args = append(args, profileInfo.Active)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		var p model.Profile
		err := rows.Scan(&p.ID, &p.Name, &p.PasswordHash, &p.Active, &p.Created, &p.Updated)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}

// ProfileUpdate updates an existing profile in the database.
func (s *ProfileStorage) ProfileUpdate(profile *model.Profile, profileUpdateInfo model.ProfileInfo, profileFilter model.ProfileFilter) error {
	db := s.storage.GetDatabase()
	query := "UPDATE profiles SET updated = ?"
	args := []interface{}{time.Now()}

	if profileFilter.Name {
		query += ", name = ?"
		args = append(args, profileUpdateInfo.Name)
	}
	if len(profileUpdateInfo.PasswordHash) > 0 {
		query += ", password_hash = ?"
		args = append(args, profileUpdateInfo.PasswordHash)
	}
	if profileFilter.Active {
		query += ", active = ?"
		args = append(args, profileUpdateInfo.Active)
	}

	query += " WHERE id = ?"
	args = append(args, profile.ID)

	_, err := db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// ProfileDelete removes a profile from the database.
func (s *ProfileStorage) ProfileDelete(profile *model.Profile) error {
	db := s.storage.GetDatabase()
	_, err := db.Exec("DELETE FROM profiles WHERE id = ?", profile.ID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
