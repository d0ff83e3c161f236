package model

import "time"

// Profile represents a local editor profile. The password is optional; a
// profile without one is selected without authentication.
type Profile struct {
	ID           int
	Name         string
	PasswordHash []byte
	Active       bool
	Created      time.Time
	Updated      time.Time
}

// ProfileInfo carries profile fields for store queries and updates.
type ProfileInfo struct {
	ID           int
	Name         string
	PasswordHash []byte
	Active       bool
}

// ProfileFilter selects which ProfileInfo fields a store query matches on.
type ProfileFilter struct {
	ID     bool
	Name   bool
	Active bool
}
