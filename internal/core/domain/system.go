package domain

import (
	"errors"
	"time"
)

// SystemStatus represents the lifecycle state of a catalog entry.
type SystemStatus string

const (
	StatusActive   SystemStatus = "active"
	StatusInactive SystemStatus = "inactive"
	StatusPending  SystemStatus = "pending"
)

var ErrSystemNotFound = errors.New("system not found")
var ErrCorruptDocument = errors.New("catalog document is corrupt")

// IsValid reports whether s is one of the three allowed statuses.
func (s SystemStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// Steward is a named, emailed responsible party for a system.
type Steward struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// System is the sole catalog entity: one enterprise system with its three
// stewards. ID and timestamps are assigned by the store, never by callers.
type System struct {
	ID                string       `json:"system_id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	BusinessSteward   Steward      `json:"business_steward"`
	SecuritySteward   Steward      `json:"security_steward"`
	TechnicalSteward  Steward      `json:"technical_steward"`
	Status            SystemStatus `json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// SystemPatch is a partial update: nil fields are left unchanged. A supplied
// steward replaces that steward as a whole. ID and CreatedAt are not
// patchable by design.
type SystemPatch struct {
	Name             *string
	Description      *string
	BusinessSteward  *Steward
	SecuritySteward  *Steward
	TechnicalSteward *Steward
	Status           *SystemStatus
}

// IsZero reports whether the patch carries no changes.
func (p SystemPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil &&
		p.BusinessSteward == nil && p.SecuritySteward == nil &&
		p.TechnicalSteward == nil && p.Status == nil
}

// Apply merges the non-nil patch fields onto s. UpdatedAt is the store's
// responsibility and is not touched here.
func (p SystemPatch) Apply(s *System) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.BusinessSteward != nil {
		s.BusinessSteward = *p.BusinessSteward
	}
	if p.SecuritySteward != nil {
		s.SecuritySteward = *p.SecuritySteward
	}
	if p.TechnicalSteward != nil {
		s.TechnicalSteward = *p.TechnicalSteward
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}
