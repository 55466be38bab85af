// file: internals/features/consents/model/consent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// MODEL — one row per (event, student, responsável)
// =========================================================

type Consent struct {
	// PK
	ConsentID uuid.UUID `gorm:"column:consent_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"consent_id"`

	// Tenant
	ConsentSchoolID      uuid.UUID  `gorm:"column:consent_school_id;type:uuid;not null;index:ix_consent_school" json:"consent_school_id"`
	ConsentSchoolChainID *uuid.UUID `gorm:"column:consent_school_chain_id;type:uuid;index" json:"consent_school_chain_id,omitempty"`

	// Refs
	ConsentEventID           uuid.UUID `gorm:"column:consent_event_id;type:uuid;not null;index;index:uniq_event_student,unique,priority:1" json:"consent_event_id"`
	ConsentStudentID         uuid.UUID `gorm:"column:consent_student_id;type:uuid;not null;index;index:uniq_event_student,unique,priority:2" json:"consent_student_id"`
	ConsentResponsibleUserID uuid.UUID `gorm:"column:consent_responsible_user_id;type:uuid;not null;index" json:"consent_responsible_user_id"`

	// Status — closed set, see lifecycle.EntityConsent
	ConsentStatus lifecycle.Status `gorm:"column:consent_status;type:varchar(20);not null;default:'pending';index:ix_consent_status;check:consent_status IN ('pending','approved','denied','expired')" json:"consent_status"`
	ConsentNotes  *string          `gorm:"column:consent_notes" json:"consent_notes,omitempty"`

	// Lifecycle timestamps: exactly one of approved/denied is set once the
	// status leaves pending
	ConsentRequestedAt time.Time  `gorm:"column:consent_requested_at;not null;default:now()" json:"consent_requested_at"`
	ConsentApprovedAt  *time.Time `gorm:"column:consent_approved_at" json:"consent_approved_at,omitempty"`
	ConsentDeniedAt    *time.Time `gorm:"column:consent_denied_at" json:"consent_denied_at,omitempty"`
	ConsentExpiresAt   *time.Time `gorm:"column:consent_expires_at;index:ix_consent_expires_at" json:"consent_expires_at,omitempty"`

	// Timestamps
	ConsentCreatedAt time.Time      `gorm:"column:consent_created_at;not null;default:now()" json:"consent_created_at"`
	ConsentUpdatedAt time.Time      `gorm:"column:consent_updated_at;not null;default:now()" json:"consent_updated_at"`
	ConsentDeletedAt gorm.DeletedAt `gorm:"column:consent_deleted_at;index" json:"-"`
}

func (Consent) TableName() string {
	return "consents"
}

// =========================================================
// HOOKS
// =========================================================

func (m *Consent) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ConsentCreatedAt.IsZero() {
		m.ConsentCreatedAt = now
	}
	if m.ConsentRequestedAt.IsZero() {
		m.ConsentRequestedAt = now
	}
	m.ConsentUpdatedAt = now
	return nil
}

func (m *Consent) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ConsentUpdatedAt = time.Now()
	return nil
}

// EffectiveStatus is the display status at `now` (pending past its deadline
// reads as expired even before the sweep persists it).
func (m *Consent) EffectiveStatus(now time.Time) lifecycle.Status {
	return lifecycle.EffectiveStatus(lifecycle.EntityConsent, m.ConsentStatus, m.ConsentExpiresAt, now)
}
