// file: internals/features/consents/dto/consent_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	consents "minhaescola_backend/internals/features/consents/model"
	"minhaescola_backend/internals/lifecycle"
)

////////////////////////////////////////////////////////////////////////////////
// CONSENTS — DTO
////////////////////////////////////////////////////////////////////////////////

// PublishEvent fan-out: one pending consent per (student, responsável)
type ConsentBatchCreateDTO struct {
	ConsentSchoolID      uuid.UUID  `json:"consent_school_id" validate:"required"`
	ConsentSchoolChainID *uuid.UUID `json:"consent_school_chain_id,omitempty"`
	ConsentEventID       uuid.UUID  `json:"consent_event_id" validate:"required"`
	ConsentExpiresAt     *time.Time `json:"consent_expires_at,omitempty"`

	Targets []ConsentTargetDTO `json:"targets" validate:"required,min=1,dive"`
}

type ConsentTargetDTO struct {
	StudentID         uuid.UUID `json:"student_id" validate:"required"`
	ResponsibleUserID uuid.UUID `json:"responsible_user_id" validate:"required"`
}

// Approve/Deny share the same body shape; deny keeps notes optional too
// (the mandatory-reason rule belongs to print requests and documents).
type ConsentDecisionDTO struct {
	Notes *string `json:"notes,omitempty"`
}

// Response
type ConsentResponse struct {
	ConsentID                uuid.UUID  `json:"consent_id"`
	ConsentSchoolID          uuid.UUID  `json:"consent_school_id"`
	ConsentSchoolChainID     *uuid.UUID `json:"consent_school_chain_id,omitempty"`
	ConsentEventID           uuid.UUID  `json:"consent_event_id"`
	ConsentStudentID         uuid.UUID  `json:"consent_student_id"`
	ConsentResponsibleUserID uuid.UUID  `json:"consent_responsible_user_id"`

	ConsentStatus lifecycle.Status `json:"consent_status"`
	// display status at read time; equals consent_status except for a
	// pending consent past its deadline
	ConsentEffectiveStatus lifecycle.Status `json:"consent_effective_status"`
	ConsentStatusLabel     string           `json:"consent_status_label"`
	ConsentNotes           *string          `json:"consent_notes,omitempty"`

	ConsentRequestedAt time.Time  `json:"consent_requested_at"`
	ConsentApprovedAt  *time.Time `json:"consent_approved_at,omitempty"`
	ConsentDeniedAt    *time.Time `json:"consent_denied_at,omitempty"`
	ConsentExpiresAt   *time.Time `json:"consent_expires_at,omitempty"`

	ConsentCreatedAt time.Time `json:"consent_created_at"`
	ConsentUpdatedAt time.Time `json:"consent_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToConsentResponse(m consents.Consent, now time.Time) ConsentResponse {
	effective := m.EffectiveStatus(now)
	return ConsentResponse{
		ConsentID:                m.ConsentID,
		ConsentSchoolID:          m.ConsentSchoolID,
		ConsentSchoolChainID:     m.ConsentSchoolChainID,
		ConsentEventID:           m.ConsentEventID,
		ConsentStudentID:         m.ConsentStudentID,
		ConsentResponsibleUserID: m.ConsentResponsibleUserID,
		ConsentStatus:            m.ConsentStatus,
		ConsentEffectiveStatus:   effective,
		ConsentStatusLabel:       lifecycle.Label(lifecycle.EntityConsent, effective),
		ConsentNotes:             m.ConsentNotes,
		ConsentRequestedAt:       m.ConsentRequestedAt,
		ConsentApprovedAt:        m.ConsentApprovedAt,
		ConsentDeniedAt:          m.ConsentDeniedAt,
		ConsentExpiresAt:         m.ConsentExpiresAt,
		ConsentCreatedAt:         m.ConsentCreatedAt,
		ConsentUpdatedAt:         m.ConsentUpdatedAt,
	}
}

func ToConsentResponses(list []consents.Consent, now time.Time) []ConsentResponse {
	out := make([]ConsentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToConsentResponse(v, now))
	}
	return out
}
