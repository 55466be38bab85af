// file: internals/features/consents/service/consent_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	auditService "minhaescola_backend/internals/features/audit/service"
	"minhaescola_backend/internals/features/consents/dto"
	consents "minhaescola_backend/internals/features/consents/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// BATCH CREATE — event published to an audience
// =========================================================

// CreateBatch fans an event out into one pending consent per target.
// Re-publishing the same event is idempotent: the (event, student) unique
// index makes duplicates no-ops.
func CreateBatch(db *gorm.DB, in dto.ConsentBatchCreateDTO) ([]consents.Consent, error) {
	rows := make([]consents.Consent, 0, len(in.Targets))
	for _, t := range in.Targets {
		rows = append(rows, consents.Consent{
			ConsentSchoolID:          in.ConsentSchoolID,
			ConsentSchoolChainID:     in.ConsentSchoolChainID,
			ConsentEventID:           in.ConsentEventID,
			ConsentStudentID:         t.StudentID,
			ConsentResponsibleUserID: t.ResponsibleUserID,
			ConsentStatus:            lifecycle.ConsentPending,
			ConsentExpiresAt:         in.ConsentExpiresAt,
		})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// =========================================================
// TENANT RULE
// =========================================================

// CanView is the read/command tenant rule for a single consent: the
// designated responsável always reaches their own row, anyone else must hold
// the owning school or chain scope. Failure reads as a missing row.
func CanView(m consents.Consent, actor helper.Actor, scope helper.TenantScope) error {
	if actor.UserID != uuid.Nil && actor.UserID == m.ConsentResponsibleUserID {
		return nil
	}
	if scope.Covers(&m.ConsentSchoolID, m.ConsentSchoolChainID) {
		return nil
	}
	return lifecycle.ErrTenantMismatch()
}

// =========================================================
// TRANSITION — approve / deny
// =========================================================

// Transition applies one guarded action to a consent. The status write is a
// compare-and-swap against the status just read, so a concurrent decision
// loses with Conflict instead of being overwritten.
func Transition(
	db *gorm.DB,
	id uuid.UUID,
	action lifecycle.Action,
	body dto.ConsentDecisionDTO,
	actor helper.Actor,
	scope helper.TenantScope,
) (consents.Consent, error) {
	var m consents.Consent
	if err := db.First(&m, "consent_id = ?", id).Error; err != nil {
		return m, err
	}
	if err := CanView(m, actor, scope); err != nil {
		return m, err
	}

	now := time.Now()
	payload := map[string]any{}
	if body.Notes != nil {
		payload["notes"] = *body.Notes
	}

	// guard against the effective status: a pending consent past its
	// deadline is already expired for decision purposes, even before the
	// sweep persists it
	decision, err := lifecycle.Decide(lifecycle.Input{
		Entity:        lifecycle.EntityConsent,
		Current:       m.EffectiveStatus(now),
		Action:        action,
		Payload:       payload,
		ActorID:       actor.UserID,
		ActorRoles:    actor.Roles,
		ResponsibleID: m.ConsentResponsibleUserID,
	})
	if err != nil {
		return m, err
	}
	if decision.NoOp {
		return m, nil
	}

	updates := map[string]any{
		"consent_status":     decision.To,
		"consent_updated_at": now,
	}
	switch decision.Stamp {
	case "approved_at":
		updates["consent_approved_at"] = now
	case "denied_at":
		updates["consent_denied_at"] = now
	}
	if body.Notes != nil {
		updates["consent_notes"] = *body.Notes
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&consents.Consent{}).
			Where("consent_id = ? AND consent_status = ?", m.ConsentID, m.ConsentStatus).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return lifecycle.ErrConflict()
		}
		return auditService.Record(tx, lifecycle.EntityConsent, m.ConsentID,
			action, m.ConsentStatus, decision.To, actor.UserID, payload)
	})
	if err != nil {
		return m, err
	}

	if err := db.First(&m, "consent_id = ?", id).Error; err != nil {
		return m, err
	}
	return m, nil
}
