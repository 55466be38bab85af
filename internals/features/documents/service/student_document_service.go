// file: internals/features/documents/service/student_document_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "minhaescola_backend/internals/features/audit/service"
	"minhaescola_backend/internals/features/documents/dto"
	documents "minhaescola_backend/internals/features/documents/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

// Submit files a new document for review. A resubmission after rejection is a
// new row; the history stays visible.
func Submit(db *gorm.DB, in dto.StudentDocumentCreateDTO, submitter uuid.UUID) (documents.StudentDocument, error) {
	var dt documents.DocumentType
	if err := db.First(&dt, "document_type_id = ? AND document_type_is_active = true", in.StudentDocumentTypeID).Error; err != nil {
		return documents.StudentDocument{}, err
	}

	m := documents.StudentDocument{
		StudentDocumentSchoolID:        in.StudentDocumentSchoolID,
		StudentDocumentSchoolChainID:   in.StudentDocumentSchoolChainID,
		StudentDocumentStudentID:       in.StudentDocumentStudentID,
		StudentDocumentTypeID:          in.StudentDocumentTypeID,
		StudentDocumentSubmittedByUser: submitter,
		StudentDocumentFileURL:         in.StudentDocumentFileURL,
		StudentDocumentStatus:          lifecycle.DocumentPending,
	}
	if err := db.Create(&m).Error; err != nil {
		return m, err
	}
	return m, nil
}

// CanView is the read-side tenant rule for a single document: the submitter
// always reaches their own submission, anyone else must hold the owning
// school or chain scope. Failure reads as a missing row.
func CanView(m documents.StudentDocument, actor helper.Actor, scope helper.TenantScope) error {
	if actor.UserID != uuid.Nil && actor.UserID == m.StudentDocumentSubmittedByUser {
		return nil
	}
	if scope.Covers(&m.StudentDocumentSchoolID, m.StudentDocumentSchoolChainID) {
		return nil
	}
	return lifecycle.ErrTenantMismatch()
}

// Review applies approve/reject to a pending document, stamping reviewer and
// review time atomically with the status write.
func Review(
	db *gorm.DB,
	id uuid.UUID,
	action lifecycle.Action,
	rejectionReason *string,
	actor helper.Actor,
	scope helper.TenantScope,
) (documents.StudentDocument, error) {
	var m documents.StudentDocument
	if err := db.First(&m, "student_document_id = ?", id).Error; err != nil {
		return m, err
	}
	if !scope.Covers(&m.StudentDocumentSchoolID, m.StudentDocumentSchoolChainID) {
		return m, lifecycle.ErrTenantMismatch()
	}

	now := time.Now()
	payload := map[string]any{}
	if rejectionReason != nil {
		payload["rejection_reason"] = *rejectionReason
	}

	decision, err := lifecycle.Decide(lifecycle.Input{
		Entity:     lifecycle.EntityStudentDocument,
		Current:    m.StudentDocumentStatus,
		Action:     action,
		Payload:    payload,
		ActorID:    actor.UserID,
		ActorRoles: actor.Roles,
	})
	if err != nil {
		return m, err
	}
	if decision.NoOp {
		return m, nil
	}

	updates := map[string]any{
		"student_document_status":           decision.To,
		"student_document_reviewer_user_id": actor.UserID,
		"student_document_reviewed_at":      now,
		"student_document_updated_at":       now,
	}
	if rejectionReason != nil {
		updates["student_document_rejection_reason"] = *rejectionReason
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&documents.StudentDocument{}).
			Where("student_document_id = ? AND student_document_status = ?", m.StudentDocumentID, m.StudentDocumentStatus).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return lifecycle.ErrConflict()
		}
		return auditService.Record(tx, lifecycle.EntityStudentDocument, m.StudentDocumentID,
			action, m.StudentDocumentStatus, decision.To, actor.UserID, payload)
	})
	if err != nil {
		return m, err
	}

	if err := db.Preload("DocumentType").First(&m, "student_document_id = ?", id).Error; err != nil {
		return m, err
	}
	return m, nil
}
