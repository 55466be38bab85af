// file: internals/features/printing/service/print_request_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "minhaescola_backend/internals/features/audit/service"
	"minhaescola_backend/internals/features/printing/dto"
	printing "minhaescola_backend/internals/features/printing/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

// Create opens a new queue entry for the requesting teacher.
func Create(db *gorm.DB, in dto.PrintRequestCreateDTO, requester uuid.UUID) (printing.PrintRequest, error) {
	m := printing.PrintRequest{
		PrintRequestSchoolID:        in.PrintRequestSchoolID,
		PrintRequestSchoolChainID:   in.PrintRequestSchoolChainID,
		PrintRequestRequesterUserID: requester,
		PrintRequestTitle:           in.PrintRequestTitle,
		PrintRequestDescription:     in.PrintRequestDescription,
		PrintRequestFileURL:         in.PrintRequestFileURL,
		PrintRequestCopies:          in.PrintRequestCopies,
		PrintRequestIsColor:         in.PrintRequestIsColor,
		PrintRequestStatus:          lifecycle.PrintRequested,
	}
	if err := db.Create(&m).Error; err != nil {
		return m, err
	}
	return m, nil
}

// CanView is the read/command tenant rule for a single print request: the
// requester always reaches their own row, anyone else must hold the owning
// school or chain scope. Failure reads as a missing row.
func CanView(m printing.PrintRequest, actor helper.Actor, scope helper.TenantScope) error {
	if actor.UserID != uuid.Nil && actor.UserID == m.PrintRequestRequesterUserID {
		return nil
	}
	if scope.Covers(&m.PrintRequestSchoolID, m.PrintRequestSchoolChainID) {
		return nil
	}
	return lifecycle.ErrTenantMismatch()
}

// Transition applies one guarded action to a print request. The status write
// is a compare-and-swap against the status just read.
//
// feedback lands in the row on reject and review; fileURL replaces the
// document on resubmit.
func Transition(
	db *gorm.DB,
	id uuid.UUID,
	action lifecycle.Action,
	feedback *string,
	fileURL *string,
	actor helper.Actor,
	scope helper.TenantScope,
) (printing.PrintRequest, error) {
	var m printing.PrintRequest
	if err := db.First(&m, "print_request_id = ?", id).Error; err != nil {
		return m, err
	}
	if err := CanView(m, actor, scope); err != nil {
		return m, err
	}

	now := time.Now()
	payload := map[string]any{}
	if feedback != nil {
		payload["feedback"] = *feedback
	}

	decision, err := lifecycle.Decide(lifecycle.Input{
		Entity:        lifecycle.EntityPrintRequest,
		Current:       m.PrintRequestStatus,
		Action:        action,
		Payload:       payload,
		ActorID:       actor.UserID,
		ActorRoles:    actor.Roles,
		ResponsibleID: m.PrintRequestRequesterUserID,
	})
	if err != nil {
		return m, err
	}
	if decision.NoOp {
		return m, nil
	}

	updates := map[string]any{
		"print_request_status":     decision.To,
		"print_request_updated_at": now,
	}
	switch decision.Stamp {
	case "approved_at":
		updates["print_request_approved_at"] = now
	case "rejected_at":
		updates["print_request_rejected_at"] = now
	case "printed_at":
		updates["print_request_printed_at"] = now
	}
	if feedback != nil {
		updates["print_request_feedback"] = *feedback
	}
	if action == lifecycle.ActionResubmit {
		// back to the queue with a clean slate
		updates["print_request_feedback"] = nil
		updates["print_request_requested_at"] = now
		if fileURL != nil {
			updates["print_request_file_url"] = *fileURL
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&printing.PrintRequest{}).
			Where("print_request_id = ? AND print_request_status = ?", m.PrintRequestID, m.PrintRequestStatus).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return lifecycle.ErrConflict()
		}
		return auditService.Record(tx, lifecycle.EntityPrintRequest, m.PrintRequestID,
			action, m.PrintRequestStatus, decision.To, actor.UserID, payload)
	})
	if err != nil {
		return m, err
	}

	if err := db.First(&m, "print_request_id = ?", id).Error; err != nil {
		return m, err
	}
	return m, nil
}
