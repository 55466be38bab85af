// file: internals/features/canteen/service/transfer_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "minhaescola_backend/internals/features/audit/service"
	canteen "minhaescola_backend/internals/features/canteen/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

// TransitionTransfer applies one guarded action (process / complete / fail)
// to a monthly transfer with the usual compare-and-swap. system marks
// scheduler-driven calls; admin routes triggering the bank handoff also pass
// it for process and fail, which are system-imposed transitions.
func TransitionTransfer(
	db *gorm.DB,
	id uuid.UUID,
	action lifecycle.Action,
	failureReason *string,
	actor helper.Actor,
	scope helper.TenantScope,
	system bool,
) (canteen.MonthlyTransfer, error) {
	var m canteen.MonthlyTransfer
	if err := db.First(&m, "monthly_transfer_id = ?", id).Error; err != nil {
		return m, err
	}
	// scheduler calls carry no actor; everything request-driven, system-imposed
	// or not, stays inside the caller's scope
	if actor.UserID != uuid.Nil && !scope.Covers(&m.MonthlyTransferSchoolID, m.MonthlyTransferSchoolChainID) {
		return m, lifecycle.ErrTenantMismatch()
	}

	now := time.Now()
	payload := map[string]any{}
	if failureReason != nil {
		payload["failure_reason"] = *failureReason
	}

	decision, err := lifecycle.Decide(lifecycle.Input{
		Entity:     lifecycle.EntityMonthlyTransfer,
		Current:    m.MonthlyTransferStatus,
		Action:     action,
		Payload:    payload,
		ActorID:    actor.UserID,
		ActorRoles: actor.Roles,
		System:     system,
	})
	if err != nil {
		return m, err
	}
	if decision.NoOp {
		return m, nil
	}

	updates := map[string]any{
		"monthly_transfer_status":     decision.To,
		"monthly_transfer_updated_at": now,
	}
	if decision.Stamp == "completed_at" {
		updates["monthly_transfer_completed_at"] = now
	}
	if failureReason != nil {
		updates["monthly_transfer_failure_reason"] = *failureReason
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&canteen.MonthlyTransfer{}).
			Where("monthly_transfer_id = ? AND monthly_transfer_status = ?", m.MonthlyTransferID, m.MonthlyTransferStatus).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return lifecycle.ErrConflict()
		}
		return auditService.Record(tx, lifecycle.EntityMonthlyTransfer, m.MonthlyTransferID,
			action, m.MonthlyTransferStatus, decision.To, actor.UserID, payload)
	})
	if err != nil {
		return m, err
	}

	if err := db.First(&m, "monthly_transfer_id = ?", id).Error; err != nil {
		return m, err
	}
	return m, nil
}
