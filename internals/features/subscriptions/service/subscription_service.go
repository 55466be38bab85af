// file: internals/features/subscriptions/service/subscription_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "minhaescola_backend/internals/features/audit/service"
	"minhaescola_backend/internals/features/subscriptions/dto"
	billing "minhaescola_backend/internals/features/subscriptions/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// ONBOARDING
// =========================================================

func Create(db *gorm.DB, in dto.SubscriptionCreateDTO) (billing.Subscription, error) {
	var plan billing.Plan
	if err := db.First(&plan, "plan_id = ?", in.SubscriptionPlanID).Error; err != nil {
		return billing.Subscription{}, err
	}

	m := billing.Subscription{
		SubscriptionSchoolID:           in.SubscriptionSchoolID,
		SubscriptionSchoolChainID:      in.SubscriptionSchoolChainID,
		SubscriptionPlanID:             plan.PlanID,
		SubscriptionBillingCycle:       billing.BillingCycle(in.SubscriptionBillingCycle),
		SubscriptionStatus:             lifecycle.SubscriptionTrial,
		SubscriptionActiveStudents:     in.SubscriptionActiveStudents,
		SubscriptionMonthlyAmountCents: plan.PlanPricePerStudentCents * in.SubscriptionActiveStudents,
		SubscriptionTrialEndsAt:        in.SubscriptionTrialEndsAt,
	}
	if err := db.Create(&m).Error; err != nil {
		return m, err
	}
	return m, nil
}

// =========================================================
// TRANSITIONS — pause / cancel / reactivate (admin),
// activate / mark_past_due / block (system)
// =========================================================

// Transition applies one guarded subscription action with a CAS status
// write. system=true marks billing-event callers (sweeps, payment cascade).
func Transition(
	db *gorm.DB,
	id uuid.UUID,
	action lifecycle.Action,
	body dto.SubscriptionActionDTO,
	actor helper.Actor,
	scope helper.TenantScope,
	system bool,
) (billing.Subscription, error) {
	var m billing.Subscription
	if err := db.First(&m, "subscription_id = ?", id).Error; err != nil {
		return m, err
	}
	if !system && !scope.Covers(m.SubscriptionSchoolID, m.SubscriptionSchoolChainID) {
		return m, lifecycle.ErrTenantMismatch()
	}

	payload := map[string]any{}
	if body.Note != nil {
		payload["note"] = *body.Note
	}

	decision, err := lifecycle.Decide(lifecycle.Input{
		Entity:     lifecycle.EntitySubscription,
		Current:    m.SubscriptionStatus,
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

	now := time.Now()
	updates := map[string]any{
		"subscription_status":     decision.To,
		"subscription_updated_at": now,
	}
	switch decision.Stamp {
	case "paused_at":
		updates["subscription_paused_at"] = now
	case "canceled_at":
		updates["subscription_canceled_at"] = now
	}
	// reactivation clears the pause/cancel marks
	if decision.To == lifecycle.SubscriptionActive && action == lifecycle.ActionReactivate {
		updates["subscription_paused_at"] = nil
		updates["subscription_canceled_at"] = nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&billing.Subscription{}).
			Where("subscription_id = ? AND subscription_status = ?", m.SubscriptionID, m.SubscriptionStatus).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return lifecycle.ErrConflict()
		}
		return auditService.Record(tx, lifecycle.EntitySubscription, m.SubscriptionID,
			action, m.SubscriptionStatus, decision.To, actor.UserID, payload)
	})
	if err != nil {
		return m, err
	}

	if err := db.First(&m, "subscription_id = ?", id).Error; err != nil {
		return m, err
	}
	return m, nil
}
