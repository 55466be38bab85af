// file: internals/features/subscriptions/service/invoice_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	auditService "minhaescola_backend/internals/features/audit/service"
	"minhaescola_backend/internals/features/subscriptions/dto"
	billing "minhaescola_backend/internals/features/subscriptions/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// GENERATION — one invoice per subscription billing period
// =========================================================

// GenerateForPeriod creates the period's invoice for every subscription that
// is billable (trial/active/past_due). The unique (subscription, month, year)
// index makes re-running generation for the same period a no-op.
func GenerateForPeriod(db *gorm.DB, month, year int, dueDate time.Time) (int64, error) {
	var subs []billing.Subscription
	if err := db.
		Where("subscription_status IN ?", []lifecycle.Status{
			lifecycle.SubscriptionTrial,
			lifecycle.SubscriptionActive,
			lifecycle.SubscriptionPastDue,
		}).
		Find(&subs).Error; err != nil {
		return 0, err
	}
	if len(subs) == 0 {
		return 0, nil
	}

	rows := make([]billing.Invoice, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, billing.Invoice{
			InvoiceSubscriptionID: s.SubscriptionID,
			InvoiceMonth:          month,
			InvoiceYear:           year,
			InvoiceAmountCents:    s.SubscriptionMonthlyAmountCents * s.SubscriptionBillingCycle.Months(),
			InvoiceDueDate:        dueDate,
			InvoiceStatus:         lifecycle.InvoicePending,
		})
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	return res.RowsAffected, res.Error
}

// =========================================================
// TRANSITIONS — mark_paid / cancel / refund
// =========================================================

// TransitionInvoice applies one guarded invoice action. A successful payment
// cascades: a past_due subscription with no remaining unpaid invoices goes
// back to active.
func TransitionInvoice(
	db *gorm.DB,
	id uuid.UUID,
	action lifecycle.Action,
	paidAt *time.Time,
	note *string,
	actor helper.Actor,
	scope helper.TenantScope,
) (billing.Invoice, error) {
	var m billing.Invoice
	if err := db.First(&m, "invoice_id = ?", id).Error; err != nil {
		return m, err
	}

	var sub billing.Subscription
	if err := db.First(&sub, "subscription_id = ?", m.InvoiceSubscriptionID).Error; err != nil {
		return m, err
	}
	if !scope.Covers(sub.SubscriptionSchoolID, sub.SubscriptionSchoolChainID) {
		return m, lifecycle.ErrTenantMismatch()
	}

	now := time.Now()
	payload := map[string]any{}
	if note != nil {
		payload["note"] = *note
	}

	decision, err := lifecycle.Decide(lifecycle.Input{
		Entity:     lifecycle.EntityInvoice,
		Current:    m.EffectiveStatus(now), // stored pending past due reads as overdue
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
		"invoice_status":     decision.To,
		"invoice_updated_at": now,
	}
	switch decision.Stamp {
	case "paid_at":
		when := now
		if paidAt != nil {
			when = *paidAt
		}
		updates["invoice_paid_at"] = when
	case "refunded_at":
		updates["invoice_refunded_at"] = now
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&billing.Invoice{}).
			Where("invoice_id = ? AND invoice_status = ?", m.InvoiceID, m.InvoiceStatus).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return lifecycle.ErrConflict()
		}
		return auditService.Record(tx, lifecycle.EntityInvoice, m.InvoiceID,
			action, m.InvoiceStatus, decision.To, actor.UserID, payload)
	})
	if err != nil {
		return m, err
	}

	if decision.To == lifecycle.InvoicePaid {
		if err := settleSubscriptionAfterPayment(db, sub, now); err != nil {
			return m, err
		}
	}

	if err := db.First(&m, "invoice_id = ?", id).Error; err != nil {
		return m, err
	}
	return m, nil
}

// settleSubscriptionAfterPayment recovers a trial/past_due subscription once
// nothing unpaid remains past due.
func settleSubscriptionAfterPayment(db *gorm.DB, sub billing.Subscription, now time.Time) error {
	if sub.SubscriptionStatus != lifecycle.SubscriptionTrial &&
		sub.SubscriptionStatus != lifecycle.SubscriptionPastDue {
		return nil
	}

	var unpaid int64
	if err := db.Model(&billing.Invoice{}).
		Where("invoice_subscription_id = ?", sub.SubscriptionID).
		Where("invoice_status IN ?", []lifecycle.Status{lifecycle.InvoicePending, lifecycle.InvoiceOverdue}).
		Where("invoice_due_date < ?", now).
		Count(&unpaid).Error; err != nil {
		return err
	}
	if unpaid > 0 {
		return nil
	}

	_, err := Transition(db, sub.SubscriptionID, lifecycle.ActionActivate,
		dto.SubscriptionActionDTO{}, helper.Actor{}, helper.TenantScope{}, true)
	return err
}
