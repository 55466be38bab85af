// file: internals/features/subscriptions/service/billing_sweep_service.go
package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	billing "minhaescola_backend/internals/features/subscriptions/model"
	"minhaescola_backend/internals/lifecycle"
)

// GracePeriod before a past_due subscription is blocked.
const GracePeriod = 15 * 24 * time.Hour

// SweepOverdueInvoices persists pending→overdue for invoices past due date.
// The pending precondition is the compare-and-swap; a just-paid invoice no
// longer matches.
func SweepOverdueInvoices(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&billing.Invoice{}).
		Where("invoice_status = ?", lifecycle.InvoicePending).
		Where("invoice_due_date < ?", now).
		Updates(map[string]any{
			"invoice_status":     lifecycle.InvoiceOverdue,
			"invoice_updated_at": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[SWEEP] invoices overdue: %d", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// SweepPastDueSubscriptions moves active subscriptions with an overdue
// invoice to past_due.
func SweepPastDueSubscriptions(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&billing.Subscription{}).
		Where("subscription_status = ?", lifecycle.SubscriptionActive).
		Where(`subscription_id IN (
			SELECT invoice_subscription_id FROM invoices
			WHERE invoice_status = ? AND invoice_due_date < ?
		)`, lifecycle.InvoiceOverdue, now).
		Updates(map[string]any{
			"subscription_status":     lifecycle.SubscriptionPastDue,
			"subscription_updated_at": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[SWEEP] subscriptions past_due: %d", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// SweepBlockedSubscriptions blocks past_due subscriptions whose oldest
// overdue invoice has exhausted the grace period.
func SweepBlockedSubscriptions(db *gorm.DB, now time.Time) (int64, error) {
	cutoff := now.Add(-GracePeriod)
	res := db.Model(&billing.Subscription{}).
		Where("subscription_status = ?", lifecycle.SubscriptionPastDue).
		Where(`subscription_id IN (
			SELECT invoice_subscription_id FROM invoices
			WHERE invoice_status = ? AND invoice_due_date < ?
		)`, lifecycle.InvoiceOverdue, cutoff).
		Updates(map[string]any{
			"subscription_status":     lifecycle.SubscriptionBlocked,
			"subscription_updated_at": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[SWEEP] subscriptions blocked: %d", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
