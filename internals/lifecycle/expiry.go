// file: internals/lifecycle/expiry.go
package lifecycle

import "time"

// EffectiveStatus derives the display status from the stored status plus a
// deadline, without writing anything. Pure and idempotent; the scheduler is
// what eventually persists the derived value (CAS, pending-only).
//
//	consent: pending + now past expires_at → expired
//	invoice: pending + now past due_date   → overdue
//
// Every other stored status is returned as-is, a paid invoice never turns
// overdue again.
func EffectiveStatus(e Entity, stored Status, deadline *time.Time, now time.Time) Status {
	if deadline == nil {
		return stored
	}
	switch e {
	case EntityConsent:
		if stored == ConsentPending && now.After(*deadline) {
			return ConsentExpired
		}
	case EntityInvoice:
		if stored == InvoicePending && now.After(*deadline) {
			return InvoiceOverdue
		}
	}
	return stored
}
