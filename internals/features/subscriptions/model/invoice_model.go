// file: internals/features/subscriptions/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// MODEL — one charge per subscription billing period
// =========================================================

type Invoice struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	InvoiceSubscriptionID uuid.UUID `gorm:"column:invoice_subscription_id;type:uuid;not null;index;index:uniq_invoice_period,unique,priority:1" json:"invoice_subscription_id"`

	// billing period (one invoice per subscription+month+year)
	InvoiceMonth int `gorm:"column:invoice_month;not null;check:invoice_month BETWEEN 1 AND 12;index:uniq_invoice_period,unique,priority:2" json:"invoice_month"`
	InvoiceYear  int `gorm:"column:invoice_year;not null;index:uniq_invoice_period,unique,priority:3" json:"invoice_year"`

	InvoiceAmountCents int       `gorm:"column:invoice_amount_cents;not null;check:invoice_amount_cents>=0" json:"invoice_amount_cents"`
	InvoiceDueDate     time.Time `gorm:"column:invoice_due_date;not null;index:ix_invoice_due_date" json:"invoice_due_date"`

	InvoiceStatus lifecycle.Status `gorm:"column:invoice_status;type:varchar(20);not null;default:'pending';index:ix_invoice_status;check:invoice_status IN ('pending','paid','overdue','canceled','refunded')" json:"invoice_status"`

	InvoicePaidAt     *time.Time `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`
	InvoiceRefundedAt *time.Time `gorm:"column:invoice_refunded_at" json:"invoice_refunded_at,omitempty"`

	InvoiceCreatedAt time.Time `gorm:"column:invoice_created_at;not null;default:now()" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `gorm:"column:invoice_updated_at;not null;default:now()" json:"invoice_updated_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// =========================================================
// HOOKS
// =========================================================

func (m *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *Invoice) BeforeUpdate(tx *gorm.DB) (err error) {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}

// EffectiveStatus: a stored-pending invoice past its due date reads as
// overdue before the sweep touches it; paid/canceled/refunded never revert.
func (m *Invoice) EffectiveStatus(now time.Time) lifecycle.Status {
	due := m.InvoiceDueDate
	return lifecycle.EffectiveStatus(lifecycle.EntityInvoice, m.InvoiceStatus, &due, now)
}
