// file: internals/features/canteen/model/canteen_transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CanteenTransaction is one wallet purchase. Rows are append-only; the
// monthly transfer is built from them, never the other way around.
type CanteenTransaction struct {
	CanteenTransactionID uuid.UUID `gorm:"column:canteen_transaction_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"canteen_transaction_id"`

	// Tenant
	CanteenTransactionSchoolID      uuid.UUID  `gorm:"column:canteen_transaction_school_id;type:uuid;not null;index:ix_canteen_transaction_school" json:"canteen_transaction_school_id"`
	CanteenTransactionSchoolChainID *uuid.UUID `gorm:"column:canteen_transaction_school_chain_id;type:uuid;index" json:"canteen_transaction_school_chain_id,omitempty"`

	CanteenTransactionStudentID uuid.UUID `gorm:"column:canteen_transaction_student_id;type:uuid;not null;index" json:"canteen_transaction_student_id"`

	CanteenTransactionItemName        string `gorm:"column:canteen_transaction_item_name;type:varchar(120);not null;index" json:"canteen_transaction_item_name"`
	CanteenTransactionQuantity        int    `gorm:"column:canteen_transaction_quantity;not null;default:1" json:"canteen_transaction_quantity"`
	CanteenTransactionUnitAmountCents int64  `gorm:"column:canteen_transaction_unit_amount_cents;not null" json:"canteen_transaction_unit_amount_cents"`
	CanteenTransactionTotalCents      int64  `gorm:"column:canteen_transaction_total_cents;not null" json:"canteen_transaction_total_cents"`

	CanteenTransactionOccurredAt time.Time `gorm:"column:canteen_transaction_occurred_at;not null;default:now();index:ix_canteen_transaction_occurred_at" json:"canteen_transaction_occurred_at"`

	CanteenTransactionCreatedAt time.Time      `gorm:"column:canteen_transaction_created_at;not null;default:now()" json:"canteen_transaction_created_at"`
	CanteenTransactionDeletedAt gorm.DeletedAt `gorm:"column:canteen_transaction_deleted_at;index" json:"-"`
}

func (CanteenTransaction) TableName() string {
	return "canteen_transactions"
}

func (m *CanteenTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.CanteenTransactionCreatedAt.IsZero() {
		m.CanteenTransactionCreatedAt = now
	}
	if m.CanteenTransactionOccurredAt.IsZero() {
		m.CanteenTransactionOccurredAt = now
	}
	if m.CanteenTransactionTotalCents == 0 {
		m.CanteenTransactionTotalCents = int64(m.CanteenTransactionQuantity) * m.CanteenTransactionUnitAmountCents
	}
	return nil
}
