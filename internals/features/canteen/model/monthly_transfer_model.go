// file: internals/features/canteen/model/monthly_transfer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// MODEL — one settlement per (school, month, year)
// =========================================================

type MonthlyTransfer struct {
	// PK
	MonthlyTransferID uuid.UUID `gorm:"column:monthly_transfer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"monthly_transfer_id"`

	// Tenant — one transfer per school canteen per period
	MonthlyTransferSchoolID      uuid.UUID  `gorm:"column:monthly_transfer_school_id;type:uuid;not null;index:uniq_transfer_period,unique,priority:1" json:"monthly_transfer_school_id"`
	MonthlyTransferSchoolChainID *uuid.UUID `gorm:"column:monthly_transfer_school_chain_id;type:uuid;index" json:"monthly_transfer_school_chain_id,omitempty"`

	MonthlyTransferMonth int `gorm:"column:monthly_transfer_month;not null;index:uniq_transfer_period,unique,priority:2;check:monthly_transfer_month BETWEEN 1 AND 12" json:"monthly_transfer_month"`
	MonthlyTransferYear  int `gorm:"column:monthly_transfer_year;not null;index:uniq_transfer_period,unique,priority:3" json:"monthly_transfer_year"`

	// Totals
	MonthlyTransferTotalCents       int64 `gorm:"column:monthly_transfer_total_cents;not null;default:0" json:"monthly_transfer_total_cents"`
	MonthlyTransferTransactionCount int64 `gorm:"column:monthly_transfer_transaction_count;not null;default:0" json:"monthly_transfer_transaction_count"`

	// Per-item breakdown: {"item": {"quantity": n, "total_cents": n}}
	MonthlyTransferBreakdown datatypes.JSONMap `gorm:"column:monthly_transfer_breakdown;type:jsonb" json:"monthly_transfer_breakdown"`

	// Status — closed set, see lifecycle.EntityMonthlyTransfer
	MonthlyTransferStatus lifecycle.Status `gorm:"column:monthly_transfer_status;type:varchar(20);not null;default:'pending';index:ix_monthly_transfer_status;check:monthly_transfer_status IN ('pending','processing','completed','failed')" json:"monthly_transfer_status"`

	MonthlyTransferFailureReason *string    `gorm:"column:monthly_transfer_failure_reason" json:"monthly_transfer_failure_reason,omitempty"`
	MonthlyTransferCompletedAt   *time.Time `gorm:"column:monthly_transfer_completed_at" json:"monthly_transfer_completed_at,omitempty"`

	// Timestamps
	MonthlyTransferCreatedAt time.Time      `gorm:"column:monthly_transfer_created_at;not null;default:now()" json:"monthly_transfer_created_at"`
	MonthlyTransferUpdatedAt time.Time      `gorm:"column:monthly_transfer_updated_at;not null;default:now()" json:"monthly_transfer_updated_at"`
	MonthlyTransferDeletedAt gorm.DeletedAt `gorm:"column:monthly_transfer_deleted_at;index" json:"-"`
}

func (MonthlyTransfer) TableName() string {
	return "monthly_transfers"
}

// =========================================================
// HOOKS
// =========================================================

func (m *MonthlyTransfer) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.MonthlyTransferCreatedAt.IsZero() {
		m.MonthlyTransferCreatedAt = now
	}
	m.MonthlyTransferUpdatedAt = now
	return nil
}

func (m *MonthlyTransfer) BeforeUpdate(tx *gorm.DB) (err error) {
	m.MonthlyTransferUpdatedAt = time.Now()
	return nil
}
