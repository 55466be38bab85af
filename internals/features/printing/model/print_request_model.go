// file: internals/features/printing/model/print_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// MODEL — teacher print queue entry
// =========================================================

type PrintRequest struct {
	// PK
	PrintRequestID uuid.UUID `gorm:"column:print_request_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"print_request_id"`

	// Tenant
	PrintRequestSchoolID      uuid.UUID  `gorm:"column:print_request_school_id;type:uuid;not null;index:ix_print_request_school" json:"print_request_school_id"`
	PrintRequestSchoolChainID *uuid.UUID `gorm:"column:print_request_school_chain_id;type:uuid;index" json:"print_request_school_chain_id,omitempty"`

	// Requester (teacher)
	PrintRequestRequesterUserID uuid.UUID `gorm:"column:print_request_requester_user_id;type:uuid;not null;index" json:"print_request_requester_user_id"`

	// Content — the file itself lives in external storage, only the link here
	PrintRequestTitle       string  `gorm:"column:print_request_title;type:varchar(160);not null" json:"print_request_title"`
	PrintRequestDescription *string `gorm:"column:print_request_description" json:"print_request_description,omitempty"`
	PrintRequestFileURL     string  `gorm:"column:print_request_file_url;type:text;not null" json:"print_request_file_url"`
	PrintRequestCopies      int     `gorm:"column:print_request_copies;not null;default:1" json:"print_request_copies"`
	PrintRequestIsColor     bool    `gorm:"column:print_request_is_color;not null;default:false" json:"print_request_is_color"`

	// Status — closed set, see lifecycle.EntityPrintRequest
	PrintRequestStatus lifecycle.Status `gorm:"column:print_request_status;type:varchar(20);not null;default:'requested';index:ix_print_request_status;check:print_request_status IN ('requested','approved','rejected','printed','review')" json:"print_request_status"`

	// Feedback: mandatory on reject, optional on review
	PrintRequestFeedback *string `gorm:"column:print_request_feedback" json:"print_request_feedback,omitempty"`

	// Lifecycle timestamps
	PrintRequestRequestedAt time.Time  `gorm:"column:print_request_requested_at;not null;default:now()" json:"print_request_requested_at"`
	PrintRequestApprovedAt  *time.Time `gorm:"column:print_request_approved_at" json:"print_request_approved_at,omitempty"`
	PrintRequestRejectedAt  *time.Time `gorm:"column:print_request_rejected_at" json:"print_request_rejected_at,omitempty"`
	PrintRequestPrintedAt   *time.Time `gorm:"column:print_request_printed_at" json:"print_request_printed_at,omitempty"`

	// Timestamps
	PrintRequestCreatedAt time.Time      `gorm:"column:print_request_created_at;not null;default:now()" json:"print_request_created_at"`
	PrintRequestUpdatedAt time.Time      `gorm:"column:print_request_updated_at;not null;default:now()" json:"print_request_updated_at"`
	PrintRequestDeletedAt gorm.DeletedAt `gorm:"column:print_request_deleted_at;index" json:"-"`
}

func (PrintRequest) TableName() string {
	return "print_requests"
}

// =========================================================
// HOOKS
// =========================================================

func (m *PrintRequest) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PrintRequestCreatedAt.IsZero() {
		m.PrintRequestCreatedAt = now
	}
	if m.PrintRequestRequestedAt.IsZero() {
		m.PrintRequestRequestedAt = now
	}
	m.PrintRequestUpdatedAt = now
	return nil
}

func (m *PrintRequest) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PrintRequestUpdatedAt = time.Now()
	return nil
}
