// file: internals/features/canteen/dto/canteen_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	canteen "minhaescola_backend/internals/features/canteen/model"
	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// REQUESTS
// =========================================================

type CanteenTransactionCreateDTO struct {
	CanteenTransactionSchoolID      uuid.UUID  `json:"canteen_transaction_school_id" validate:"required"`
	CanteenTransactionSchoolChainID *uuid.UUID `json:"canteen_transaction_school_chain_id"`
	CanteenTransactionStudentID     uuid.UUID  `json:"canteen_transaction_student_id" validate:"required"`

	CanteenTransactionItemName        string     `json:"canteen_transaction_item_name" validate:"required,max=120"`
	CanteenTransactionQuantity        int        `json:"canteen_transaction_quantity" validate:"required,min=1,max=100"`
	CanteenTransactionUnitAmountCents int64      `json:"canteen_transaction_unit_amount_cents" validate:"required,min=1"`
	CanteenTransactionOccurredAt      *time.Time `json:"canteen_transaction_occurred_at"`
}

type MonthlyTransferActionDTO struct {
	Note *string `json:"note"`
}

type MonthlyTransferFailDTO struct {
	FailureReason *string `json:"failure_reason" validate:"required"`
}

// AggregateRunDTO names the period to (re)build transfers for.
type AggregateRunDTO struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=2020,max=2100"`
}

// =========================================================
// RESPONSES
// =========================================================

type CanteenTransactionResponse struct {
	CanteenTransactionID uuid.UUID `json:"canteen_transaction_id"`

	CanteenTransactionSchoolID      uuid.UUID  `json:"canteen_transaction_school_id"`
	CanteenTransactionSchoolChainID *uuid.UUID `json:"canteen_transaction_school_chain_id,omitempty"`
	CanteenTransactionStudentID     uuid.UUID  `json:"canteen_transaction_student_id"`

	CanteenTransactionItemName        string    `json:"canteen_transaction_item_name"`
	CanteenTransactionQuantity        int       `json:"canteen_transaction_quantity"`
	CanteenTransactionUnitAmountCents int64     `json:"canteen_transaction_unit_amount_cents"`
	CanteenTransactionTotalCents      int64     `json:"canteen_transaction_total_cents"`
	CanteenTransactionOccurredAt      time.Time `json:"canteen_transaction_occurred_at"`
}

type MonthlyTransferResponse struct {
	MonthlyTransferID uuid.UUID `json:"monthly_transfer_id"`

	MonthlyTransferSchoolID      uuid.UUID  `json:"monthly_transfer_school_id"`
	MonthlyTransferSchoolChainID *uuid.UUID `json:"monthly_transfer_school_chain_id,omitempty"`

	MonthlyTransferMonth int `json:"monthly_transfer_month"`
	MonthlyTransferYear  int `json:"monthly_transfer_year"`

	MonthlyTransferTotalCents       int64             `json:"monthly_transfer_total_cents"`
	MonthlyTransferTransactionCount int64             `json:"monthly_transfer_transaction_count"`
	MonthlyTransferBreakdown        datatypes.JSONMap `json:"monthly_transfer_breakdown"`

	MonthlyTransferStatus      lifecycle.Status `json:"monthly_transfer_status"`
	MonthlyTransferStatusLabel string           `json:"monthly_transfer_status_label"`

	MonthlyTransferFailureReason *string    `json:"monthly_transfer_failure_reason,omitempty"`
	MonthlyTransferCompletedAt   *time.Time `json:"monthly_transfer_completed_at,omitempty"`

	MonthlyTransferCreatedAt time.Time `json:"monthly_transfer_created_at"`
	MonthlyTransferUpdatedAt time.Time `json:"monthly_transfer_updated_at"`
}

// TopItemResponse is one row of the best-selling ranking.
type TopItemResponse struct {
	ItemName   string `json:"item_name"`
	Quantity   int64  `json:"quantity"`
	TotalCents int64  `json:"total_cents"`
}

// =========================================================
// MAPPERS
// =========================================================

func ToCanteenTransactionResponse(m canteen.CanteenTransaction) CanteenTransactionResponse {
	return CanteenTransactionResponse{
		CanteenTransactionID:              m.CanteenTransactionID,
		CanteenTransactionSchoolID:        m.CanteenTransactionSchoolID,
		CanteenTransactionSchoolChainID:   m.CanteenTransactionSchoolChainID,
		CanteenTransactionStudentID:       m.CanteenTransactionStudentID,
		CanteenTransactionItemName:        m.CanteenTransactionItemName,
		CanteenTransactionQuantity:        m.CanteenTransactionQuantity,
		CanteenTransactionUnitAmountCents: m.CanteenTransactionUnitAmountCents,
		CanteenTransactionTotalCents:      m.CanteenTransactionTotalCents,
		CanteenTransactionOccurredAt:      m.CanteenTransactionOccurredAt,
	}
}

func ToCanteenTransactionResponses(list []canteen.CanteenTransaction) []CanteenTransactionResponse {
	out := make([]CanteenTransactionResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToCanteenTransactionResponse(m))
	}
	return out
}

func ToMonthlyTransferResponse(m canteen.MonthlyTransfer) MonthlyTransferResponse {
	return MonthlyTransferResponse{
		MonthlyTransferID:               m.MonthlyTransferID,
		MonthlyTransferSchoolID:         m.MonthlyTransferSchoolID,
		MonthlyTransferSchoolChainID:    m.MonthlyTransferSchoolChainID,
		MonthlyTransferMonth:            m.MonthlyTransferMonth,
		MonthlyTransferYear:             m.MonthlyTransferYear,
		MonthlyTransferTotalCents:       m.MonthlyTransferTotalCents,
		MonthlyTransferTransactionCount: m.MonthlyTransferTransactionCount,
		MonthlyTransferBreakdown:        m.MonthlyTransferBreakdown,
		MonthlyTransferStatus:           m.MonthlyTransferStatus,
		MonthlyTransferStatusLabel:      lifecycle.Label(lifecycle.EntityMonthlyTransfer, m.MonthlyTransferStatus),
		MonthlyTransferFailureReason:    m.MonthlyTransferFailureReason,
		MonthlyTransferCompletedAt:      m.MonthlyTransferCompletedAt,
		MonthlyTransferCreatedAt:        m.MonthlyTransferCreatedAt,
		MonthlyTransferUpdatedAt:        m.MonthlyTransferUpdatedAt,
	}
}

func ToMonthlyTransferResponses(list []canteen.MonthlyTransfer) []MonthlyTransferResponse {
	out := make([]MonthlyTransferResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMonthlyTransferResponse(m))
	}
	return out
}
