// file: internals/features/subscriptions/dto/subscription_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	billing "minhaescola_backend/internals/features/subscriptions/model"
	"minhaescola_backend/internals/lifecycle"
)

////////////////////////////////////////////////////////////////////////////////
// SUBSCRIPTIONS — DTO
////////////////////////////////////////////////////////////////////////////////

// Onboarding: exactly one of school_id / school_chain_id
type SubscriptionCreateDTO struct {
	SubscriptionSchoolID       *uuid.UUID `json:"subscription_school_id,omitempty"`
	SubscriptionSchoolChainID  *uuid.UUID `json:"subscription_school_chain_id,omitempty"`
	SubscriptionPlanID         uuid.UUID  `json:"subscription_plan_id" validate:"required"`
	SubscriptionBillingCycle   string     `json:"subscription_billing_cycle" validate:"required,oneof=monthly quarterly semi_annual annual"`
	SubscriptionActiveStudents int        `json:"subscription_active_students" validate:"min=0"`
	SubscriptionTrialEndsAt    *time.Time `json:"subscription_trial_ends_at,omitempty"`
}

// Pause/Cancel/Reactivate share an optional note
type SubscriptionActionDTO struct {
	Note *string `json:"note,omitempty"`
}

type SubscriptionResponse struct {
	SubscriptionID            uuid.UUID  `json:"subscription_id"`
	SubscriptionSchoolID      *uuid.UUID `json:"subscription_school_id,omitempty"`
	SubscriptionSchoolChainID *uuid.UUID `json:"subscription_school_chain_id,omitempty"`
	SubscriptionPlanID        uuid.UUID  `json:"subscription_plan_id"`

	SubscriptionBillingCycle string           `json:"subscription_billing_cycle"`
	SubscriptionStatus       lifecycle.Status `json:"subscription_status"`
	SubscriptionStatusLabel  string           `json:"subscription_status_label"`

	SubscriptionMonthlyAmountCents int `json:"subscription_monthly_amount_cents"`
	SubscriptionActiveStudents     int `json:"subscription_active_students"`

	SubscriptionCurrentPeriodEnd *time.Time `json:"subscription_current_period_end,omitempty"`
	SubscriptionTrialEndsAt      *time.Time `json:"subscription_trial_ends_at,omitempty"`
	SubscriptionPausedAt         *time.Time `json:"subscription_paused_at,omitempty"`
	SubscriptionCanceledAt       *time.Time `json:"subscription_canceled_at,omitempty"`

	SubscriptionCreatedAt time.Time `json:"subscription_created_at"`
	SubscriptionUpdatedAt time.Time `json:"subscription_updated_at"`
}

func ToSubscriptionResponse(m billing.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID:                 m.SubscriptionID,
		SubscriptionSchoolID:           m.SubscriptionSchoolID,
		SubscriptionSchoolChainID:      m.SubscriptionSchoolChainID,
		SubscriptionPlanID:             m.SubscriptionPlanID,
		SubscriptionBillingCycle:       string(m.SubscriptionBillingCycle),
		SubscriptionStatus:             m.SubscriptionStatus,
		SubscriptionStatusLabel:        lifecycle.Label(lifecycle.EntitySubscription, m.SubscriptionStatus),
		SubscriptionMonthlyAmountCents: m.SubscriptionMonthlyAmountCents,
		SubscriptionActiveStudents:     m.SubscriptionActiveStudents,
		SubscriptionCurrentPeriodEnd:   m.SubscriptionCurrentPeriodEnd,
		SubscriptionTrialEndsAt:        m.SubscriptionTrialEndsAt,
		SubscriptionPausedAt:           m.SubscriptionPausedAt,
		SubscriptionCanceledAt:         m.SubscriptionCanceledAt,
		SubscriptionCreatedAt:          m.SubscriptionCreatedAt,
		SubscriptionUpdatedAt:          m.SubscriptionUpdatedAt,
	}
}

func ToSubscriptionResponses(list []billing.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToSubscriptionResponse(v))
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////
// INVOICES — DTO
////////////////////////////////////////////////////////////////////////////////

type InvoiceMarkPaidDTO struct {
	PaidAt *time.Time `json:"paid_at,omitempty"` // nil → now()
	Note   *string    `json:"note,omitempty"`
}

type InvoiceActionDTO struct {
	Note *string `json:"note,omitempty"`
}

type InvoiceResponse struct {
	InvoiceID             uuid.UUID `json:"invoice_id"`
	InvoiceSubscriptionID uuid.UUID `json:"invoice_subscription_id"`

	InvoiceMonth int `json:"invoice_month"`
	InvoiceYear  int `json:"invoice_year"`

	InvoiceAmountCents int       `json:"invoice_amount_cents"`
	InvoiceDueDate     time.Time `json:"invoice_due_date"`

	InvoiceStatus          lifecycle.Status `json:"invoice_status"`
	InvoiceEffectiveStatus lifecycle.Status `json:"invoice_effective_status"`
	InvoiceStatusLabel     string           `json:"invoice_status_label"`

	InvoicePaidAt     *time.Time `json:"invoice_paid_at,omitempty"`
	InvoiceRefundedAt *time.Time `json:"invoice_refunded_at,omitempty"`

	InvoiceCreatedAt time.Time `json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `json:"invoice_updated_at"`
}

func ToInvoiceResponse(m billing.Invoice, now time.Time) InvoiceResponse {
	effective := m.EffectiveStatus(now)
	return InvoiceResponse{
		InvoiceID:              m.InvoiceID,
		InvoiceSubscriptionID:  m.InvoiceSubscriptionID,
		InvoiceMonth:           m.InvoiceMonth,
		InvoiceYear:            m.InvoiceYear,
		InvoiceAmountCents:     m.InvoiceAmountCents,
		InvoiceDueDate:         m.InvoiceDueDate,
		InvoiceStatus:          m.InvoiceStatus,
		InvoiceEffectiveStatus: effective,
		InvoiceStatusLabel:     lifecycle.Label(lifecycle.EntityInvoice, effective),
		InvoicePaidAt:          m.InvoicePaidAt,
		InvoiceRefundedAt:      m.InvoiceRefundedAt,
		InvoiceCreatedAt:       m.InvoiceCreatedAt,
		InvoiceUpdatedAt:       m.InvoiceUpdatedAt,
	}
}

func ToInvoiceResponses(list []billing.Invoice, now time.Time) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToInvoiceResponse(v, now))
	}
	return out
}
