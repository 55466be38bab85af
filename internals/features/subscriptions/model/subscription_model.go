// file: internals/features/subscriptions/model/subscription_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// MODEL — one billing relationship per school OR chain
// =========================================================

type Subscription struct {
	SubscriptionID uuid.UUID `gorm:"column:subscription_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"subscription_id"`

	// owner: exactly one of school / chain (see BeforeSave + DB check)
	SubscriptionSchoolID      *uuid.UUID `gorm:"column:subscription_school_id;type:uuid;uniqueIndex;check:chk_subscription_owner,(subscription_school_id IS NULL) <> (subscription_school_chain_id IS NULL)" json:"subscription_school_id,omitempty"`
	SubscriptionSchoolChainID *uuid.UUID `gorm:"column:subscription_school_chain_id;type:uuid;uniqueIndex" json:"subscription_school_chain_id,omitempty"`

	SubscriptionPlanID       uuid.UUID    `gorm:"column:subscription_plan_id;type:uuid;not null;index" json:"subscription_plan_id"`
	SubscriptionBillingCycle BillingCycle `gorm:"column:subscription_billing_cycle;type:varchar(20);not null;default:'monthly';check:subscription_billing_cycle IN ('monthly','quarterly','semi_annual','annual')" json:"subscription_billing_cycle"`

	SubscriptionStatus lifecycle.Status `gorm:"column:subscription_status;type:varchar(20);not null;default:'trial';index:ix_subscription_status;check:subscription_status IN ('trial','active','past_due','blocked','canceled','paused')" json:"subscription_status"`

	SubscriptionMonthlyAmountCents int `gorm:"column:subscription_monthly_amount_cents;not null;check:subscription_monthly_amount_cents>=0" json:"subscription_monthly_amount_cents"`
	SubscriptionActiveStudents     int `gorm:"column:subscription_active_students;not null;default:0;check:subscription_active_students>=0" json:"subscription_active_students"`

	SubscriptionCurrentPeriodEnd *time.Time `gorm:"column:subscription_current_period_end;index" json:"subscription_current_period_end,omitempty"`
	SubscriptionTrialEndsAt      *time.Time `gorm:"column:subscription_trial_ends_at" json:"subscription_trial_ends_at,omitempty"`
	SubscriptionPausedAt         *time.Time `gorm:"column:subscription_paused_at" json:"subscription_paused_at,omitempty"`
	SubscriptionCanceledAt       *time.Time `gorm:"column:subscription_canceled_at" json:"subscription_canceled_at,omitempty"`

	// never hard-deleted; the lifecycle is the soft delete
	SubscriptionCreatedAt time.Time `gorm:"column:subscription_created_at;not null;default:now()" json:"subscription_created_at"`
	SubscriptionUpdatedAt time.Time `gorm:"column:subscription_updated_at;not null;default:now()" json:"subscription_updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// =========================================================
// HOOKS
// =========================================================

var ErrAmbiguousOwner = errors.New("subscription must belong to exactly one of school or chain")

func (m *Subscription) BeforeSave(tx *gorm.DB) (err error) {
	if (m.SubscriptionSchoolID == nil) == (m.SubscriptionSchoolChainID == nil) {
		return ErrAmbiguousOwner
	}
	return nil
}

func (m *Subscription) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.SubscriptionCreatedAt.IsZero() {
		m.SubscriptionCreatedAt = now
	}
	m.SubscriptionUpdatedAt = now
	return nil
}

func (m *Subscription) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SubscriptionUpdatedAt = time.Now()
	return nil
}
