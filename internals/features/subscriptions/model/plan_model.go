// file: internals/features/subscriptions/model/plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// BILLING CYCLE
// =========================================================

type BillingCycle string

const (
	BillingCycleMonthly    BillingCycle = "monthly"
	BillingCycleQuarterly  BillingCycle = "quarterly"
	BillingCycleSemiAnnual BillingCycle = "semi_annual"
	BillingCycleAnnual     BillingCycle = "annual"
)

// Months returns the billing period length; monthly for anything malformed.
func (b BillingCycle) Months() int {
	switch b {
	case BillingCycleQuarterly:
		return 3
	case BillingCycleSemiAnnual:
		return 6
	case BillingCycleAnnual:
		return 12
	default:
		return 1
	}
}

// =========================================================
// MODEL
// =========================================================

type Plan struct {
	PlanID uuid.UUID `gorm:"column:plan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"plan_id"`

	PlanName string `gorm:"column:plan_name;type:varchar(80);not null;uniqueIndex" json:"plan_name"`

	// price per student per month, in centavos
	PlanPricePerStudentCents int            `gorm:"column:plan_price_per_student_cents;not null;check:plan_price_per_student_cents>=0" json:"plan_price_per_student_cents"`
	PlanMaxStudents          *int           `gorm:"column:plan_max_students" json:"plan_max_students,omitempty"`
	PlanFeatures             pq.StringArray `gorm:"column:plan_features;type:text[]" json:"plan_features"`

	PlanCreatedAt time.Time      `gorm:"column:plan_created_at;not null;default:now()" json:"plan_created_at"`
	PlanUpdatedAt time.Time      `gorm:"column:plan_updated_at;not null;default:now()" json:"plan_updated_at"`
	PlanDeletedAt gorm.DeletedAt `gorm:"column:plan_deleted_at;index" json:"-"`
}

func (Plan) TableName() string {
	return "plans"
}

func (m *Plan) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PlanCreatedAt.IsZero() {
		m.PlanCreatedAt = now
	}
	m.PlanUpdatedAt = now
	return nil
}

func (m *Plan) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PlanUpdatedAt = time.Now()
	return nil
}
