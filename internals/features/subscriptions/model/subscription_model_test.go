// file: internals/features/subscriptions/model/subscription_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minhaescola_backend/internals/lifecycle"
)

func TestSubscriptionOwnerMutualExclusion(t *testing.T) {
	school := uuid.New()
	chain := uuid.New()

	ok := Subscription{SubscriptionSchoolID: &school}
	require.NoError(t, ok.BeforeSave(nil))

	ok = Subscription{SubscriptionSchoolChainID: &chain}
	require.NoError(t, ok.BeforeSave(nil))

	both := Subscription{SubscriptionSchoolID: &school, SubscriptionSchoolChainID: &chain}
	assert.ErrorIs(t, both.BeforeSave(nil), ErrAmbiguousOwner)

	neither := Subscription{}
	assert.ErrorIs(t, neither.BeforeSave(nil), ErrAmbiguousOwner)
}

func TestBillingCycleMonths(t *testing.T) {
	assert.Equal(t, 1, BillingCycleMonthly.Months())
	assert.Equal(t, 3, BillingCycleQuarterly.Months())
	assert.Equal(t, 6, BillingCycleSemiAnnual.Months())
	assert.Equal(t, 12, BillingCycleAnnual.Months())
	assert.Equal(t, 1, BillingCycle("garbage").Months())
}

func TestInvoiceEffectiveStatus(t *testing.T) {
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	inv := Invoice{InvoiceStatus: lifecycle.InvoicePending, InvoiceDueDate: due}

	assert.Equal(t, lifecycle.InvoicePending, inv.EffectiveStatus(due.Add(-time.Hour)))
	assert.Equal(t, lifecycle.InvoiceOverdue, inv.EffectiveStatus(due.Add(time.Hour)))

	// only pending derives; a paid invoice stays paid no matter the clock
	inv.InvoiceStatus = lifecycle.InvoicePaid
	assert.Equal(t, lifecycle.InvoicePaid, inv.EffectiveStatus(due.Add(24*time.Hour)))
}
