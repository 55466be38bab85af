// file: internals/scheduler/scheduler.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	canteenService "minhaescola_backend/internals/features/canteen/service"
	consentService "minhaescola_backend/internals/features/consents/service"
	billingService "minhaescola_backend/internals/features/subscriptions/service"
)

// StartDeadlineSweeps runs the expiry/overdue sweeps on a fixed interval.
// Every sweep carries its own pending precondition in the WHERE clause, so a
// crashed or doubled run never overwrites a fresher user write.
func StartDeadlineSweeps(db *gorm.DB) {
	go func() {
		interval := 15
		if val := os.Getenv("SWEEP_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				interval = parsed
			}
		}

		for {
			now := time.Now()

			if _, err := consentService.SweepExpired(db, now); err != nil {
				log.Printf("[SWEEP ERROR] consent expiry: %v", err)
			}
			if _, err := billingService.SweepOverdueInvoices(db, now); err != nil {
				log.Printf("[SWEEP ERROR] overdue invoices: %v", err)
			}
			if _, err := billingService.SweepPastDueSubscriptions(db, now); err != nil {
				log.Printf("[SWEEP ERROR] past_due subscriptions: %v", err)
			}
			if _, err := billingService.SweepBlockedSubscriptions(db, now); err != nil {
				log.Printf("[SWEEP ERROR] blocked subscriptions: %v", err)
			}

			time.Sleep(time.Duration(interval) * time.Minute)
		}
	}()
}

// StartMonthlyJobs runs once a day: generates the current period's invoices
// and rebuilds last month's canteen transfers. Both jobs are idempotent
// (unique period indexes / pending-only upsert), so running daily is just a
// catch-up for days the process was down.
func StartMonthlyJobs(db *gorm.DB) {
	go func() {
		dueDay := 10
		if val := os.Getenv("INVOICE_DUE_DAY"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed >= 1 && parsed <= 28 {
				dueDay = parsed
			}
		}

		for {
			now := time.Now()

			due := time.Date(now.Year(), now.Month(), dueDay, 0, 0, 0, 0, time.UTC)
			if n, err := billingService.GenerateForPeriod(db, int(now.Month()), now.Year(), due); err != nil {
				log.Printf("[SWEEP ERROR] invoice generation: %v", err)
			} else if n > 0 {
				log.Printf("[SWEEP] invoices generated for %02d/%d: %d", int(now.Month()), now.Year(), n)
			}

			// anchor on the 1st so month arithmetic never normalizes past a month
			prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
			if _, err := canteenService.AggregateMonth(db, int(prev.Month()), prev.Year()); err != nil {
				log.Printf("[SWEEP ERROR] canteen aggregation: %v", err)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
