// file: internals/features/academics/service/dashboard_service.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academics "minhaescola_backend/internals/features/academics/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
	"minhaescola_backend/internals/stats"
)

// =========================================================
// STATUS DISTRIBUTION — one overview card per entity
// =========================================================

// statusSource maps each lifecycle entity to the table that holds its rows.
// Invoices carry no tenant columns of their own; their scope comes from the
// parent subscription.
type statusSource struct {
	table     string
	statusCol string
	schoolCol string
	chainCol  string
	deleteCol string
	join      string
}

var statusSources = map[lifecycle.Entity]statusSource{
	lifecycle.EntityConsent: {
		table: "consents", statusCol: "consent_status",
		schoolCol: "consent_school_id", chainCol: "consent_school_chain_id",
		deleteCol: "consent_deleted_at",
	},
	lifecycle.EntitySubscription: {
		table: "subscriptions", statusCol: "subscription_status",
		schoolCol: "subscription_school_id", chainCol: "subscription_school_chain_id",
	},
	lifecycle.EntityInvoice: {
		table: "invoices", statusCol: "invoice_status",
		schoolCol: "subscription_school_id", chainCol: "subscription_school_chain_id",
		join: "JOIN subscriptions ON subscriptions.subscription_id = invoices.invoice_subscription_id",
	},
	lifecycle.EntityPrintRequest: {
		table: "print_requests", statusCol: "print_request_status",
		schoolCol: "print_request_school_id", chainCol: "print_request_school_chain_id",
		deleteCol: "print_request_deleted_at",
	},
	lifecycle.EntityStudentDocument: {
		table: "student_documents", statusCol: "student_document_status",
		schoolCol: "student_document_school_id", chainCol: "student_document_school_chain_id",
		deleteCol: "student_document_deleted_at",
	},
	lifecycle.EntityMonthlyTransfer: {
		table: "monthly_transfers", statusCol: "monthly_transfer_status",
		schoolCol: "monthly_transfer_school_id", chainCol: "monthly_transfer_school_chain_id",
		deleteCol: "monthly_transfer_deleted_at",
	},
}

// StatusDistribution counts an entity's rows per status inside the scope.
// Every status of the closed set appears in the result, zeros included, so
// the cards render a stable shape.
func StatusDistribution(db *gorm.DB, e lifecycle.Entity, scope helper.TenantScope) (stats.Distribution, error) {
	src, ok := statusSources[e]
	if !ok {
		return stats.Distribution{}, fmt.Errorf("no status source for entity %q", e)
	}

	q := db.Table(src.table).
		Select(src.statusCol + " AS status, COUNT(*) AS count").
		Group(src.statusCol)
	if src.join != "" {
		q = q.Joins(src.join)
	}
	if src.deleteCol != "" {
		q = q.Where(src.deleteCol + " IS NULL")
	}
	if scope.SchoolID != nil {
		q = q.Where(src.schoolCol+" = ?", *scope.SchoolID)
	} else if scope.SchoolChainID != nil {
		q = q.Where(src.chainCol+" = ?", *scope.SchoolChainID)
	}

	var rows []struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}
	if err := q.Scan(&rows).Error; err != nil {
		return stats.Distribution{}, err
	}

	counts := make(map[string]int64)
	for _, s := range lifecycle.Statuses(e) {
		counts[string(s)] = 0
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return stats.NewDistribution(counts), nil
}

// =========================================================
// ATTENDANCE RATE
// =========================================================

// AttendanceRate returns (records, attended) for the month; attended is
// present + late (the student showed up).
func AttendanceRate(db *gorm.DB, scope helper.TenantScope, month, year int) (int64, int64, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	base := db.Model(&academics.AttendanceRecord{}).
		Where("attendance_date >= ? AND attendance_date < ?", from, to)
	base = scope.Apply(base, "attendance_school_id", "attendance_school_chain_id")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var attended int64
	if err := base.Session(&gorm.Session{}).
		Where("attendance_status IN ?", []academics.AttendanceStatus{
			academics.AttendancePresent,
			academics.AttendanceLate,
		}).
		Count(&attended).Error; err != nil {
		return 0, 0, err
	}
	return total, attended, nil
}

// =========================================================
// AT-RISK RANKING
// =========================================================

type StudentAverage struct {
	StudentID    uuid.UUID
	AverageScore float64
	GradeCount   int64
}

// AtRiskStudents ranks students by lowest grade average for the term ("" for
// all terms). Students with no grades are not ranked.
func AtRiskStudents(db *gorm.DB, scope helper.TenantScope, term string, n int) ([]StudentAverage, error) {
	q := db.Model(&academics.GradeRecord{}).
		Select("grade_student_id AS student_id, AVG(grade_score) AS average, COUNT(*) AS count").
		Group("grade_student_id")
	q = scope.Apply(q, "grade_school_id", "grade_school_chain_id")
	if term != "" {
		q = q.Where("grade_term = ?", term)
	}

	var rows []struct {
		StudentID uuid.UUID `gorm:"column:student_id"`
		Average   float64   `gorm:"column:average"`
		Count     int64     `gorm:"column:count"`
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	averages := make(map[string]float64, len(rows))
	byStudent := make(map[string]StudentAverage, len(rows))
	for _, r := range rows {
		key := r.StudentID.String()
		averages[key] = r.Average
		byStudent[key] = StudentAverage{StudentID: r.StudentID, AverageScore: r.Average, GradeCount: r.Count}
	}

	out := make([]StudentAverage, 0, n)
	for _, r := range stats.BottomN(averages, n) {
		out = append(out, byStudent[r.Key])
	}
	return out, nil
}
