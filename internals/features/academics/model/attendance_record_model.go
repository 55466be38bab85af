// file: internals/features/academics/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceStatus is a closed set; it is record data, not a lifecycle, so it
// lives here instead of the transition guard.
type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "present"
	AttendanceAbsent    AttendanceStatus = "absent"
	AttendanceLate      AttendanceStatus = "late"
	AttendanceJustified AttendanceStatus = "justified"
)

// =========================================================
// MODEL — one row per (student, day)
// =========================================================

type AttendanceRecord struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`

	// Tenant
	AttendanceSchoolID      uuid.UUID  `gorm:"column:attendance_school_id;type:uuid;not null;index:ix_attendance_school" json:"attendance_school_id"`
	AttendanceSchoolChainID *uuid.UUID `gorm:"column:attendance_school_chain_id;type:uuid;index" json:"attendance_school_chain_id,omitempty"`

	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index;index:uniq_attendance_day,unique,priority:1" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"column:attendance_date;type:date;not null;index:uniq_attendance_day,unique,priority:2" json:"attendance_date"`

	AttendanceStatus AttendanceStatus `gorm:"column:attendance_status;type:varchar(20);not null;check:attendance_status IN ('present','absent','late','justified')" json:"attendance_status"`
	AttendanceNotes  *string          `gorm:"column:attendance_notes" json:"attendance_notes,omitempty"`

	AttendanceRecordedByUser uuid.UUID `gorm:"column:attendance_recorded_by_user;type:uuid;not null" json:"attendance_recorded_by_user"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;not null;default:now()" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;not null;default:now()" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (m *AttendanceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AttendanceCreatedAt.IsZero() {
		m.AttendanceCreatedAt = now
	}
	m.AttendanceUpdatedAt = now
	return nil
}

func (m *AttendanceRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AttendanceUpdatedAt = time.Now()
	return nil
}
