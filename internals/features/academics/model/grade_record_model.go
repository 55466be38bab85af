// file: internals/features/academics/model/grade_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeRecord is one published grade (0..100) for a student in a subject/term.
type GradeRecord struct {
	GradeID uuid.UUID `gorm:"column:grade_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_id"`

	// Tenant
	GradeSchoolID      uuid.UUID  `gorm:"column:grade_school_id;type:uuid;not null;index:ix_grade_school" json:"grade_school_id"`
	GradeSchoolChainID *uuid.UUID `gorm:"column:grade_school_chain_id;type:uuid;index" json:"grade_school_chain_id,omitempty"`

	GradeStudentID uuid.UUID `gorm:"column:grade_student_id;type:uuid;not null;index" json:"grade_student_id"`
	GradeSubject   string    `gorm:"column:grade_subject;type:varchar(80);not null" json:"grade_subject"`
	GradeTerm      string    `gorm:"column:grade_term;type:varchar(20);not null" json:"grade_term"`

	GradeScore float64 `gorm:"column:grade_score;type:numeric(5,2);not null;check:grade_score BETWEEN 0 AND 100" json:"grade_score"`

	GradeRecordedByUser uuid.UUID `gorm:"column:grade_recorded_by_user;type:uuid;not null" json:"grade_recorded_by_user"`

	GradeCreatedAt time.Time      `gorm:"column:grade_created_at;not null;default:now()" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"column:grade_updated_at;not null;default:now()" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"-"`
}

func (GradeRecord) TableName() string {
	return "grade_records"
}

func (m *GradeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.GradeCreatedAt.IsZero() {
		m.GradeCreatedAt = now
	}
	m.GradeUpdatedAt = now
	return nil
}

func (m *GradeRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.GradeUpdatedAt = time.Now()
	return nil
}
