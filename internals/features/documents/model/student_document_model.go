// file: internals/features/documents/model/student_document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// MODEL — one submission per (student, document type)
// =========================================================

type StudentDocument struct {
	// PK
	StudentDocumentID uuid.UUID `gorm:"column:student_document_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_document_id"`

	// Tenant
	StudentDocumentSchoolID      uuid.UUID  `gorm:"column:student_document_school_id;type:uuid;not null;index:ix_student_document_school" json:"student_document_school_id"`
	StudentDocumentSchoolChainID *uuid.UUID `gorm:"column:student_document_school_chain_id;type:uuid;index" json:"student_document_school_chain_id,omitempty"`

	// Refs
	StudentDocumentStudentID       uuid.UUID `gorm:"column:student_document_student_id;type:uuid;not null;index" json:"student_document_student_id"`
	StudentDocumentTypeID          uuid.UUID `gorm:"column:student_document_type_id;type:uuid;not null;index" json:"student_document_type_id"`
	StudentDocumentSubmittedByUser uuid.UUID `gorm:"column:student_document_submitted_by_user;type:uuid;not null" json:"student_document_submitted_by_user"`

	// The file itself lives in external storage
	StudentDocumentFileURL string `gorm:"column:student_document_file_url;type:text;not null" json:"student_document_file_url"`

	// Status — closed set, see lifecycle.EntityStudentDocument
	StudentDocumentStatus lifecycle.Status `gorm:"column:student_document_status;type:varchar(20);not null;default:'pending';index:ix_student_document_status;check:student_document_status IN ('pending','approved','rejected')" json:"student_document_status"`

	// Review outcome: reason is mandatory on reject
	StudentDocumentRejectionReason *string    `gorm:"column:student_document_rejection_reason" json:"student_document_rejection_reason,omitempty"`
	StudentDocumentReviewerUserID  *uuid.UUID `gorm:"column:student_document_reviewer_user_id;type:uuid" json:"student_document_reviewer_user_id,omitempty"`
	StudentDocumentReviewedAt      *time.Time `gorm:"column:student_document_reviewed_at" json:"student_document_reviewed_at,omitempty"`

	// Timestamps
	StudentDocumentCreatedAt time.Time      `gorm:"column:student_document_created_at;not null;default:now()" json:"student_document_created_at"`
	StudentDocumentUpdatedAt time.Time      `gorm:"column:student_document_updated_at;not null;default:now()" json:"student_document_updated_at"`
	StudentDocumentDeletedAt gorm.DeletedAt `gorm:"column:student_document_deleted_at;index" json:"-"`

	// Preload-only
	DocumentType *DocumentType `gorm:"foreignKey:StudentDocumentTypeID;references:DocumentTypeID" json:"document_type,omitempty"`
}

func (StudentDocument) TableName() string {
	return "student_documents"
}

// =========================================================
// HOOKS
// =========================================================

func (m *StudentDocument) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentDocumentCreatedAt.IsZero() {
		m.StudentDocumentCreatedAt = now
	}
	m.StudentDocumentUpdatedAt = now
	return nil
}

func (m *StudentDocument) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentDocumentUpdatedAt = time.Now()
	return nil
}
