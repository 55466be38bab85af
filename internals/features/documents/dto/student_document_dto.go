// file: internals/features/documents/dto/student_document_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	documents "minhaescola_backend/internals/features/documents/model"
	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// REQUESTS
// =========================================================

type DocumentTypeCreateDTO struct {
	DocumentTypeSchoolID      uuid.UUID  `json:"document_type_school_id" validate:"required"`
	DocumentTypeSchoolChainID *uuid.UUID `json:"document_type_school_chain_id"`
	DocumentTypeName          string     `json:"document_type_name" validate:"required,max=120"`
	DocumentTypeDescription   *string    `json:"document_type_description"`
	DocumentTypeIsRequired    bool       `json:"document_type_is_required"`
}

type StudentDocumentCreateDTO struct {
	StudentDocumentSchoolID      uuid.UUID  `json:"student_document_school_id" validate:"required"`
	StudentDocumentSchoolChainID *uuid.UUID `json:"student_document_school_chain_id"`
	StudentDocumentStudentID     uuid.UUID  `json:"student_document_student_id" validate:"required"`
	StudentDocumentTypeID        uuid.UUID  `json:"student_document_type_id" validate:"required"`
	StudentDocumentFileURL       string     `json:"student_document_file_url" validate:"required,url"`
}

// StudentDocumentRejectDTO: the reason is what the family sees, so it is
// required.
type StudentDocumentRejectDTO struct {
	RejectionReason *string `json:"rejection_reason" validate:"required"`
}

// =========================================================
// RESPONSES
// =========================================================

type DocumentTypeResponse struct {
	DocumentTypeID            uuid.UUID  `json:"document_type_id"`
	DocumentTypeSchoolID      uuid.UUID  `json:"document_type_school_id"`
	DocumentTypeSchoolChainID *uuid.UUID `json:"document_type_school_chain_id,omitempty"`
	DocumentTypeName          string     `json:"document_type_name"`
	DocumentTypeDescription   *string    `json:"document_type_description,omitempty"`
	DocumentTypeIsRequired    bool       `json:"document_type_is_required"`
	DocumentTypeIsActive      bool       `json:"document_type_is_active"`
	DocumentTypeCreatedAt     time.Time  `json:"document_type_created_at"`
}

type StudentDocumentResponse struct {
	StudentDocumentID uuid.UUID `json:"student_document_id"`

	StudentDocumentSchoolID      uuid.UUID  `json:"student_document_school_id"`
	StudentDocumentSchoolChainID *uuid.UUID `json:"student_document_school_chain_id,omitempty"`

	StudentDocumentStudentID       uuid.UUID `json:"student_document_student_id"`
	StudentDocumentTypeID          uuid.UUID `json:"student_document_type_id"`
	StudentDocumentTypeName        *string   `json:"student_document_type_name,omitempty"`
	StudentDocumentSubmittedByUser uuid.UUID `json:"student_document_submitted_by_user"`

	StudentDocumentFileURL string `json:"student_document_file_url"`

	StudentDocumentStatus      lifecycle.Status `json:"student_document_status"`
	StudentDocumentStatusLabel string           `json:"student_document_status_label"`

	StudentDocumentRejectionReason *string    `json:"student_document_rejection_reason,omitempty"`
	StudentDocumentReviewerUserID  *uuid.UUID `json:"student_document_reviewer_user_id,omitempty"`
	StudentDocumentReviewedAt      *time.Time `json:"student_document_reviewed_at,omitempty"`

	StudentDocumentCreatedAt time.Time `json:"student_document_created_at"`
	StudentDocumentUpdatedAt time.Time `json:"student_document_updated_at"`
}

// =========================================================
// MAPPERS
// =========================================================

func ToDocumentTypeResponse(m documents.DocumentType) DocumentTypeResponse {
	return DocumentTypeResponse{
		DocumentTypeID:            m.DocumentTypeID,
		DocumentTypeSchoolID:      m.DocumentTypeSchoolID,
		DocumentTypeSchoolChainID: m.DocumentTypeSchoolChainID,
		DocumentTypeName:          m.DocumentTypeName,
		DocumentTypeDescription:   m.DocumentTypeDescription,
		DocumentTypeIsRequired:    m.DocumentTypeIsRequired,
		DocumentTypeIsActive:      m.DocumentTypeIsActive,
		DocumentTypeCreatedAt:     m.DocumentTypeCreatedAt,
	}
}

func ToDocumentTypeResponses(list []documents.DocumentType) []DocumentTypeResponse {
	out := make([]DocumentTypeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToDocumentTypeResponse(m))
	}
	return out
}

func ToStudentDocumentResponse(m documents.StudentDocument) StudentDocumentResponse {
	r := StudentDocumentResponse{
		StudentDocumentID:              m.StudentDocumentID,
		StudentDocumentSchoolID:        m.StudentDocumentSchoolID,
		StudentDocumentSchoolChainID:   m.StudentDocumentSchoolChainID,
		StudentDocumentStudentID:       m.StudentDocumentStudentID,
		StudentDocumentTypeID:          m.StudentDocumentTypeID,
		StudentDocumentSubmittedByUser: m.StudentDocumentSubmittedByUser,
		StudentDocumentFileURL:         m.StudentDocumentFileURL,
		StudentDocumentStatus:          m.StudentDocumentStatus,
		StudentDocumentStatusLabel:     lifecycle.Label(lifecycle.EntityStudentDocument, m.StudentDocumentStatus),
		StudentDocumentRejectionReason: m.StudentDocumentRejectionReason,
		StudentDocumentReviewerUserID:  m.StudentDocumentReviewerUserID,
		StudentDocumentReviewedAt:      m.StudentDocumentReviewedAt,
		StudentDocumentCreatedAt:       m.StudentDocumentCreatedAt,
		StudentDocumentUpdatedAt:       m.StudentDocumentUpdatedAt,
	}
	if m.DocumentType != nil {
		r.StudentDocumentTypeName = &m.DocumentType.DocumentTypeName
	}
	return r
}

func ToStudentDocumentResponses(list []documents.StudentDocument) []StudentDocumentResponse {
	out := make([]StudentDocumentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentDocumentResponse(m))
	}
	return out
}
