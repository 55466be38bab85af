// file: internals/features/documents/model/document_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentType is the per-school registry of documents a student can be asked
// for (certidão de nascimento, comprovante de residência, ...).
type DocumentType struct {
	DocumentTypeID uuid.UUID `gorm:"column:document_type_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"document_type_id"`

	DocumentTypeSchoolID      uuid.UUID  `gorm:"column:document_type_school_id;type:uuid;not null;index:uniq_document_type_name,unique,priority:1" json:"document_type_school_id"`
	DocumentTypeSchoolChainID *uuid.UUID `gorm:"column:document_type_school_chain_id;type:uuid;index" json:"document_type_school_chain_id,omitempty"`

	DocumentTypeName        string  `gorm:"column:document_type_name;type:varchar(120);not null;index:uniq_document_type_name,unique,priority:2" json:"document_type_name"`
	DocumentTypeDescription *string `gorm:"column:document_type_description" json:"document_type_description,omitempty"`
	DocumentTypeIsRequired  bool    `gorm:"column:document_type_is_required;not null;default:false" json:"document_type_is_required"`
	DocumentTypeIsActive    bool    `gorm:"column:document_type_is_active;not null;default:true" json:"document_type_is_active"`

	DocumentTypeCreatedAt time.Time      `gorm:"column:document_type_created_at;not null;default:now()" json:"document_type_created_at"`
	DocumentTypeUpdatedAt time.Time      `gorm:"column:document_type_updated_at;not null;default:now()" json:"document_type_updated_at"`
	DocumentTypeDeletedAt gorm.DeletedAt `gorm:"column:document_type_deleted_at;index" json:"-"`
}

func (DocumentType) TableName() string {
	return "document_types"
}

func (m *DocumentType) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.DocumentTypeCreatedAt.IsZero() {
		m.DocumentTypeCreatedAt = now
	}
	m.DocumentTypeUpdatedAt = now
	return nil
}

func (m *DocumentType) BeforeUpdate(tx *gorm.DB) (err error) {
	m.DocumentTypeUpdatedAt = time.Now()
	return nil
}
