// file: internals/features/documents/controller/document_type_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/documents/dto"
	documents "minhaescola_backend/internals/features/documents/model"
	helper "minhaescola_backend/internals/helpers"
)

type DocumentTypeController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /document-types)
// -----------------------------------------
func (h *DocumentTypeController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	q := h.DB.Model(&documents.DocumentType{}).
		Order("document_type_name asc")
	q = scope.Apply(q, "document_type_school_id", "document_type_school_chain_id")
	if !c.QueryBool("include_inactive") {
		q = q.Where("document_type_is_active = true")
	}

	var list []documents.DocumentType
	if err := q.Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToDocumentTypeResponses(list))
}

// -----------------------------------------
// Create (POST /document-types)
// -----------------------------------------
func (h *DocumentTypeController) Create(c *fiber.Ctx) error {
	var in dto.DocumentTypeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if err := helper.VerifyBodyTenant(c, &in.DocumentTypeSchoolID, in.DocumentTypeSchoolChainID); err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	m := documents.DocumentType{
		DocumentTypeSchoolID:      in.DocumentTypeSchoolID,
		DocumentTypeSchoolChainID: in.DocumentTypeSchoolChainID,
		DocumentTypeName:          in.DocumentTypeName,
		DocumentTypeDescription:   in.DocumentTypeDescription,
		DocumentTypeIsRequired:    in.DocumentTypeIsRequired,
		DocumentTypeIsActive:      true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "document type created", dto.ToDocumentTypeResponse(m))
}

// -----------------------------------------
// Deactivate (POST /document-types/:id/deactivate)
// Types are never hard-deleted while submissions reference them.
// -----------------------------------------
func (h *DocumentTypeController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	q := h.DB.Model(&documents.DocumentType{}).
		Where("document_type_id = ?", id)
	q = scope.Apply(q, "document_type_school_id", "document_type_school_chain_id")
	res := q.Update("document_type_is_active", false)
	if res.Error != nil {
		return helper.JsonLifecycleError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "document type not found")
	}
	return helper.JsonUpdated(c, "document type deactivated", fiber.Map{"document_type_id": id})
}
