// file: internals/features/documents/controller/student_document_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/documents/dto"
	documents "minhaescola_backend/internals/features/documents/model"
	"minhaescola_backend/internals/features/documents/service"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

type StudentDocumentController struct {
	DB *gorm.DB
}

var studentDocumentSortable = map[string]string{
	"created_at":  "student_document_created_at",
	"updated_at":  "student_document_updated_at",
	"reviewed_at": "student_document_reviewed_at",
	"status":      "student_document_status",
}

func statusFilter(c *fiber.Ctx, e lifecycle.Entity) ([]lifecycle.Status, error) {
	var raw []string
	for _, v := range c.Context().QueryArgs().PeekMulti("status") {
		for _, part := range strings.Split(string(v), ",") {
			if s := strings.TrimSpace(part); s != "" {
				raw = append(raw, s)
			}
		}
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return lifecycle.ClassifyAll(e, raw)
}

// -----------------------------------------
// List (GET /student-documents) — review queue
// -----------------------------------------
func (h *StudentDocumentController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "created_at", "asc", helper.AdminOpts)

	q := h.DB.Model(&documents.StudentDocument{}).Preload("DocumentType")
	q = scope.Apply(q, "student_document_school_id", "student_document_school_chain_id")

	statuses, err := statusFilter(c, lifecycle.EntityStudentDocument)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if len(statuses) > 0 {
		q = q.Where("student_document_status IN ?", statuses)
	}
	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_document_student_id = ?", id)
		}
	}
	if v := c.Query("document_type_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_document_type_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(studentDocumentSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []documents.StudentDocument
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToStudentDocumentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /student-documents/:id)
// -----------------------------------------
func (h *StudentDocumentController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	// guardians reach their own submissions without an admin scope
	scope, _ := helper.ResolveTenantScope(c)

	var m documents.StudentDocument
	if err := h.DB.Preload("DocumentType").First(&m, "student_document_id = ?", id).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if err := service.CanView(m, actor, scope); err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToStudentDocumentResponse(m))
}

// -----------------------------------------
// Submit (POST /student-documents)
// -----------------------------------------
func (h *StudentDocumentController) Submit(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var in dto.StudentDocumentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if err := helper.VerifyBodyTenant(c, &in.StudentDocumentSchoolID, in.StudentDocumentSchoolChainID); err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	m, err := service.Submit(h.DB, in, actor.UserID)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "document submitted", dto.ToStudentDocumentResponse(m))
}

// -----------------------------------------
// Approve (POST /student-documents/:id/approve)
// Reject  (POST /student-documents/:id/reject)
// -----------------------------------------
func (h *StudentDocumentController) Approve(c *fiber.Ctx) error {
	return h.review(c, lifecycle.ActionApprove, nil, "document approved")
}

func (h *StudentDocumentController) Reject(c *fiber.Ctx) error {
	var in dto.StudentDocumentRejectDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	return h.review(c, lifecycle.ActionReject, in.RejectionReason, "document rejected")
}

func (h *StudentDocumentController) review(c *fiber.Ctx, action lifecycle.Action, reason *string, okMsg string) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := service.Review(h.DB.WithContext(c.UserContext()), id, action, reason, actor, scope)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonUpdated(c, okMsg, dto.ToStudentDocumentResponse(m))
}
