// file: internals/features/consents/controller/consent_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/consents/dto"
	consents "minhaescola_backend/internals/features/consents/model"
	"minhaescola_backend/internals/features/consents/service"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

type ConsentController struct {
	DB *gorm.DB
}

var consentSortable = map[string]string{
	"created_at":   "consent_created_at",
	"updated_at":   "consent_updated_at",
	"requested_at": "consent_requested_at",
	"expires_at":   "consent_expires_at",
	"status":       "consent_status",
}

// StatusFilter collects ?status= values (repeatable or comma separated) and
// classifies each one; an unknown value fails the whole request instead of
// silently matching nothing.
func StatusFilter(c *fiber.Ctx, e lifecycle.Entity) ([]lifecycle.Status, error) {
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
// List (GET /consents)
// Filters: status (multi), event_id, student_id, responsible_user_id,
//          school_id | school_chain_id (tenant scope)
// -----------------------------------------
func (h *ConsentController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&consents.Consent{})
	q = scope.Apply(q, "consent_school_id", "consent_school_chain_id")

	statuses, err := StatusFilter(c, lifecycle.EntityConsent)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if len(statuses) > 0 {
		q = q.Where("consent_status IN ?", statuses)
	}
	if v := c.Query("event_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("consent_event_id = ?", id)
		}
	}
	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("consent_student_id = ?", id)
		}
	}
	if v := c.Query("responsible_user_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("consent_responsible_user_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(consentSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []consents.Consent
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	return helper.JsonList(c, "", dto.ToConsentResponses(list, time.Now()), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Mine (GET /consents/mine) — the responsável's own queue
// -----------------------------------------
func (h *ConsentController) Mine(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	p := helper.ParseFiber(c, "requested_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&consents.Consent{}).
		Where("consent_responsible_user_id = ?", actor.UserID)

	statuses, err := StatusFilter(c, lifecycle.EntityConsent)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if len(statuses) > 0 {
		q = q.Where("consent_status IN ?", statuses)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, _ := p.SafeOrderClause(consentSortable, "requested_at")
	var list []consents.Consent
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	return helper.JsonList(c, "", dto.ToConsentResponses(list, time.Now()), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /consents/:id)
// -----------------------------------------
func (h *ConsentController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	scope, _ := helper.ResolveTenantScope(c)

	var m consents.Consent
	if err := h.DB.First(&m, "consent_id = ?", id).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if err := service.CanView(m, actor, scope); err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToConsentResponse(m, time.Now()))
}

// -----------------------------------------
// CreateBatch (POST /consents/batch) — event published to audience
// -----------------------------------------
func (h *ConsentController) CreateBatch(c *fiber.Ctx) error {
	var in dto.ConsentBatchCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	// the publisher may only fan out inside a tenant their token grants
	if err := helper.VerifyBodyTenant(c, &in.ConsentSchoolID, in.ConsentSchoolChainID); err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	rows, err := service.CreateBatch(h.DB, in)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "consents created", dto.ToConsentResponses(rows, time.Now()))
}

// -----------------------------------------
// Approve (POST /consents/:id/approve)
// Deny    (POST /consents/:id/deny)
// -----------------------------------------
func (h *ConsentController) Approve(c *fiber.Ctx) error {
	return h.transition(c, lifecycle.ActionApprove, "consent approved")
}

func (h *ConsentController) Deny(c *fiber.Ctx) error {
	return h.transition(c, lifecycle.ActionDeny, "consent denied")
}

func (h *ConsentController) transition(c *fiber.Ctx, action lifecycle.Action, okMsg string) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	// guardians usually carry no school scope; ownership is checked against
	// the consent's responsável inside the service
	scope, _ := helper.ResolveTenantScope(c)

	var in dto.ConsentDecisionDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
	}

	m, err := service.Transition(h.DB.WithContext(c.UserContext()), id, action, in, actor, scope)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonUpdated(c, okMsg, dto.ToConsentResponse(m, time.Now()))
}
