// file: internals/features/printing/controller/print_request_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/printing/dto"
	printing "minhaescola_backend/internals/features/printing/model"
	"minhaescola_backend/internals/features/printing/service"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

type PrintRequestController struct {
	DB *gorm.DB
}

var printRequestSortable = map[string]string{
	"created_at":   "print_request_created_at",
	"updated_at":   "print_request_updated_at",
	"requested_at": "print_request_requested_at",
	"status":       "print_request_status",
	"title":        "print_request_title",
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
// List (GET /print-requests) — admin queue
// -----------------------------------------
func (h *PrintRequestController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "requested_at", "asc", helper.AdminOpts)

	q := h.DB.Model(&printing.PrintRequest{})
	q = scope.Apply(q, "print_request_school_id", "print_request_school_chain_id")

	statuses, err := statusFilter(c, lifecycle.EntityPrintRequest)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if len(statuses) > 0 {
		q = q.Where("print_request_status IN ?", statuses)
	}
	if v := c.Query("requester_user_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("print_request_requester_user_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(printRequestSortable, "requested_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []printing.PrintRequest
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToPrintRequestResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Mine (GET /print-requests/mine) — the teacher's own requests
// -----------------------------------------
func (h *PrintRequestController) Mine(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	p := helper.ParseFiber(c, "requested_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&printing.PrintRequest{}).
		Where("print_request_requester_user_id = ?", actor.UserID)

	statuses, err := statusFilter(c, lifecycle.EntityPrintRequest)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if len(statuses) > 0 {
		q = q.Where("print_request_status IN ?", statuses)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, _ := p.SafeOrderClause(printRequestSortable, "requested_at")
	var list []printing.PrintRequest
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToPrintRequestResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /print-requests/:id)
// -----------------------------------------
func (h *PrintRequestController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	scope, _ := helper.ResolveTenantScope(c)

	var m printing.PrintRequest
	if err := h.DB.First(&m, "print_request_id = ?", id).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if err := service.CanView(m, actor, scope); err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToPrintRequestResponse(m))
}

// -----------------------------------------
// Create (POST /print-requests)
// -----------------------------------------
func (h *PrintRequestController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var in dto.PrintRequestCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if err := helper.VerifyBodyTenant(c, &in.PrintRequestSchoolID, in.PrintRequestSchoolChainID); err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	m, err := service.Create(h.DB, in, actor.UserID)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "print request created", dto.ToPrintRequestResponse(m))
}

// -----------------------------------------
// Approve     (POST /print-requests/:id/approve)
// Reject      (POST /print-requests/:id/reject)
// Review      (POST /print-requests/:id/review)
// Resubmit    (POST /print-requests/:id/resubmit)
// MarkPrinted (POST /print-requests/:id/mark-printed)
// -----------------------------------------
func (h *PrintRequestController) Approve(c *fiber.Ctx) error {
	var in dto.PrintRequestActionDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
	}
	return h.transition(c, lifecycle.ActionApprove, in.Feedback, nil, "print request approved")
}

func (h *PrintRequestController) Reject(c *fiber.Ctx) error {
	var in dto.PrintRequestRejectDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	// the guard also enforces feedback; validating here names the field in a
	// proper 422 instead of a guard error
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	return h.transition(c, lifecycle.ActionReject, in.Feedback, nil, "print request rejected")
}

func (h *PrintRequestController) Review(c *fiber.Ctx) error {
	var in dto.PrintRequestActionDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
	}
	return h.transition(c, lifecycle.ActionReview, in.Feedback, nil, "print request sent to review")
}

func (h *PrintRequestController) Resubmit(c *fiber.Ctx) error {
	var in dto.PrintRequestResubmitDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
		if err := helper.ValidateStruct(c, in); err != nil {
			return err
		}
	}
	return h.transition(c, lifecycle.ActionResubmit, nil, in.PrintRequestFileURL, "print request resubmitted")
}

func (h *PrintRequestController) MarkPrinted(c *fiber.Ctx) error {
	return h.transition(c, lifecycle.ActionMarkPrinted, nil, nil, "print request marked as printed")
}

func (h *PrintRequestController) transition(c *fiber.Ctx, action lifecycle.Action, feedback, fileURL *string, okMsg string) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	// teachers resubmit without admin scope; ownership is checked against the
	// request's requester inside the service
	scope, _ := helper.ResolveTenantScope(c)

	m, err := service.Transition(h.DB.WithContext(c.UserContext()), id, action, feedback, fileURL, actor, scope)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonUpdated(c, okMsg, dto.ToPrintRequestResponse(m))
}
