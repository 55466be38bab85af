// file: internals/features/canteen/controller/monthly_transfer_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/canteen/dto"
	canteen "minhaescola_backend/internals/features/canteen/model"
	"minhaescola_backend/internals/features/canteen/service"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

type MonthlyTransferController struct {
	DB *gorm.DB
}

var monthlyTransferSortable = map[string]string{
	"created_at": "monthly_transfer_created_at",
	"updated_at": "monthly_transfer_updated_at",
	"total":      "monthly_transfer_total_cents",
	"status":     "monthly_transfer_status",
	"year":       "monthly_transfer_year",
	"month":      "monthly_transfer_month",
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
// List (GET /monthly-transfers)
// -----------------------------------------
func (h *MonthlyTransferController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&canteen.MonthlyTransfer{})
	q = scope.Apply(q, "monthly_transfer_school_id", "monthly_transfer_school_chain_id")

	statuses, err := statusFilter(c, lifecycle.EntityMonthlyTransfer)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if len(statuses) > 0 {
		q = q.Where("monthly_transfer_status IN ?", statuses)
	}
	if v := c.QueryInt("month"); v >= 1 && v <= 12 {
		q = q.Where("monthly_transfer_month = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("monthly_transfer_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(monthlyTransferSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []canteen.MonthlyTransfer
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToMonthlyTransferResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /monthly-transfers/:id)
// -----------------------------------------
func (h *MonthlyTransferController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m canteen.MonthlyTransfer
	if err := h.DB.First(&m, "monthly_transfer_id = ?", id).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if !scope.Covers(&m.MonthlyTransferSchoolID, m.MonthlyTransferSchoolChainID) {
		return helper.JsonLifecycleError(c, lifecycle.ErrTenantMismatch())
	}
	return helper.JsonOK(c, "", dto.ToMonthlyTransferResponse(m))
}

// -----------------------------------------
// Aggregate (POST /monthly-transfers/aggregate) — (re)build a period
// -----------------------------------------
func (h *MonthlyTransferController) Aggregate(c *fiber.Ctx) error {
	var in dto.AggregateRunDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	n, err := service.AggregateMonth(h.DB.WithContext(c.UserContext()), in.Month, in.Year)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonOK(c, "aggregation finished", fiber.Map{"transfers": n})
}

// -----------------------------------------
// Process  (POST /monthly-transfers/:id/process)  — hand off to the bank
// Complete (POST /monthly-transfers/:id/complete) — settlement confirmed
// Fail     (POST /monthly-transfers/:id/fail)     — settlement bounced
// -----------------------------------------
func (h *MonthlyTransferController) Process(c *fiber.Ctx) error {
	// process is a system-imposed transition; the route restricts the manual
	// trigger to platform operators
	return h.transition(c, lifecycle.ActionProcess, nil, true, "transfer processing")
}

func (h *MonthlyTransferController) Complete(c *fiber.Ctx) error {
	return h.transition(c, lifecycle.ActionComplete, nil, false, "transfer completed")
}

func (h *MonthlyTransferController) Fail(c *fiber.Ctx) error {
	var in dto.MonthlyTransferFailDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	return h.transition(c, lifecycle.ActionFail, in.FailureReason, true, "transfer marked as failed")
}

func (h *MonthlyTransferController) transition(c *fiber.Ctx, action lifecycle.Action, reason *string, system bool, okMsg string) error {
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

	m, err := service.TransitionTransfer(h.DB.WithContext(c.UserContext()), id, action, reason, actor, scope, system)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonUpdated(c, okMsg, dto.ToMonthlyTransferResponse(m))
}
