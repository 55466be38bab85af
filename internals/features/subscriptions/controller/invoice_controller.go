// file: internals/features/subscriptions/controller/invoice_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/subscriptions/dto"
	billing "minhaescola_backend/internals/features/subscriptions/model"
	"minhaescola_backend/internals/features/subscriptions/service"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

type InvoiceController struct {
	DB *gorm.DB
}

var invoiceSortable = map[string]string{
	"created_at": "invoice_created_at",
	"due_date":   "invoice_due_date",
	"amount":     "invoice_amount_cents",
	"status":     "invoice_status",
	"paid_at":    "invoice_paid_at",
}

// -----------------------------------------
// List (GET /invoices)
// Filters: subscription_id, status (multi), month, year
// -----------------------------------------
func (h *InvoiceController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "due_date", "desc", helper.AdminOpts)

	// invoices carry no tenant columns; scope comes from the parent subscription
	q := h.DB.Model(&billing.Invoice{}).
		Joins("JOIN subscriptions ON subscriptions.subscription_id = invoices.invoice_subscription_id")
	q = scope.Apply(q, "subscription_school_id", "subscription_school_chain_id")

	if v := c.Query("subscription_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_subscription_id = ?", id)
		}
	}
	statuses, err := statusFilter(c, lifecycle.EntityInvoice)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if len(statuses) > 0 {
		q = q.Where("invoice_status IN ?", statuses)
	}
	if v := c.QueryInt("month"); v >= 1 && v <= 12 {
		q = q.Where("invoice_month = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("invoice_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(invoiceSortable, "due_date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []billing.Invoice
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToInvoiceResponses(list, time.Now()), helper.BuildMeta(total, p))
}

// -----------------------------------------
// MarkPaid (POST /invoices/:id/mark-paid)
// -----------------------------------------
func (h *InvoiceController) MarkPaid(c *fiber.Ctx) error {
	var in dto.InvoiceMarkPaidDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
	}
	return h.transition(c, lifecycle.ActionMarkPaid, in.PaidAt, in.Note, "invoice marked as paid")
}

// -----------------------------------------
// Cancel (POST /invoices/:id/cancel)
// -----------------------------------------
func (h *InvoiceController) Cancel(c *fiber.Ctx) error {
	var in dto.InvoiceActionDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
	}
	return h.transition(c, lifecycle.ActionCancel, nil, in.Note, "invoice canceled")
}

// -----------------------------------------
// Refund (POST /invoices/:id/refund)
// -----------------------------------------
func (h *InvoiceController) Refund(c *fiber.Ctx) error {
	var in dto.InvoiceActionDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
	}
	return h.transition(c, lifecycle.ActionRefund, nil, in.Note, "invoice refunded")
}

func (h *InvoiceController) transition(c *fiber.Ctx, action lifecycle.Action, paidAt *time.Time, note *string, okMsg string) error {
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

	m, err := service.TransitionInvoice(h.DB.WithContext(c.UserContext()), id, action, paidAt, note, actor, scope)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonUpdated(c, okMsg, dto.ToInvoiceResponse(m, time.Now()))
}
