// file: internals/features/subscriptions/controller/subscription_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/subscriptions/dto"
	billing "minhaescola_backend/internals/features/subscriptions/model"
	"minhaescola_backend/internals/features/subscriptions/service"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

type SubscriptionController struct {
	DB *gorm.DB
}

var subscriptionSortable = map[string]string{
	"created_at": "subscription_created_at",
	"updated_at": "subscription_updated_at",
	"status":     "subscription_status",
	"amount":     "subscription_monthly_amount_cents",
	"period_end": "subscription_current_period_end",
}

// -----------------------------------------
// List (GET /subscriptions)
// -----------------------------------------
func (h *SubscriptionController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&billing.Subscription{})
	q = scope.Apply(q, "subscription_school_id", "subscription_school_chain_id")

	statuses, err := statusFilter(c, lifecycle.EntitySubscription)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if len(statuses) > 0 {
		q = q.Where("subscription_status IN ?", statuses)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(subscriptionSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []billing.Subscription
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToSubscriptionResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /subscriptions/:id)
// -----------------------------------------
func (h *SubscriptionController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m billing.Subscription
	if err := h.DB.First(&m, "subscription_id = ?", id).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	if !scope.Covers(m.SubscriptionSchoolID, m.SubscriptionSchoolChainID) {
		return helper.JsonLifecycleError(c, lifecycle.ErrTenantMismatch())
	}
	return helper.JsonOK(c, "", dto.ToSubscriptionResponse(m))
}

// -----------------------------------------
// Create (POST /subscriptions) — onboarding
// -----------------------------------------
func (h *SubscriptionController) Create(c *fiber.Ctx) error {
	var in dto.SubscriptionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if (in.SubscriptionSchoolID == nil) == (in.SubscriptionSchoolChainID == nil) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"exactly one of subscription_school_id / subscription_school_chain_id is required")
	}
	if err := helper.VerifyBodyTenant(c, in.SubscriptionSchoolID, in.SubscriptionSchoolChainID); err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	m, err := service.Create(h.DB, in)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "subscription created", dto.ToSubscriptionResponse(m))
}

// -----------------------------------------
// Pause      (POST /subscriptions/:id/pause)
// Cancel     (POST /subscriptions/:id/cancel)
// Reactivate (POST /subscriptions/:id/reactivate)
// -----------------------------------------
func (h *SubscriptionController) Pause(c *fiber.Ctx) error {
	return h.transition(c, lifecycle.ActionPause, "subscription paused")
}

func (h *SubscriptionController) Cancel(c *fiber.Ctx) error {
	return h.transition(c, lifecycle.ActionCancel, "subscription canceled")
}

func (h *SubscriptionController) Reactivate(c *fiber.Ctx) error {
	return h.transition(c, lifecycle.ActionReactivate, "subscription reactivated")
}

func (h *SubscriptionController) transition(c *fiber.Ctx, action lifecycle.Action, okMsg string) error {
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

	var in dto.SubscriptionActionDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
	}

	m, err := service.Transition(h.DB.WithContext(c.UserContext()), id, action, in, actor, scope, false)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonUpdated(c, okMsg, dto.ToSubscriptionResponse(m))
}
