// file: internals/features/subscriptions/controller/plan_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/subscriptions/dto"
	billing "minhaescola_backend/internals/features/subscriptions/model"
	helper "minhaescola_backend/internals/helpers"
)

type PlanController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /plans) — plans are global, no tenant scope
// -----------------------------------------
func (h *PlanController) List(c *fiber.Ctx) error {
	var list []billing.Plan
	if err := h.DB.Order("plan_price_per_student_cents asc").Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToPlanResponses(list))
}

// -----------------------------------------
// Detail (GET /plans/:id)
// -----------------------------------------
func (h *PlanController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m billing.Plan
	if err := h.DB.First(&m, "plan_id = ?", id).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToPlanResponse(m))
}

// -----------------------------------------
// Create (POST /plans)
// -----------------------------------------
func (h *PlanController) Create(c *fiber.Ctx) error {
	var in dto.PlanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "plan created", dto.ToPlanResponse(m))
}
