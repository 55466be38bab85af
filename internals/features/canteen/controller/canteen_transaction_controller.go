// file: internals/features/canteen/controller/canteen_transaction_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/canteen/dto"
	canteen "minhaescola_backend/internals/features/canteen/model"
	"minhaescola_backend/internals/features/canteen/service"
	helper "minhaescola_backend/internals/helpers"
)

type CanteenTransactionController struct {
	DB *gorm.DB
}

var canteenTransactionSortable = map[string]string{
	"occurred_at": "canteen_transaction_occurred_at",
	"created_at":  "canteen_transaction_created_at",
	"item":        "canteen_transaction_item_name",
	"total":       "canteen_transaction_total_cents",
}

// -----------------------------------------
// List (GET /canteen-transactions)
// -----------------------------------------
func (h *CanteenTransactionController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "occurred_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&canteen.CanteenTransaction{})
	q = scope.Apply(q, "canteen_transaction_school_id", "canteen_transaction_school_chain_id")

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("canteen_transaction_student_id = ?", id)
		}
	}
	if v := c.QueryInt("month"); v >= 1 && v <= 12 {
		year := c.QueryInt("year", time.Now().Year())
		from := time.Date(year, time.Month(v), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("canteen_transaction_occurred_at >= ? AND canteen_transaction_occurred_at < ?",
			from, from.AddDate(0, 1, 0))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(canteenTransactionSortable, "occurred_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []canteen.CanteenTransaction
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToCanteenTransactionResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /canteen-transactions)
// -----------------------------------------
func (h *CanteenTransactionController) Create(c *fiber.Ctx) error {
	var in dto.CanteenTransactionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if err := helper.VerifyBodyTenant(c, &in.CanteenTransactionSchoolID, in.CanteenTransactionSchoolChainID); err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	m := canteen.CanteenTransaction{
		CanteenTransactionSchoolID:        in.CanteenTransactionSchoolID,
		CanteenTransactionSchoolChainID:   in.CanteenTransactionSchoolChainID,
		CanteenTransactionStudentID:       in.CanteenTransactionStudentID,
		CanteenTransactionItemName:        in.CanteenTransactionItemName,
		CanteenTransactionQuantity:        in.CanteenTransactionQuantity,
		CanteenTransactionUnitAmountCents: in.CanteenTransactionUnitAmountCents,
		CanteenTransactionTotalCents:      int64(in.CanteenTransactionQuantity) * in.CanteenTransactionUnitAmountCents,
	}
	if in.CanteenTransactionOccurredAt != nil {
		m.CanteenTransactionOccurredAt = *in.CanteenTransactionOccurredAt
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "transaction recorded", dto.ToCanteenTransactionResponse(m))
}

// -----------------------------------------
// TopItems (GET /canteen-transactions/top-items?month=&year=&limit=)
// -----------------------------------------
func (h *CanteenTransactionController) TopItems(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if scope.SchoolID == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "school_id is required")
	}

	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	limit := c.QueryInt("limit", 10)
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "month must be 1..12")
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	items, err := service.TopSellingItems(h.DB, *scope.SchoolID, month, year, limit)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	out := make([]dto.TopItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TopItemResponse{
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			TotalCents: it.TotalCents,
		})
	}
	return helper.JsonOK(c, "", out)
}
