// file: internals/route/details/canteen_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/constants"
	canteenController "minhaescola_backend/internals/features/canteen/controller"
	featuresMiddleware "minhaescola_backend/internals/middlewares/features"
)

// CanteenAdminRoutes — wallet transactions and the monthly settlement.
func CanteenAdminRoutes(r fiber.Router, db *gorm.DB) {
	tx := &canteenController.CanteenTransactionController{DB: db}
	transfers := &canteenController.MonthlyTransferController{DB: db}

	t := r.Group("/canteen-transactions")
	t.Get("/", tx.List)
	t.Get("/top-items", tx.TopItems)
	t.Post("/", tx.Create)

	m := r.Group("/monthly-transfers")
	m.Get("/", transfers.List)
	m.Get("/:id", transfers.Detail)
	m.Post("/aggregate", transfers.Aggregate)
	m.Post("/:id/complete", transfers.Complete)

	// transfers normally move through processing/failed by the settlement job;
	// the manual triggers are platform-level
	ops := featuresMiddleware.RequireRoles(constants.RoleOwner)
	m.Post("/:id/process", ops, transfers.Process)
	m.Post("/:id/fail", ops, transfers.Fail)
}
