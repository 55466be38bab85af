// file: internals/route/details/printing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	printingController "minhaescola_backend/internals/features/printing/controller"
)

// PrintingUserRoutes — teachers open, track and resubmit their requests.
func PrintingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &printingController.PrintRequestController{DB: db}

	g := r.Group("/print-requests")
	g.Get("/mine", ctrl.Mine)
	g.Get("/:id", ctrl.Detail)
	g.Post("/", ctrl.Create)
	g.Post("/:id/resubmit", ctrl.Resubmit)
}

// PrintingAdminRoutes — the secretaria works the queue.
func PrintingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &printingController.PrintRequestController{DB: db}

	g := r.Group("/print-requests")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Detail)
	g.Post("/:id/approve", ctrl.Approve)
	g.Post("/:id/reject", ctrl.Reject)
	g.Post("/:id/review", ctrl.Review)
	g.Post("/:id/mark-printed", ctrl.MarkPrinted)
}
