// file: internals/route/details/consent_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	consentController "minhaescola_backend/internals/features/consents/controller"
)

// ConsentUserRoutes — the responsável's own queue and decisions.
func ConsentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &consentController.ConsentController{DB: db}

	g := r.Group("/consents")
	g.Get("/mine", ctrl.Mine)
	g.Get("/:id", ctrl.Detail)
	g.Post("/:id/approve", ctrl.Approve)
	g.Post("/:id/deny", ctrl.Deny)
}

// ConsentAdminRoutes — school-wide listing and event fan-out.
func ConsentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &consentController.ConsentController{DB: db}

	g := r.Group("/consents")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Detail)
	g.Post("/batch", ctrl.CreateBatch)
}
