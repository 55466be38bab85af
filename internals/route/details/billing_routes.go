// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/constants"
	billingController "minhaescola_backend/internals/features/subscriptions/controller"
	featuresMiddleware "minhaescola_backend/internals/middlewares/features"
)

// BillingPublicRoutes — the plan catalog is the only public billing surface.
func BillingPublicRoutes(r fiber.Router, db *gorm.DB) {
	plans := &billingController.PlanController{DB: db}

	g := r.Group("/plans")
	g.Get("/", plans.List)
	g.Get("/:id", plans.Detail)
}

// BillingAdminRoutes — subscriptions and invoices for the tenant's admins.
func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	subs := &billingController.SubscriptionController{DB: db}
	invoices := &billingController.InvoiceController{DB: db}
	plans := &billingController.PlanController{DB: db}

	s := r.Group("/subscriptions")
	s.Get("/", subs.List)
	s.Get("/:id", subs.Detail)
	s.Post("/", subs.Create)
	s.Post("/:id/pause", subs.Pause)
	s.Post("/:id/cancel", subs.Cancel)
	s.Post("/:id/reactivate", subs.Reactivate)

	i := r.Group("/invoices")
	i.Get("/", invoices.List)
	i.Post("/:id/mark-paid", invoices.MarkPaid)
	i.Post("/:id/cancel", invoices.Cancel)
	i.Post("/:id/refund", invoices.Refund)

	// plan management is platform-level
	p := r.Group("/plans", featuresMiddleware.RequireRoles(constants.RoleOwner))
	p.Post("/", plans.Create)
}
