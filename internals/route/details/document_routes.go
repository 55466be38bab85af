// file: internals/route/details/document_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentController "minhaescola_backend/internals/features/documents/controller"
)

// DocumentUserRoutes — families submit and follow their documents.
func DocumentUserRoutes(r fiber.Router, db *gorm.DB) {
	docs := &documentController.StudentDocumentController{DB: db}
	types := &documentController.DocumentTypeController{DB: db}

	r.Get("/document-types", types.List)

	g := r.Group("/student-documents")
	g.Get("/:id", docs.Detail)
	g.Post("/", docs.Submit)
}

// DocumentAdminRoutes — review queue and the type registry.
func DocumentAdminRoutes(r fiber.Router, db *gorm.DB) {
	docs := &documentController.StudentDocumentController{DB: db}
	types := &documentController.DocumentTypeController{DB: db}

	t := r.Group("/document-types")
	t.Get("/", types.List)
	t.Post("/", types.Create)
	t.Post("/:id/deactivate", types.Deactivate)

	g := r.Group("/student-documents")
	g.Get("/", docs.List)
	g.Get("/:id", docs.Detail)
	g.Post("/:id/approve", docs.Approve)
	g.Post("/:id/reject", docs.Reject)
}
