// file: internals/route/details/academics_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/constants"
	academicsController "minhaescola_backend/internals/features/academics/controller"
	featuresMiddleware "minhaescola_backend/internals/middlewares/features"
)

// AcademicsUserRoutes — teachers record roll calls and grades.
func AcademicsUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &academicsController.AcademicsController{DB: db}

	recorders := featuresMiddleware.RequireRoles(
		constants.RoleTeacher, constants.RoleStaff, constants.RoleAdmin, constants.RoleOwner,
	)
	r.Post("/attendance/batch", recorders, ctrl.CreateAttendance)
	r.Post("/grades", recorders, ctrl.CreateGrade)
}

// AcademicsAdminRoutes — listings and the dashboard rollups.
func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &academicsController.AcademicsController{DB: db}
	dash := &academicsController.DashboardController{DB: db}

	r.Get("/attendance", ctrl.ListAttendance)
	r.Get("/grades", ctrl.ListGrades)

	g := r.Group("/dashboard")
	g.Get("/status-cards", dash.StatusCards)
	g.Get("/attendance-rate", dash.AttendanceRate)
	g.Get("/at-risk", dash.AtRisk)
}
