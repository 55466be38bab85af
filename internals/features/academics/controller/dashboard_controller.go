// file: internals/features/academics/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/academics/dto"
	"minhaescola_backend/internals/features/academics/service"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
	"minhaescola_backend/internals/stats"
)

type DashboardController struct {
	DB *gorm.DB
}

// -----------------------------------------
// StatusCards (GET /dashboard/status-cards?entity=consent)
// Without ?entity=: one card per lifecycle entity.
// -----------------------------------------
func (h *DashboardController) StatusCards(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	entities := lifecycle.Entities()
	if raw := c.Query("entity"); raw != "" {
		e, err := lifecycle.ParseEntity(raw)
		if err != nil {
			return helper.JsonLifecycleError(c, err)
		}
		entities = []lifecycle.Entity{e}
	}

	cards := make([]dto.StatusCardResponse, 0, len(entities))
	for _, e := range entities {
		d, err := service.StatusDistribution(h.DB.WithContext(c.UserContext()), e, scope)
		if err != nil {
			return helper.JsonLifecycleError(c, err)
		}
		labels := make(map[string]string, len(d.Counts))
		for s := range d.Counts {
			labels[s] = lifecycle.Label(e, lifecycle.Status(s))
		}
		cards = append(cards, dto.StatusCardResponse{
			Entity:      string(e),
			Total:       d.Total,
			Counts:      d.Counts,
			Percentages: d.Percentages(),
			Labels:      labels,
		})
	}
	return helper.JsonOK(c, "", cards)
}

// -----------------------------------------
// AttendanceRate (GET /dashboard/attendance-rate?month=&year=)
// -----------------------------------------
func (h *DashboardController) AttendanceRate(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "month must be 1..12")
	}

	total, attended, err := service.AttendanceRate(h.DB.WithContext(c.UserContext()), scope, month, year)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonOK(c, "", dto.AttendanceRateResponse{
		Month:       month,
		Year:        year,
		Records:     total,
		Attended:    attended,
		RatePercent: stats.Percent(attended, total),
	})
}

// -----------------------------------------
// AtRisk (GET /dashboard/at-risk?term=&limit=)
// -----------------------------------------
func (h *DashboardController) AtRisk(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	rows, err := service.AtRiskStudents(h.DB.WithContext(c.UserContext()), scope, c.Query("term"), limit)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	out := make([]dto.AtRiskStudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AtRiskStudentResponse{
			StudentID:    r.StudentID,
			AverageScore: r.AverageScore,
			GradeCount:   r.GradeCount,
		})
	}
	return helper.JsonOK(c, "", out)
}
