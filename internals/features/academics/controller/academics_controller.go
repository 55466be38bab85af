// file: internals/features/academics/controller/academics_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/features/academics/dto"
	academics "minhaescola_backend/internals/features/academics/model"
	"minhaescola_backend/internals/features/academics/service"
	helper "minhaescola_backend/internals/helpers"
)

type AcademicsController struct {
	DB *gorm.DB
}

var attendanceSortable = map[string]string{
	"date":       "attendance_date",
	"created_at": "attendance_created_at",
	"status":     "attendance_status",
}

var gradeSortable = map[string]string{
	"created_at": "grade_created_at",
	"score":      "grade_score",
	"subject":    "grade_subject",
	"term":       "grade_term",
}

// -----------------------------------------
// ListAttendance (GET /attendance)
// -----------------------------------------
func (h *AcademicsController) ListAttendance(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "date", "desc", helper.AdminOpts)

	q := h.DB.Model(&academics.AttendanceRecord{})
	q = scope.Apply(q, "attendance_school_id", "attendance_school_chain_id")

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("attendance_student_id = ?", id)
		}
	}
	if v := c.Query("date"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("attendance_date = ?", d)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(attendanceSortable, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []academics.AttendanceRecord
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToAttendanceRecordResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// CreateAttendance (POST /attendance/batch) — roll call
// -----------------------------------------
func (h *AcademicsController) CreateAttendance(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var in dto.AttendanceBatchCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if err := helper.VerifyBodyTenant(c, &in.AttendanceSchoolID, in.AttendanceSchoolChainID); err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	rows, err := service.CreateAttendanceBatch(h.DB, in, actor.UserID)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "attendance recorded", dto.ToAttendanceRecordResponses(rows))
}

// -----------------------------------------
// ListGrades (GET /grades)
// -----------------------------------------
func (h *AcademicsController) ListGrades(c *fiber.Ctx) error {
	scope, err := helper.ResolveTenantScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&academics.GradeRecord{})
	q = scope.Apply(q, "grade_school_id", "grade_school_chain_id")

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("grade_student_id = ?", id)
		}
	}
	if v := c.Query("term"); v != "" {
		q = q.Where("grade_term = ?", v)
	}
	if v := c.Query("subject"); v != "" {
		q = q.Where("grade_subject = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}

	order, err := p.SafeOrderClause(gradeSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []academics.GradeRecord
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonList(c, "", dto.ToGradeRecordResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// CreateGrade (POST /grades)
// -----------------------------------------
func (h *AcademicsController) CreateGrade(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var in dto.GradeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if err := helper.VerifyBodyTenant(c, &in.GradeSchoolID, in.GradeSchoolChainID); err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	m, err := service.CreateGrade(h.DB, in, actor.UserID)
	if err != nil {
		return helper.JsonLifecycleError(c, err)
	}
	return helper.JsonCreated(c, "grade recorded", dto.ToGradeRecordResponse(m))
}
