// file: internals/features/academics/dto/academics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	academics "minhaescola_backend/internals/features/academics/model"
)

// =========================================================
// REQUESTS
// =========================================================

type AttendanceEntryDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late justified"`
	Notes     *string   `json:"notes"`
}

// AttendanceBatchCreateDTO is a class roll call: one date, many students.
type AttendanceBatchCreateDTO struct {
	AttendanceSchoolID      uuid.UUID  `json:"attendance_school_id" validate:"required"`
	AttendanceSchoolChainID *uuid.UUID `json:"attendance_school_chain_id"`
	AttendanceDate          time.Time  `json:"attendance_date" validate:"required"`

	Entries []AttendanceEntryDTO `json:"entries" validate:"required,min=1,dive"`
}

type GradeCreateDTO struct {
	GradeSchoolID      uuid.UUID  `json:"grade_school_id" validate:"required"`
	GradeSchoolChainID *uuid.UUID `json:"grade_school_chain_id"`
	GradeStudentID     uuid.UUID  `json:"grade_student_id" validate:"required"`
	GradeSubject       string     `json:"grade_subject" validate:"required,max=80"`
	GradeTerm          string     `json:"grade_term" validate:"required,max=20"`
	GradeScore         float64    `json:"grade_score" validate:"min=0,max=100"`
}

// =========================================================
// RESPONSES
// =========================================================

type AttendanceRecordResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`

	AttendanceSchoolID      uuid.UUID  `json:"attendance_school_id"`
	AttendanceSchoolChainID *uuid.UUID `json:"attendance_school_chain_id,omitempty"`

	AttendanceStudentID uuid.UUID                  `json:"attendance_student_id"`
	AttendanceDate      time.Time                  `json:"attendance_date"`
	AttendanceStatus    academics.AttendanceStatus `json:"attendance_status"`
	AttendanceNotes     *string                    `json:"attendance_notes,omitempty"`

	AttendanceRecordedByUser uuid.UUID `json:"attendance_recorded_by_user"`
	AttendanceCreatedAt      time.Time `json:"attendance_created_at"`
}

type GradeRecordResponse struct {
	GradeID uuid.UUID `json:"grade_id"`

	GradeSchoolID      uuid.UUID  `json:"grade_school_id"`
	GradeSchoolChainID *uuid.UUID `json:"grade_school_chain_id,omitempty"`

	GradeStudentID uuid.UUID `json:"grade_student_id"`
	GradeSubject   string    `json:"grade_subject"`
	GradeTerm      string    `json:"grade_term"`
	GradeScore     float64   `json:"grade_score"`

	GradeRecordedByUser uuid.UUID `json:"grade_recorded_by_user"`
	GradeCreatedAt      time.Time `json:"grade_created_at"`
}

// StatusCardResponse is one dashboard card: counts and percentages per
// status, percentages summing to exactly 100.0.
type StatusCardResponse struct {
	Entity      string             `json:"entity"`
	Total       int64              `json:"total"`
	Counts      map[string]int64   `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
	Labels      map[string]string  `json:"labels"`
}

type AttendanceRateResponse struct {
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	Records     int64   `json:"records"`
	Attended    int64   `json:"attended"`
	RatePercent float64 `json:"rate_percent"`
}

// AtRiskStudentResponse is one row of the lowest-average ranking.
type AtRiskStudentResponse struct {
	StudentID    uuid.UUID `json:"student_id"`
	AverageScore float64   `json:"average_score"`
	GradeCount   int64     `json:"grade_count"`
}

// =========================================================
// MAPPERS
// =========================================================

func ToAttendanceRecordResponse(m academics.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceID:             m.AttendanceID,
		AttendanceSchoolID:       m.AttendanceSchoolID,
		AttendanceSchoolChainID:  m.AttendanceSchoolChainID,
		AttendanceStudentID:      m.AttendanceStudentID,
		AttendanceDate:           m.AttendanceDate,
		AttendanceStatus:         m.AttendanceStatus,
		AttendanceNotes:          m.AttendanceNotes,
		AttendanceRecordedByUser: m.AttendanceRecordedByUser,
		AttendanceCreatedAt:      m.AttendanceCreatedAt,
	}
}

func ToAttendanceRecordResponses(list []academics.AttendanceRecord) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAttendanceRecordResponse(m))
	}
	return out
}

func ToGradeRecordResponse(m academics.GradeRecord) GradeRecordResponse {
	return GradeRecordResponse{
		GradeID:             m.GradeID,
		GradeSchoolID:       m.GradeSchoolID,
		GradeSchoolChainID:  m.GradeSchoolChainID,
		GradeStudentID:      m.GradeStudentID,
		GradeSubject:        m.GradeSubject,
		GradeTerm:           m.GradeTerm,
		GradeScore:          m.GradeScore,
		GradeRecordedByUser: m.GradeRecordedByUser,
		GradeCreatedAt:      m.GradeCreatedAt,
	}
}

func ToGradeRecordResponses(list []academics.GradeRecord) []GradeRecordResponse {
	out := make([]GradeRecordResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToGradeRecordResponse(m))
	}
	return out
}
