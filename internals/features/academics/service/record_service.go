// file: internals/features/academics/service/record_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minhaescola_backend/internals/features/academics/dto"
	academics "minhaescola_backend/internals/features/academics/model"
)

// CreateAttendanceBatch records a roll call. Re-taking the call for the same
// day upserts on (student, date): the latest status wins.
func CreateAttendanceBatch(db *gorm.DB, in dto.AttendanceBatchCreateDTO, recordedBy uuid.UUID) ([]academics.AttendanceRecord, error) {
	rows := make([]academics.AttendanceRecord, 0, len(in.Entries))
	for _, e := range in.Entries {
		rows = append(rows, academics.AttendanceRecord{
			AttendanceSchoolID:       in.AttendanceSchoolID,
			AttendanceSchoolChainID:  in.AttendanceSchoolChainID,
			AttendanceStudentID:      e.StudentID,
			AttendanceDate:           in.AttendanceDate,
			AttendanceStatus:         academics.AttendanceStatus(e.Status),
			AttendanceNotes:          e.Notes,
			AttendanceRecordedByUser: recordedBy,
		})
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_student_id"},
			{Name: "attendance_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status",
			"attendance_notes",
			"attendance_recorded_by_user",
			"attendance_updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateGrade publishes one grade.
func CreateGrade(db *gorm.DB, in dto.GradeCreateDTO, recordedBy uuid.UUID) (academics.GradeRecord, error) {
	m := academics.GradeRecord{
		GradeSchoolID:       in.GradeSchoolID,
		GradeSchoolChainID:  in.GradeSchoolChainID,
		GradeStudentID:      in.GradeStudentID,
		GradeSubject:        in.GradeSubject,
		GradeTerm:           in.GradeTerm,
		GradeScore:          in.GradeScore,
		GradeRecordedByUser: recordedBy,
	}
	if err := db.Create(&m).Error; err != nil {
		return m, err
	}
	return m, nil
}
