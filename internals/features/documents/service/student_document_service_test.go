// file: internals/features/documents/service/student_document_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	documents "minhaescola_backend/internals/features/documents/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

func TestStudentDocumentCanView(t *testing.T) {
	school := uuid.New()
	otherSchool := uuid.New()
	submitter := uuid.New()

	m := documents.StudentDocument{
		StudentDocumentSchoolID:        school,
		StudentDocumentSubmittedByUser: submitter,
	}

	// the guardian who filed the document reaches it without admin scope
	assert.NoError(t, CanView(m, helper.Actor{UserID: submitter}, helper.TenantScope{}))

	// the school's review staff
	assert.NoError(t, CanView(m, helper.Actor{UserID: uuid.New()}, helper.TenantScope{SchoolID: &school}))

	// staff of another school reads it as a missing row
	err := CanView(m, helper.Actor{UserID: uuid.New()}, helper.TenantScope{SchoolID: &otherSchool})
	require.Error(t, err)
	assert.Equal(t, lifecycle.CodeTenantMismatch, lifecycle.CodeOf(err))
}
