// file: internals/features/printing/service/print_request_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	printing "minhaescola_backend/internals/features/printing/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

func TestPrintRequestCanView(t *testing.T) {
	school := uuid.New()
	otherSchool := uuid.New()
	requester := uuid.New()

	m := printing.PrintRequest{
		PrintRequestSchoolID:        school,
		PrintRequestRequesterUserID: requester,
	}

	// the requesting teacher tracks their own request without admin scope
	assert.NoError(t, CanView(m, helper.Actor{UserID: requester}, helper.TenantScope{}))

	// staff of the owning school
	assert.NoError(t, CanView(m, helper.Actor{UserID: uuid.New()}, helper.TenantScope{SchoolID: &school}))

	// staff of another school reads it as a missing row
	err := CanView(m, helper.Actor{UserID: uuid.New()}, helper.TenantScope{SchoolID: &otherSchool})
	require.Error(t, err)
	assert.Equal(t, lifecycle.CodeTenantMismatch, lifecycle.CodeOf(err))
}
