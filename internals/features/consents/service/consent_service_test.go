// file: internals/features/consents/service/consent_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consents "minhaescola_backend/internals/features/consents/model"
	helper "minhaescola_backend/internals/helpers"
	"minhaescola_backend/internals/lifecycle"
)

func TestConsentCanView(t *testing.T) {
	school := uuid.New()
	otherSchool := uuid.New()
	chain := uuid.New()
	responsavel := uuid.New()

	m := consents.Consent{
		ConsentSchoolID:          school,
		ConsentSchoolChainID:     &chain,
		ConsentResponsibleUserID: responsavel,
	}

	// the responsável reaches their own consent with no scope at all
	assert.NoError(t, CanView(m, helper.Actor{UserID: responsavel}, helper.TenantScope{}))

	// staff of the owning school or chain
	assert.NoError(t, CanView(m, helper.Actor{UserID: uuid.New()}, helper.TenantScope{SchoolID: &school}))
	assert.NoError(t, CanView(m, helper.Actor{UserID: uuid.New()}, helper.TenantScope{SchoolChainID: &chain}))

	// staff of another school reads it as a missing row
	err := CanView(m, helper.Actor{UserID: uuid.New()}, helper.TenantScope{SchoolID: &otherSchool})
	require.Error(t, err)
	assert.Equal(t, lifecycle.CodeTenantMismatch, lifecycle.CodeOf(err))

	// no actor, no scope
	err = CanView(m, helper.Actor{}, helper.TenantScope{})
	require.Error(t, err)
	assert.Equal(t, lifecycle.CodeTenantMismatch, lifecycle.CodeOf(err))
}
