// file: internals/helpers/scope_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minhaescola_backend/internals/lifecycle"
)

func TestTenantScopeCovers(t *testing.T) {
	school := uuid.New()
	chain := uuid.New()
	otherSchool := uuid.New()

	schoolScope := TenantScope{SchoolID: &school}
	assert.True(t, schoolScope.Covers(&school, nil))
	assert.False(t, schoolScope.Covers(&otherSchool, nil))
	assert.False(t, schoolScope.Covers(nil, &chain), "school scope never covers by chain")

	chainScope := TenantScope{SchoolChainID: &chain}
	assert.True(t, chainScope.Covers(&otherSchool, &chain))
	assert.False(t, chainScope.Covers(&otherSchool, nil))

	// an empty scope covers nothing: commands without a resolvable tenant
	// always read as a missing row
	assert.False(t, TenantScope{}.Covers(&school, &chain))
}

// appWithScopes mimics the auth middleware populating Locals from claims.
func appWithScopes(schoolIDs, chainIDs []string, active string, h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if len(schoolIDs) > 0 {
			c.Locals("school_ids", schoolIDs)
		}
		if len(chainIDs) > 0 {
			c.Locals("school_chain_ids", chainIDs)
		}
		if active != "" {
			c.Locals("school_id", active)
		}
		return c.Next()
	})
	app.All("/x", h)
	return app
}

func TestVerifyBodyTenant(t *testing.T) {
	mine := uuid.New()
	victim := uuid.New()
	chain := uuid.New()

	handler := func(school uuid.UUID, schoolChain *uuid.UUID) fiber.Handler {
		return func(c *fiber.Ctx) error {
			if err := VerifyBodyTenant(c, &school, schoolChain); err != nil {
				return JsonLifecycleError(c, err)
			}
			return c.SendStatus(fiber.StatusCreated)
		}
	}

	// creating inside a school the token grants
	app := appWithScopes([]string{mine.String()}, nil, mine.String(), handler(mine, nil))
	resp, err := app.Test(httptest.NewRequest("POST", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// another tenant's school id in the body reads as a missing resource
	app = appWithScopes([]string{mine.String()}, nil, mine.String(), handler(victim, nil))
	resp, err = app.Test(httptest.NewRequest("POST", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// a chain id must be granted on its own
	app = appWithScopes([]string{mine.String()}, nil, mine.String(), handler(mine, &chain))
	resp, err = app.Test(httptest.NewRequest("POST", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	app = appWithScopes([]string{mine.String()}, []string{chain.String()}, mine.String(), handler(mine, &chain))
	resp, err = app.Test(httptest.NewRequest("POST", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// no scopes in the token at all
	app = appWithScopes(nil, nil, "", handler(mine, nil))
	resp, err = app.Test(httptest.NewRequest("POST", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestVerifyBodyTenantErrorCode(t *testing.T) {
	victim := uuid.New()
	app := appWithScopes(nil, nil, "", func(c *fiber.Ctx) error {
		err := VerifyBodyTenant(c, &victim, nil)
		require.Error(t, err)
		assert.Equal(t, lifecycle.CodeTenantMismatch, lifecycle.CodeOf(err))
		return c.SendStatus(fiber.StatusOK)
	})
	_, err := app.Test(httptest.NewRequest("POST", "/x", nil))
	require.NoError(t, err)
}

func TestResolveTenantScopeRejectsForeignSchool(t *testing.T) {
	mine := uuid.New()
	victim := uuid.New()

	app := appWithScopes([]string{mine.String()}, nil, mine.String(), func(c *fiber.Ctx) error {
		scope, err := ResolveTenantScope(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnprocessableEntity)
		}
		require.NotNil(t, scope.SchoolID)
		assert.Equal(t, mine, *scope.SchoolID)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x?school_id="+mine.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// a school the token does not grant never resolves
	resp, err = app.Test(httptest.NewRequest("GET", "/x?school_id="+victim.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// no query param falls back to the active school
	resp, err = app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
