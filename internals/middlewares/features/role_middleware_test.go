// file: internals/middlewares/features/role_middleware_test.go
package features

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appWithRole(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/x", gate, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestIsAdministrative(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{"owner", fiber.StatusOK},
		{"admin", fiber.StatusOK},
		{"staff", fiber.StatusOK},
		{"Admin", fiber.StatusOK}, // claim casing is not the caller's problem
		{"teacher", fiber.StatusForbidden},
		{"guardian", fiber.StatusForbidden},
		{"", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		app := appWithRole(tc.role, IsAdministrative())
		resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "role %q", tc.role)
	}
}

func TestRequireRoles(t *testing.T) {
	gate := RequireRoles("teacher", "admin")

	app := appWithRole("teacher", gate)
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	app = appWithRole("guardian", gate)
	resp, err = app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
