// file: internals/helpers/lifecycle_http.go
package helper

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaescola_backend/internals/lifecycle"
)

// JsonLifecycleError maps the engine's error taxonomy onto the response
// envelope with stable codes. Anything outside the taxonomy is a 500.
func JsonLifecycleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return JsonErrorCode(c, fiber.StatusGatewayTimeout,
			string(lifecycle.CodeTimeout), lifecycle.ErrTimeout().Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "not found")
	}

	var le *lifecycle.Error
	if !errors.As(err, &le) {
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	status := fiber.StatusInternalServerError
	switch le.Code {
	case lifecycle.CodeUnknownStatus, lifecycle.CodeMissingField:
		status = fiber.StatusUnprocessableEntity
	case lifecycle.CodeInvalidSourceState, lifecycle.CodeConflict:
		status = fiber.StatusConflict
	case lifecycle.CodeUnauthorizedActor:
		status = fiber.StatusForbidden
	case lifecycle.CodeTenantMismatch:
		// deliberately indistinguishable from a missing row
		return JsonError(c, fiber.StatusNotFound, "not found")
	case lifecycle.CodeTimeout:
		status = fiber.StatusGatewayTimeout
	}
	return JsonErrorCode(c, status, string(le.Code), le.Message)
}
