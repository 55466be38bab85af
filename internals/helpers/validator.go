// file: internals/helpers/validator.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate runs struct validation and, on failure, writes the 422 envelope.
// Returns nil when the DTO is valid.
func ValidateStruct(c *fiber.Ctx, in any) error {
	if err := validate.Struct(in); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return JsonError(c, fiber.StatusBadRequest, "invalid input")
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			field := strings.ToLower(fe.Field())
			fieldErrors[field] = append(fieldErrors[field], fe.Tag())
		}
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}
