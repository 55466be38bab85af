// file: internals/helpers/actor.go
package helper

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Actor is the authenticated caller as seen by commands.
type Actor struct {
	UserID uuid.UUID
	Roles  []string
}

// GetActor reads the actor identity placed in Locals by the auth middleware.
func GetActor(c *fiber.Ctx) (Actor, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return Actor{}, fmt.Errorf("no authenticated user on request")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return Actor{}, fmt.Errorf("invalid user id in token")
	}

	actor := Actor{UserID: id}
	if role, ok := c.Locals("userRole").(string); ok && role != "" {
		actor.Roles = append(actor.Roles, role)
	}
	return actor, nil
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
