// file: internals/features/subscriptions/controller/helpers.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"minhaescola_backend/internals/lifecycle"
)

// statusFilter collects ?status= values (repeatable or comma separated) and
// classifies each against the entity's closed set.
func statusFilter(c *fiber.Ctx, e lifecycle.Entity) ([]lifecycle.Status, error) {
	var raw []string
	for _, v := range c.Context().QueryArgs().PeekMulti("status") {
		for _, part := range strings.Split(string(v), ",") {
			if s := strings.TrimSpace(part); s != "" {
				raw = append(raw, s)
			}
		}
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return lifecycle.ClassifyAll(e, raw)
}
