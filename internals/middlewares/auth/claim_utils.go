// file: internals/middlewares/auth/claim_utils.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

/* ======== Store claims to Locals ======== */

func storeIdentityToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	// user id: id / sub / user_id, in order of preference
	switch {
	case strClaim(claims, "id") != "":
		c.Locals("user_id", strClaim(claims, "id"))
	case strClaim(claims, "sub") != "":
		c.Locals("user_id", strClaim(claims, "sub"))
	case strClaim(claims, "user_id") != "":
		c.Locals("user_id", strClaim(claims, "user_id"))
	}

	if role := strClaim(claims, "role"); role != "" {
		c.Locals("userRole", role)
	}
	if name := strClaim(claims, "user_name"); name != "" {
		c.Locals("user_name", name)
	}
}

func storeScopesToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	schoolIDs := toStringSlice(claims["school_ids"])
	chainIDs := toStringSlice(claims["school_chain_ids"])
	studentIDs := toStringSlice(claims["guardian_student_ids"])

	if len(schoolIDs) > 0 {
		c.Locals("school_ids", schoolIDs)
	}
	if len(chainIDs) > 0 {
		c.Locals("school_chain_ids", chainIDs)
	}
	if len(studentIDs) > 0 {
		c.Locals("guardian_student_ids", studentIDs)
	}

	// active scope: explicit claim first, else the first school in scope
	active := strClaim(claims, "school_id")
	if active == "" && len(schoolIDs) > 0 {
		active = schoolIDs[0]
	}
	if active != "" {
		c.Locals("school_id", active)
	}
}

/* ======== Helpers ======== */

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func toStringSlice(v interface{}) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	default:
		return nil
	}
}
