// file: internals/helpers/scope.go
package helper

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaescola_backend/internals/lifecycle"
)

// =========================================================
// TENANT SCOPE — every query/command is bounded to the
// caller's school(s) or chain(s). school_id and
// school_chain_id are mutually exclusive on a request.
// =========================================================

type TenantScope struct {
	SchoolID      *uuid.UUID
	SchoolChainID *uuid.UUID
}

func (s TenantScope) IsZero() bool {
	return s.SchoolID == nil && s.SchoolChainID == nil
}

// ResolveTenantScope reads the requested scope from query params and checks
// it against the scopes carried in the caller's token (Locals set by the auth
// middleware). Requesting both dimensions, or a scope the caller does not
// hold, is an error.
func ResolveTenantScope(c *fiber.Ctx) (TenantScope, error) {
	schoolRaw := strings.TrimSpace(c.Query("school_id"))
	chainRaw := strings.TrimSpace(c.Query("school_chain_id"))

	if schoolRaw != "" && chainRaw != "" {
		return TenantScope{}, fmt.Errorf("school_id and school_chain_id are mutually exclusive")
	}

	if schoolRaw != "" {
		id, err := uuid.Parse(schoolRaw)
		if err != nil {
			return TenantScope{}, fmt.Errorf("invalid school_id")
		}
		if !localsContains(c, "school_ids", id) {
			return TenantScope{}, fmt.Errorf("school_id outside the caller's scope")
		}
		return TenantScope{SchoolID: &id}, nil
	}

	if chainRaw != "" {
		id, err := uuid.Parse(chainRaw)
		if err != nil {
			return TenantScope{}, fmt.Errorf("invalid school_chain_id")
		}
		if !localsContains(c, "school_chain_ids", id) {
			return TenantScope{}, fmt.Errorf("school_chain_id outside the caller's scope")
		}
		return TenantScope{SchoolChainID: &id}, nil
	}

	// default: the caller's active school from the token
	if raw, ok := c.Locals("school_id").(string); ok && raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return TenantScope{SchoolID: &id}, nil
		}
	}
	return TenantScope{}, fmt.Errorf("no tenant scope resolvable for this caller")
}

// ApplyTenantScope narrows q to the scope. schoolCol/chainCol are the fully
// prefixed column names of the target table.
func (s TenantScope) Apply(q *gorm.DB, schoolCol, chainCol string) *gorm.DB {
	if s.SchoolID != nil {
		return q.Where(schoolCol+" = ?", *s.SchoolID)
	}
	if s.SchoolChainID != nil && chainCol != "" {
		return q.Where(chainCol+" = ?", *s.SchoolChainID)
	}
	return q
}

// Covers reports whether a row's (school, chain) ownership falls inside the
// scope; commands use it for the post-load tenant check.
func (s TenantScope) Covers(schoolID, chainID *uuid.UUID) bool {
	if s.SchoolID != nil {
		return schoolID != nil && *schoolID == *s.SchoolID
	}
	if s.SchoolChainID != nil {
		return chainID != nil && *chainID == *s.SchoolChainID
	}
	return false
}

// VerifyBodyTenant checks tenant ids taken from a request body against the
// scopes carried in the caller's token. Commands may only create rows inside
// a school or chain the token actually grants; a mismatch surfaces as
// TENANT_MISMATCH so the response reads the same as a missing resource.
func VerifyBodyTenant(c *fiber.Ctx, schoolID, chainID *uuid.UUID) error {
	if schoolID == nil && chainID == nil {
		return lifecycle.ErrTenantMismatch()
	}
	if schoolID != nil && !holdsSchool(c, *schoolID) {
		return lifecycle.ErrTenantMismatch()
	}
	if chainID != nil && !localsContains(c, "school_chain_ids", *chainID) {
		return lifecycle.ErrTenantMismatch()
	}
	return nil
}

func holdsSchool(c *fiber.Ctx, id uuid.UUID) bool {
	if localsContains(c, "school_ids", id) {
		return true
	}
	raw, ok := c.Locals("school_id").(string)
	return ok && strings.EqualFold(strings.TrimSpace(raw), id.String())
}

func localsContains(c *fiber.Ctx, key string, id uuid.UUID) bool {
	raw, ok := c.Locals(key).([]string)
	if !ok {
		return false
	}
	for _, v := range raw {
		if strings.EqualFold(strings.TrimSpace(v), id.String()) {
			return true
		}
	}
	return false
}
