package constants

// Platform roles as carried in the JWT "role" claim.
const (
	RoleOwner    = "owner"    // platform administrator
	RoleAdmin    = "admin"    // school/chain administrator
	RoleStaff    = "staff"    // school staff (secretaria, cantina)
	RoleTeacher  = "teacher"
	RoleGuardian = "guardian" // responsável
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleStaff,
		RoleTeacher,
		RoleGuardian,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)

// IsAdministrative reports whether the role may run admin commands
// (approve print requests, review documents, manage billing).
func IsAdministrative(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleStaff:
		return true
	}
	return false
}
