package domain

// Role is a workspace permission level. Higher values grant more access.
type Role int

const (
	RoleMember Role = 1
	RoleAdmin  Role = 2
	RoleOwner  Role = 3
)

// ParseRole converts a stored role name to a Role. Unknown values are
// rejected rather than mapped to a default: a membership row with a role we
// do not recognize must never grant access.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "member":
		return RoleMember, true
	case "admin":
		return RoleAdmin, true
	case "owner":
		return RoleOwner, true
	default:
		return 0, false
	}
}

func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleAdmin:
		return "admin"
	case RoleOwner:
		return "owner"
	default:
		return "unknown"
	}
}

// HasAccess reports whether a held role satisfies a required level.
func (r Role) HasAccess(required Role) bool {
	return r >= required
}

// PrincipalKind tags the closed set of actor variants. A request resolves to
// exactly one variant; staff and driver principals never share a token or a
// trust domain.
type PrincipalKind int

const (
	PrincipalSuperAdmin PrincipalKind = iota + 1
	PrincipalWorkspaceMember
	PrincipalDriver
	PrincipalInternalService
)

// Principal is the authenticated actor behind a request.
type Principal struct {
	Kind PrincipalKind

	// UserID is set for SuperAdmin and WorkspaceMember.
	UserID string
	// Role is set for WorkspaceMember.
	Role Role
	// EndUserID is set for Driver.
	EndUserID string
}

// StaffIdentity is a resolved staff session: a user that may act as a
// platform super admin or as a member of some workspaces. Which of the two it
// is for a given request is decided by the verifier that consumes it.
type StaffIdentity struct {
	UserID     string
	SuperAdmin bool
}
