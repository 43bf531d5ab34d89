package rbac

// Permissions gating mutating operations. The scheduling engine itself is
// role-agnostic; roles only decide which API operations a caller may perform.
const (
	PermissionCreateClient    = "client:create"
	PermissionDeleteClient    = "client:delete"
	PermissionReadClient      = "client:read"
	PermissionUpdateMilestone = "milestone:update"
)

const (
	RoleAdmin     = "admin"
	RoleTaskOwner = "task_owner"
)

var rolePermissions = map[string][]string{
	RoleTaskOwner: {
		PermissionReadClient,
		PermissionUpdateMilestone,
	},
	RoleAdmin: {
		PermissionReadClient,
		PermissionUpdateMilestone,
		PermissionCreateClient,
		PermissionDeleteClient,
	},
}

// HasPermission checks whether a role grants the given permission.
func HasPermission(role, permission string) bool {
	permissions, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CheckPermission returns an error instead of a boolean, for handler use.
func CheckPermission(role, permission string) error {
	if !HasPermission(role, permission) {
		return &PermissionDeniedError{
			Role:       role,
			Permission: permission,
		}
	}
	return nil
}

type PermissionDeniedError struct {
	Role       string
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return "insufficient permissions"
}
