package rbac

// Role-based access control: OWNER has full access, STAFF can view and
// create but cannot delete or manage vendors, users, or the workspace.

type Role string

const (
	RoleOwner Role = "OWNER"
	RoleStaff Role = "STAFF"
)

type Permission struct {
	Resource string
	Actions  []string
}

var rolePermissions = map[Role][]Permission{
	RoleOwner: {
		{Resource: "customers", Actions: []string{"create", "read", "update", "delete"}},
		{Resource: "orders", Actions: []string{"create", "read", "update", "delete", "changeState"}},
		{Resource: "inventory", Actions: []string{"create", "read", "update", "delete", "adjustPricing"}},
		{Resource: "vendors", Actions: []string{"create", "read", "update", "delete"}},
		{Resource: "purchases", Actions: []string{"create", "read", "update", "delete"}},
		{Resource: "reports", Actions: []string{"read"}},
		{Resource: "dashboard", Actions: []string{"read"}},
		{Resource: "users", Actions: []string{"create", "read", "update", "delete"}},
		{Resource: "workspace", Actions: []string{"read", "update", "delete"}},
	},
	RoleStaff: {
		{Resource: "customers", Actions: []string{"create", "read", "update"}},
		{Resource: "orders", Actions: []string{"create", "read", "update", "changeState"}},
		{Resource: "inventory", Actions: []string{"create", "read", "update"}},
		{Resource: "vendors", Actions: []string{"read"}},
		{Resource: "purchases", Actions: []string{"create", "read"}},
		{Resource: "reports", Actions: []string{"read"}},
		{Resource: "dashboard", Actions: []string{"read"}},
		{Resource: "users", Actions: []string{"read"}},
		{Resource: "workspace", Actions: []string{"read"}},
	},
}

func HasPermission(role Role, resource, action string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}

	for _, p := range perms {
		if p.Resource != resource {
			continue
		}
		for _, a := range p.Actions {
			if a == action {
				return true
			}
		}
	}
	return false
}

func IsOwner(role Role) bool {
	return role == RoleOwner
}

func CanDelete(role Role) bool {
	return IsOwner(role)
}

func Permissions(role Role) []Permission {
	return rolePermissions[role]
}
