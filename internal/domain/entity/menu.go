package entity

// MenuItem is one navigation entry the client renders for a role.
type MenuItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var (
	menuCommon = []MenuItem{
		{Key: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Key: "customers", Label: "Customers", Path: "/customers"},
		{Key: "appointments", Label: "Appointments", Path: "/appointments"},
	}
	menuOwner = []MenuItem{
		{Key: "invitations", Label: "Staff Invitations", Path: "/invitations"},
	}
	menuHQ = []MenuItem{
		{Key: "approvals", Label: "User Approvals", Path: "/admin/approvals"},
		{Key: "users", Label: "User Management", Path: "/admin/users"},
		{Key: "branches", Label: "Branch Management", Path: "/admin/branches"},
		{Key: "invitations", Label: "Owner Invitations", Path: "/invitations"},
		{Key: "stats", Label: "Statistics", Path: "/admin/stats"},
		{Key: "backup", Label: "Backups", Path: "/admin/backup"},
		{Key: "apikeys", Label: "API Keys", Path: "/admin/api-keys"},
	}
)

// MenuFor is a pure role -> menu lookup. No runtime mutation.
func MenuFor(r Role) []MenuItem {
	switch r {
	case RoleHQ:
		return append(append([]MenuItem{}, menuCommon...), menuHQ...)
	case RoleOwner:
		return append(append([]MenuItem{}, menuCommon...), menuOwner...)
	case RoleStaff:
		return append([]MenuItem{}, menuCommon...)
	default:
		return nil
	}
}
