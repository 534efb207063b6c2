package entity

import "fmt"

// Role is the user role. It is a closed set: every switch over Role carries a
// default arm returning an error, so an unknown role never passes silently.
type Role string

const (
	RoleHQ    Role = "HQ"    // headquarters: unrestricted scope across all branches
	RoleOwner Role = "OWNER" // branch manager: scoped to their branch
	RoleStaff Role = "STAFF" // branch staff: most restricted scope
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleHQ, RoleOwner, RoleStaff:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }

// NeedsBranch reports whether the role requires a branch assignment.
// HQ users are the only ones without one.
func (r Role) NeedsBranch() bool { return r != RoleHQ }
