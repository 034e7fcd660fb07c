// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

package sec

// # Editor Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// Unrestricted system access, including destructive operations
	RoleAdmin Role = "admin"

	// Can create and modify scenes and hotspots
	RoleEditor Role = "editor"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-20) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 20
	case RoleEditor:
		return 10
	default:
		return 0
	}
}
