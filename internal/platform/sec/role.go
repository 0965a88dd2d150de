// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level carried in an access token.
type UserRole string

const (
	// Unrestricted catalogue access
	RoleAdmin UserRole = "admin"

	// Can edit movies and their cast & crew rosters
	RoleModerator UserRole = "moderator"

	// Read-only registered user
	RoleMember UserRole = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleModerator:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
