package models

import (
	"fmt"
	"strings"
)

// UserRole identifies which surface a session is allowed to drive.
type UserRole string

const (
	RoleGuest  UserRole = "GUEST"
	RoleStaff  UserRole = "STAFF"
	RoleAdmin  UserRole = "ADMIN"
	RoleVendor UserRole = "VENDOR"
	// RoleNone is the logged-out state.
	RoleNone UserRole = "NONE"
)

// Valid reports whether r is one of the four logged-in roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleAdmin, RoleVendor:
		return true
	}
	return false
}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (UserRole, error) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return RoleNone, fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
