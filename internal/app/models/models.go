package models

// RoleType defines the caller role claimed via the X-Role header
type RoleType string

const (
	RoleInstructor RoleType = "instructor"
	RoleAdmin      RoleType = "admin"
)
