package constants

// User roles
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// ValidRole reports whether role is part of the closed enumeration.
func ValidRole(role int) bool {
	return role == RoleUser || role == RoleAdmin
}

// Booking status
const (
	BookingStatusActive    = 0
	BookingStatusCompleted = 1
)
