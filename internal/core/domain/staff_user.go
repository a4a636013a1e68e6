package domain

// StaffRole maps a staff member to the application sections they may use.
type StaffRole string

const (
	RoleReception StaffRole = "reception"
	RoleService   StaffRole = "service"
	RoleAdmin     StaffRole = "admin"
)

// ValidStaffRole reports whether r is one of the supported roles.
func ValidStaffRole(r StaffRole) bool {
	switch r {
	case RoleReception, RoleService, RoleAdmin:
		return true
	}
	return false
}

// StaffUser is a front-desk or service employee. Staff authenticate with
// username + PIN at a shared terminal; only the bcrypt hash of the PIN is stored.
type StaffUser struct {
	StaffUserID string    `json:"staffUserID"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Role        StaffRole `json:"role"`
	PINHash     string    `json:"-"`
	IsActive    bool      `json:"isActive"`
	AuditFields
}
