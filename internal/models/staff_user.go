package models

// StaffUser mirrors the staff_users table.
type StaffUser struct {
	StaffUserID string `db:"staff_user_id"`
	Username    string `db:"username"`
	DisplayName string `db:"display_name"`
	Role        string `db:"role"`
	PINHash     string `db:"pin_hash"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
