package models

// RoleAdmin is the only role in the current design.
const RoleAdmin = "ADMIN"

// AdminUser defines the admin credential model based on the 'admin_users' table
type AdminUser struct {
	ID       int64  `json:"id" db:"id" example:"1"`                    // Unique identifier for the admin account
	Username string `json:"username" db:"username" example:"admin1"`   // Unique login name (4-50 chars)
	Password string `json:"-" db:"password"`                           // Stored credential (excluded from JSON)
	Email    string `json:"email" db:"email" example:"admin@sms.edu"`  // Unique email address
	Role     string `json:"role" db:"role" example:"ADMIN"`            // Fixed to ADMIN for every account
}
