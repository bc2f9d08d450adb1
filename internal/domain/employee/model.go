package employee

import (
	"time"
)

// Employee is a staff member who can be attributed on orders. No business
// rule depends on employees beyond attribution.
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RoleID    string    `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role describes an employee's job function
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
