package constants

import (
	"database/sql/driver"
	"fmt"
)

// UserRole mirrors the Postgres ENUM 'user_role'
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleLimited UserRole = "limited"
	RoleClient  UserRole = "client"
)

// Stringer ­– convenient for fmt / logs
func (r UserRole) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *UserRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = UserRole(v)
	case []byte:
		*r = UserRole(v)
	default:
		return fmt.Errorf("UserRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r UserRole) Value() (driver.Value, error) { return string(r), nil }
