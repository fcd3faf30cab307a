package constants

import (
	"database/sql/driver"
	"fmt"
)

// MemberRole is the club-level role carried in operator and member tokens.
type MemberRole string

const (
	RoleMember  MemberRole = "MEMBER"
	RoleManager MemberRole = "MANAGER"
	RoleAdmin   MemberRole = "ADMIN"
)

// Stringer ­– convenient for fmt / logs
func (r MemberRole) String() string { return string(r) }

// CanOperate reports whether the role may run operator actions such as vote overrides.
func (r MemberRole) CanOperate() bool {
	return r == RoleAdmin || r == RoleManager
}

func (r MemberRole) Valid() bool {
	switch r {
	case RoleMember, RoleManager, RoleAdmin:
		return true
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *MemberRole) Scan(src interface{}) error {
	s, err := scanString("MemberRole", src)
	if err != nil {
		return err
	}
	*r = MemberRole(s)
	return nil
}

// Value implements the driver.Valuer interface
func (r MemberRole) Value() (driver.Value, error) { return string(r), nil }

func scanString(typeName string, src interface{}) (string, error) {
	switch v := src.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%s: cannot scan type %T", typeName, src)
	}
}
