package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of a caller as asserted by the identity provider.
type Role string

const (
	RoleTeacher  Role = "docente"
	RoleDirector Role = "directivo"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleTeacher, RoleDirector, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanApprove reports whether the role may approve, reject or release reservations.
func (r Role) CanApprove() bool {
	return r == RoleDirector || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
