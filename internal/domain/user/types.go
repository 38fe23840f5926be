package user

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}

// Rank orders roles for RequireRoleAtLeast checks.
func (r Role) Rank() int {
	switch r {
	case RoleGuest:
		return 1
	case RoleHost:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

func (r Role) AtLeast(other Role) bool {
	return r.Rank() >= other.Rank()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
