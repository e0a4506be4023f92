package entity

// Role is stored on user rows; branches are users with RoleBranch.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBranch Role = "branch"
)

func (r Role) String() string {
	return string(r)
}
