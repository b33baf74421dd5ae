package role

// Role is the access level carried inside a JWT.
type Role string

const (
	Admin Role = "admin"
)
