package users

type Role string

const (
	RoleAdmin   Role = "ADMIN"   // platform operator
	RoleManager Role = "MANAGER" // company management
	RoleClerk   Role = "CLERK"   // counter sales: tickets and parcels
	RoleDriver  Role = "DRIVER"  // trip execution only
)

func (r Role) String() string {
	return string(r)
}
