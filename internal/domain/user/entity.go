package user

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func ValidRole(r string) bool {
	return r == string(RoleAdmin) || r == string(RoleEmployee)
}
