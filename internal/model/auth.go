package model

import "fmt"

// Role is a closed enum. Anything else coming out of the database is a data
// error, caught when the row is scanned.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is the credential record as stored in the users table. PasswordHash
// never leaves the service layer.
type User struct {
	Username     string
	EmployeeID   int
	Disabled     bool
	Role         Role
	PasswordHash string
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type UserResponse struct {
	Username   string `json:"username"`
	EmployeeID int    `json:"id_employee"`
	Disabled   bool   `json:"disabled"`
	Role       Role   `json:"role"`
}

type UserCreateRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserUpdateRequest struct {
	EmployeeID *int    `json:"id_employee"`
	Disabled   *bool   `json:"disabled"`
	Role       *Role   `json:"role"`
	Password   *string `json:"password"`
}
