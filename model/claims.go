package model

import "github.com/golang-jwt/jwt/v5"

type AppClaims struct {
	FarmerID int    `json:"farmer_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the authenticated caller of a request. The auth middleware builds it from
// the token claims and stores it on the request context.
type Session struct {
	FarmerID int
	Role     Role
}

// IsAdmin reports whether the session may use administrative operations.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
