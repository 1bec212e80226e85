package model

import "github.com/golang-jwt/jwt/v5"

// AnalystClaims are JWT claims for an analyst acting on behalf of one
// organization.
type AnalystClaims struct {
	AnalystID      string `json:"analystId"`
	OrganizationID string `json:"organizationId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for analyst login
type LoginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	OrganizationID string `json:"organizationId"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token          string `json:"token"`
	AnalystID      string `json:"analystId"`
	OrganizationID string `json:"organizationId"`
}
