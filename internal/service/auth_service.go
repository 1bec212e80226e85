package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"orgassess/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingOrg         = errors.New("organizationId is required")
)

const analystTokenTTL = 12 * time.Hour

// AuthService handles analyst authentication
type AuthService struct {
	username  string
	password  string
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(username, password, secret string) *AuthService {
	return &AuthService{
		username:  username,
		password:  password,
		jwtSecret: []byte(secret),
		now:       time.Now,
	}
}

// Login validates credentials and returns an organization-scoped token
func (s *AuthService) Login(req model.LoginRequest) (*model.LoginResponse, error) {
	if req.Username != s.username || req.Password != s.password {
		return nil, ErrInvalidCredentials
	}
	if req.OrganizationID == "" {
		return nil, ErrMissingOrg
	}

	analystID := "analyst_" + uuid.New().String()[:8]
	tokenString, err := s.issue(analystID, req.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:          tokenString,
		AnalystID:      analystID,
		OrganizationID: req.OrganizationID,
	}, nil
}

func (s *AuthService) issue(analystID, organizationID string) (string, error) {
	now := s.now()
	claims := &model.AnalystClaims{
		AnalystID:      analystID,
		OrganizationID: organizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(analystTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates an analyst JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.AnalystClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AnalystClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AnalystClaims)
	if !ok || !token.Valid || claims.OrganizationID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
