package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgassess/internal/model"
)

func TestLogin_RoundTrip(t *testing.T) {
	svc := NewAuthService("admin", "pw", "secret")

	resp, err := svc.Login(model.LoginRequest{Username: "admin", Password: "pw", OrganizationID: "org-1"})
	require.NoError(t, err)
	assert.Contains(t, resp.AnalystID, "analyst_")

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "org-1", claims.OrganizationID)
	assert.Equal(t, resp.AnalystID, claims.AnalystID)
}

func TestLogin_Rejects(t *testing.T) {
	svc := NewAuthService("admin", "pw", "secret")

	_, err := svc.Login(model.LoginRequest{Username: "admin", Password: "nope", OrganizationID: "org-1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(model.LoginRequest{Username: "admin", Password: "pw"})
	assert.ErrorIs(t, err, ErrMissingOrg)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := NewAuthService("admin", "pw", "secret")
	other := NewAuthService("admin", "pw", "other-secret")

	resp, err := other.Login(model.LoginRequest{Username: "admin", Password: "pw", OrganizationID: "org-1"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewAuthService("admin", "pw", "secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * analystTokenTTL) }

	token, err := svc.issue("analyst_x", "org-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RequiresOrganization(t *testing.T) {
	svc := NewAuthService("admin", "pw", "secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.AnalystClaims{AnalystID: "a"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
