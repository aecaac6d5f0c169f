package auth

import (
	"errors"
	"fmt"
	"time"

	"valuation-backend/internal/tenant"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "valuation-backend"

// AuthClaims represents JWT token claims. The subject is the user id.
type AuthClaims struct {
	OrganizationID string   `json:"org_id"`
	OrgShortName   string   `json:"org"`
	Roles          []string `json:"roles"`
	jwt.RegisteredClaims
}

// OrganizationContext converts verified claims into the caller's organization context
func (c *AuthClaims) OrganizationContext() (*tenant.OrganizationContext, error) {
	if c.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	if c.OrgShortName == "" {
		return nil, errors.New("token has no organization")
	}
	orgID, err := uuid.Parse(c.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("token has an invalid organization id: %w", err)
	}
	return &tenant.OrganizationContext{
		OrganizationID: orgID,
		OrgShortName:   c.OrgShortName,
		UserID:         c.Subject,
		Roles:          append([]string(nil), c.Roles...),
	}, nil
}

// AuthService issues and verifies HS256 tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{secret: []byte(secret), ttl: ttl}, nil
}

// GenerateJWT creates a token carrying the organization context
func (s *AuthService) GenerateJWT(oc *tenant.OrganizationContext) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		OrganizationID: oc.OrganizationID.String(),
		OrgShortName:   oc.OrgShortName,
		Roles:          oc.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   oc.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
