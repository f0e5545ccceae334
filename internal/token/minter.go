// Package token mints short-lived bearer tokens for exercising a protected
// API during development. This is a test convenience, not credential
// issuance: the server side decides what it accepts.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TTL is how long a minted token stays valid.
const TTL = 600 * time.Second

// Claims is the fixed claim shape the node-orchestrator middleware expects:
// subject, issuer and audience are required, tenant and partition scope the
// caller.
type Claims struct {
	Subject        string
	Issuer         string
	Audience       string
	TenantID       string
	TenantName     string
	TenantRoles    []string
	PartitionID    string
	PartitionName  string
	PartitionRoles []string
}

// DefaultClaims returns a claim set suitable for local testing against a
// freshly started server.
func DefaultClaims(subject string) Claims {
	return Claims{
		Subject:        subject,
		Issuer:         "nodectl",
		Audience:       "node-orchestrator",
		TenantID:       uuid.New().String(),
		TenantName:     "default-tenant",
		TenantRoles:    []string{"admin"},
		PartitionID:    uuid.New().String(),
		PartitionName:  "default-partition",
		PartitionRoles: []string{"admin"},
	}
}

// Mint signs an HS256 token with the given claims. Issued-at and not-before
// are now; expiry is now plus TTL.
func Mint(secret []byte, c Claims) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("token: secret is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":             c.Subject,
		"iss":             c.Issuer,
		"aud":             c.Audience,
		"iat":             now.Unix(),
		"nbf":             now.Unix(),
		"exp":             now.Add(TTL).Unix(),
		"tenant_id":       c.TenantID,
		"tenant_name":     c.TenantName,
		"tenant_roles":    c.TenantRoles,
		"partition_id":    c.PartitionID,
		"partition_name":  c.PartitionName,
		"partition_roles": c.PartitionRoles,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
