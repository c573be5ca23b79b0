package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

var errNoClaims = errors.New("user claims not found in context or invalid type")

// Claim names carried by tokens this service issues and accepts.
const (
	ClaimSubject = "sub"
	ClaimRole    = "role"
)

func stringClaim(ctx context.Context, name string) (string, error) {
	claims, ok := ctx.Value(userContextKey).(jwt.MapClaims)
	if !ok {
		return "", errNoClaims
	}

	raw, ok := claims[name]
	if !ok {
		return "", fmt.Errorf("missing '%s' claim in token", name)
	}

	value, ok := raw.(string)
	if !ok || value == "" {
		return "", fmt.Errorf("invalid type for '%s' claim: expected string, got %T", name, raw)
	}
	return value, nil
}

// GetSubjectFromContext returns who the token was issued to.
func GetSubjectFromContext(ctx context.Context) (string, error) {
	return stringClaim(ctx, ClaimSubject)
}

func GetRoleFromContext(ctx context.Context) (string, error) {
	return stringClaim(ctx, ClaimRole)
}
