package usecase

import (
	"context"

	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/pkg/jwt"
)

var (
	ErrSessionRevoked     = errs.New("session revoked")
	ErrSessionCheckFailed = errs.New("session check failed")
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (user.Actor, error)
}

type SessionChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	sessions   SessionChecker
}

func NewTokenValidator(jwtService *jwt.Service, sessions SessionChecker) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// A revocation lookup that fails rejects the token.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, err
	}

	revoked, err := t.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return user.Actor{}, errs.Mark(err, ErrSessionCheckFailed)
	}
	if revoked {
		return user.Actor{}, ErrSessionRevoked
	}

	return user.NewActor(claims.UserID, role), nil
}
