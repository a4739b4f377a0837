package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"beauty-booking/internal/domain/auth"
	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/infra"
	"beauty-booking/internal/pkg/clock"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/pkg/jwt"
	"beauty-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrEmailTaken         = errs.New("email already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrSessionRevocation  = errs.New("session revocation failed")
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (*jwt.IssuedToken, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

// SessionRevoker remembers logged out token ids until they would have expired anyway.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type AuthenticatedUser struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  user.Role
}

type LoginResult struct {
	User      AuthenticatedUser
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, creds auth.Credentials) (*LoginResult, error)
	Register(ctx context.Context, reg auth.Registration) (*AuthenticatedUser, error)
	Logout(ctx context.Context, token string) error
	// EnsureOwner creates the owner account when no account uses the e-mail yet.
	EnsureOwner(ctx context.Context, reg auth.Registration) (bool, error)
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	hasher   PasswordHasher
	tokens   TokenIssuer
	sessions SessionRevoker
	clock    clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher PasswordHasher, tokens TokenIssuer, sessions SessionRevoker, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:      uow,
		hasher:   hasher,
		tokens:   tokens,
		sessions: sessions,
		clock:    clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, creds auth.Credentials) (*LoginResult, error) {
	snap, err := a.validateUser(ctx, creds)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	issued, err := a.tokens.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded, only the last_login stamp is lost
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		User: AuthenticatedUser{
			ID:    snap.ID,
			Name:  snap.Name,
			Email: snap.Email,
			Role:  role,
		},
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

// Registration through the API always creates clients.
func (a *authCommandsImpl) Register(ctx context.Context, reg auth.Registration) (*AuthenticatedUser, error) {
	u, err := a.createUser(ctx, reg, user.RoleClient)
	if err != nil {
		return nil, err
	}

	return &AuthenticatedUser{
		ID:    u.ID(),
		Name:  u.Name().Value(),
		Email: u.Email().Value(),
		Role:  u.Role(),
	}, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, token string) error {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		// nothing to revoke
		return nil
	}

	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(a.clock.Now())
	if ttl <= 0 {
		return nil
	}

	if err := a.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		return errs.Mark(err, ErrSessionRevocation)
	}
	return nil
}

func (a *authCommandsImpl) EnsureOwner(ctx context.Context, reg auth.Registration) (bool, error) {
	existing, err := a.uow.CommandReads().UserByEmail(ctx, reg.Email().Value())
	switch {
	case err == nil:
		if existing.Role != user.RoleOwner.String() {
			slog.Warn("owner e-mail belongs to a non-owner account, leaving it unchanged", "user_id", existing.ID)
		}
		return false, nil
	case !infra.IsKind(err, infra.KindNotFound):
		return false, err
	}

	if _, err := a.createUser(ctx, reg, user.RoleOwner); err != nil {
		if errs.Is(err, ErrEmailTaken) {
			// another instance created it concurrently
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (a *authCommandsImpl) createUser(ctx context.Context, reg auth.Registration, role user.Role) (*user.User, error) {
	hash, err := a.hasher.Hash(reg.Password().Value())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(reg.Name(), reg.Email(), hash, role, a.clock.Now())

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, findErr := tx.Reads().UserByEmail(ctx, u.Email().Value())
		if findErr == nil {
			return ErrEmailTaken
		}
		if !infra.IsKind(findErr, infra.KindNotFound) {
			return findErr
		}

		if createErr := tx.Users().Create(ctx, tx.DB(), u); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return createErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, creds auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Return same error as password mismatch to prevent user enumeration attacks
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(snap.PasswordHash, creds.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return snap, nil
}
