//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"beauty-booking/internal/domain/auth"
	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/infra"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/pkg/clock"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/pkg/jwt"
	"beauty-booking/internal/usecase/commands"
	"beauty-booking/internal/usecase/shared"
	"beauty-booking/tests/common/builder"
	commandsmock "beauty-booking/tests/mock/commands"
	sharedmock "beauty-booking/tests/mock/shared"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	users    *sharedmock.MockUserRepository
	hasher   *commandsmock.MockPasswordHasher
	tokens   *commandsmock.MockTokenIssuer
	sessions *commandsmock.MockSessionRevoker
	clk      *clock.MockClock
	sut      commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.users = sharedmock.NewMockUserRepository(s.mockCtrl)
	s.hasher = commandsmock.NewMockPasswordHasher(s.mockCtrl)
	s.tokens = commandsmock.NewMockTokenIssuer(s.mockCtrl)
	s.sessions = commandsmock.NewMockSessionRevoker(s.mockCtrl)
	s.clk = clock.NewMockClock(fixedNow)
	s.sut = commands.NewAuthCommands(s.uow, s.hasher, s.tokens, s.sessions, s.clk)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr("find user", pgx.ErrNoRows)
}

func (s *AuthCommandsTestSuite) TestLogin() {
	snap := builder.NewUserBuilder().BuildSnapshot()
	creds, err := auth.NewCredentials(snap.Email, "password123")
	s.Require().NoError(err)

	s.Run("success: issues a token and stamps last login", func() {
		expires := fixedNow.Add(time.Hour)
		s.reads.EXPECT().UserByEmail(gomock.Any(), snap.Email).Return(snap, nil)
		s.hasher.EXPECT().Compare(snap.PasswordHash, "password123").Return(nil)
		s.tokens.EXPECT().GenerateToken(snap.ID, user.RoleClient).
			Return(&jwt.IssuedToken{Token: "tok", TokenID: "jti", ExpiresAt: expires}, nil)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), snap.ID, fixedNow).Return(nil)

		got, err := s.sut.Login(context.Background(), creds)

		s.Require().NoError(err)
		s.Equal("tok", got.Token)
		s.Equal(expires, got.ExpiresAt)
		s.Equal(snap.Email, got.User.Email)
		s.Equal(user.RoleClient, got.User.Role)
	})

	s.Run("success: last login failure does not fail the login", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), snap.Email).Return(snap, nil)
		s.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)
		s.tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).
			Return(&jwt.IssuedToken{Token: "tok", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		_, err := s.sut.Login(context.Background(), creds)
		s.NoError(err)
	})

	s.Run("error: unknown email and wrong password look the same", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), snap.Email).Return(nil, notFound())
		_, errUnknown := s.sut.Login(context.Background(), creds)

		s.reads.EXPECT().UserByEmail(gomock.Any(), snap.Email).Return(snap, nil)
		s.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(errors.New("mismatch"))
		_, errWrong := s.sut.Login(context.Background(), creds)

		s.ErrorIs(errUnknown, commands.ErrInvalidCredentials)
		s.ErrorIs(errWrong, commands.ErrInvalidCredentials)
		s.Equal(errUnknown.Error(), errWrong.Error())
	})

	s.Run("error: store failure is not reported as bad credentials", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), snap.Email).
			Return(nil, infra.WrapRepoErr("find user", errors.New("conn reset")))

		_, err := s.sut.Login(context.Background(), creds)
		s.Error(err)
		s.False(errs.Is(err, commands.ErrInvalidCredentials))
	})
}

func (s *AuthCommandsTestSuite) TestRegister() {
	reg, err := auth.NewRegistration("Ana Souza", "Ana@Example.com", "password123")
	s.Require().NoError(err)

	s.Run("success: creates a client with a hashed password", func() {
		s.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		s.reads.EXPECT().UserByEmail(gomock.Any(), "ana@example.com").Return(nil, notFound())
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) error {
				s.Equal("hashed", u.PasswordHash())
				s.Equal(user.RoleClient, u.Role())
				return nil
			})

		got, err := s.sut.Register(context.Background(), reg)

		s.Require().NoError(err)
		s.Equal("ana@example.com", got.Email)
		s.Equal(user.RoleClient, got.Role)
		s.NotEqual(uuid.Nil, got.ID)
	})

	s.Run("error: existing email", func() {
		s.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		s.reads.EXPECT().UserByEmail(gomock.Any(), "ana@example.com").
			Return(builder.NewUserBuilder().WithEmail("ana@example.com").BuildSnapshot(), nil)

		_, err := s.sut.Register(context.Background(), reg)
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("error: concurrent insert hits the unique index", func() {
		s.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		s.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound())
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("create user", errors.New("unique"), infra.KindDuplicateKey))

		_, err := s.sut.Register(context.Background(), reg)
		s.ErrorIs(err, commands.ErrEmailTaken)
	})
}

func (s *AuthCommandsTestSuite) TestLogout() {
	claims := func(expires time.Time) *jwt.Claims {
		return &jwt.Claims{
			UserID: uuid.New(),
			Role:   "client",
			RegisteredClaims: gojwt.RegisteredClaims{
				ID:        "jti-1",
				ExpiresAt: gojwt.NewNumericDate(expires),
			},
		}
	}

	s.Run("success: revokes for the remaining lifetime", func() {
		s.tokens.EXPECT().ValidateToken("tok").Return(claims(fixedNow.Add(30*time.Minute)), nil)
		s.sessions.EXPECT().Revoke(gomock.Any(), "jti-1", 30*time.Minute).Return(nil)

		s.NoError(s.sut.Logout(context.Background(), "tok"))
	})

	s.Run("success: invalid token has nothing to revoke", func() {
		s.tokens.EXPECT().ValidateToken("garbage").Return(nil, jwt.ErrInvalidToken)

		s.NoError(s.sut.Logout(context.Background(), "garbage"))
	})

	s.Run("error: revocation store failure", func() {
		s.tokens.EXPECT().ValidateToken("tok").Return(claims(fixedNow.Add(time.Hour)), nil)
		s.sessions.EXPECT().Revoke(gomock.Any(), "jti-1", time.Hour).Return(errors.New("redis down"))

		err := s.sut.Logout(context.Background(), "tok")
		s.True(errs.Is(err, commands.ErrSessionRevocation))
	})
}

func (s *AuthCommandsTestSuite) TestEnsureOwner() {
	reg, err := auth.NewRegistration("Dona", "dona@salao.com", "ownerpass1")
	s.Require().NoError(err)

	s.Run("creates the owner when absent", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), "dona@salao.com").Return(nil, notFound()).Times(2)
		s.hasher.EXPECT().Hash("ownerpass1").Return("hashed", nil)
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) error {
				s.Equal(user.RoleOwner, u.Role())
				return nil
			})

		created, err := s.sut.EnsureOwner(context.Background(), reg)
		s.NoError(err)
		s.True(created)
	})

	s.Run("leaves an existing account alone", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), "dona@salao.com").
			Return(builder.NewUserBuilder().AsOwner().BuildSnapshot(), nil)

		created, err := s.sut.EnsureOwner(context.Background(), reg)
		s.NoError(err)
		s.False(created)
	})
}
