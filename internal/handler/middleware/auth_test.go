//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/handler/middleware"
	"beauty-booking/internal/pkg/cookie"
	"beauty-booking/internal/usecase"
	"beauty-booking/tests/common/httptest"
	usecasemock "beauty-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	client        user.Actor
	owner         user.Actor
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.mockValidator)

	s.client = user.NewActor(uuid.New(), user.RoleClient)
	s.owner = user.NewActor(uuid.New(), user.RoleOwner)

	s.router.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		s.Require().True(ok)
		c.JSON(http.StatusOK, gin.H{
			"user_id": actor.UserID,
			"role":    actor.Role,
			"token":   middleware.GetSessionToken(c),
		})
	})
	s.router.GET("/owner", m.RequireAuth(), m.RequireOwner(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer token sets the actor", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "good-token").Return(s.client, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.client.UserID.String(), body["user_id"])
		s.Equal("client", body["role"])
		s.Equal("good-token", body["token"])
	})

	s.Run("success: cookie wins over the header", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "cookie-token").Return(s.client, nil)

		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "header-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("error: 401 for a revoked session", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "revoked").Return(user.Actor{}, usecase.ErrSessionRevoked)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "revoked")
		httptest.AssertErrorKind(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireOwner() {
	s.Run("success: owner passes", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "owner-token").Return(s.owner, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner", nil, "owner-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 403 for a client", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "client-token").Return(s.client, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner", nil, "client-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "PERMISSION_DENIED")
	})
}
