//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/handler/dto/request"
	resdto "beauty-booking/internal/handler/dto/response"
	"beauty-booking/internal/pkg/cookie"
	"beauty-booking/tests/common/authtest"
	"beauty-booking/tests/common/dbtest"
	"beauty-booking/tests/common/httptest"
	"beauty-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "cliente@example.com", string(user.RoleClient))
	dbtest.CreateTestUser(s.T(), s.DB, "dona@salao.com", string(user.RoleOwner))
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		body           request.RegisterRequest
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "正常な登録",
			body:           request.RegisterRequest{Name: "Ana Souza", Email: "ana@example.com", Password: "password123"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "登録済みメールアドレス",
			body:           request.RegisterRequest{Name: "Outra", Email: "cliente@example.com", Password: "password123"},
			expectedStatus: http.StatusConflict,
			expectedKind:   "CONFLICT",
		},
		{
			name:           "大文字のメールアドレスも重複扱い",
			body:           request.RegisterRequest{Name: "Outra", Email: "CLIENTE@example.com", Password: "password123"},
			expectedStatus: http.StatusConflict,
			expectedKind:   "CONFLICT",
		},
		{
			name:           "短すぎるパスワード",
			body:           request.RegisterRequest{Name: "Ana", Email: "ana2@example.com", Password: "short"},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "VALIDATION",
		},
		{
			name:           "空の名前",
			body:           request.RegisterRequest{Name: "", Email: "ana3@example.com", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "VALIDATION",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, "")
			if tt.expectedKind != "" {
				httptest.AssertErrorKind(t, w, tt.expectedStatus, tt.expectedKind)
				return
			}

			var created resdto.UserResponse
			httptest.AssertSuccessResponse(t, w, tt.expectedStatus, &created)
			require.NotEqual(t, uuid.Nil, created.ID)
			require.Equal(t, "client", created.Role, "登録ユーザーは常にclient")

			// 登録したユーザーでログインできること
			token := authtest.LoginUser(t, s.Router, tt.body.Email, tt.body.Password)
			require.NotEmpty(t, token)
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "正常なログイン", email: "cliente@example.com", password: authtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "オーナーのログイン", email: "dona@salao.com", password: authtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "存在しないユーザー", email: "nobody@example.com", password: authtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "間違ったパスワード", email: "cliente@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "空のメールアドレス", email: "", password: authtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "空のパスワード", email: "cliente@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var loginRes resdto.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
			require.NotEmpty(t, loginRes.Token, "トークンが空")
			require.Equal(t, tt.email, loginRes.User.Email)

			sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
			require.NotNil(t, sessionCookie, "セッションクッキーが設定されていない")
			require.True(t, sessionCookie.HttpOnly)

			// last_loginが更新されることを確認
			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_loginが更新されていない")
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("ログイン中のユーザー情報を返す", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "dona@salao.com", authtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "dona@salao.com", me.Email)
		require.Equal(t, "owner", me.Role)
	})

	s.Run("トークンなしは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorKind(s.T(), w, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("期限切れトークンは401", func() {
		t := s.T()
		var id uuid.UUID
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'cliente@example.com'").Scan(&id))

		expired := s.jwt.CreateExpiredToken(t, id, user.RoleClient)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウト後のトークンは使えない", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "cliente@example.com", authtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, token)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, "失効したトークンが受け付けられた")
	})

	s.Run("未ログインのログアウトは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
