//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"carseat-rental/internal/handler/dto/request"
	resdto "carseat-rental/internal/handler/dto/response"
	"carseat-rental/internal/pkg/cookie"
	"carseat-rental/tests/common/authtest"
	"carseat-rental/tests/common/builder"
	"carseat-rental/tests/common/dbtest"
	"carseat-rental/tests/common/httptest"
	"carseat-rental/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
	waiverURL = "/api/waiver"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com")
}

func (s *authSuite) TestSignup() {
	s.Run("新規登録でセッションが開始されること", func() {
		t := s.T()
		body := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) {
			a.Email = "new@example.com"
		}).BuildSignupDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, body, "")

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "new@example.com", res.Email)
		require.False(t, res.WaiverSigned)

		cookies := httptest.ExtractCookies(w)
		require.NotNil(t, httptest.ExtractCookie(w, cookie.ClientTokenCookieName), "クライアントCookieが発行されていない")

		me := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		httptest.AssertSuccessResponse(t, me, http.StatusOK, &res)
		require.Equal(t, "new@example.com", res.Email)
	})

	s.Run("登録済みメールアドレスは409になること", func() {
		body := builder.NewAuthBuilder().BuildSignupDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res resdto.SessionResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				require.Equal(t, tt.email, res.Email)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウト後はセッションが無効になること", func() {
		t := s.T()
		cookies := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)

		authtest.LogoutUser(t, s.Router, cookies)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Sign in required")
	})
}

func (s *authSuite) TestWaiver() {
	s.Run("同意すると署名日時が記録されること", func() {
		t := s.T()
		cookies := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, waiverURL,
			request.WaiverRequest{HasRead: true, Agrees: true}, cookies, "")

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.WaiverSigned)
		require.NotNil(t, res.WaiverDate)

		var signed bool
		err := s.DB.QueryRow(t.Context(), "SELECT waiver_signed FROM users WHERE email = $1", "test@example.com").Scan(&signed)
		require.NoError(t, err)
		require.True(t, signed, "waiver_signedが更新されていない")
	})

	s.Run("未同意は422になること", func() {
		t := s.T()
		cookies := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, waiverURL,
			request.WaiverRequest{HasRead: true}, cookies, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("未ログインは401になること", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waiverURL,
			request.WaiverRequest{HasRead: true, Agrees: true}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}
