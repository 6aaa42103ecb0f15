//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"carseat-rental/internal/handler/dto/request"
	"carseat-rental/internal/pkg/cookie"
	"carseat-rental/tests/common/dbtest"
	"carseat-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser signs in on a fresh client and returns the client cookies.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return []*http.Cookie{httptest.RequireCookie(t, w, cookie.ClientTokenCookieName)}
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) []*http.Cookie {
	t.Helper()
	dbtest.CreateTestUser(t, db, email)
	return LoginUser(t, router, email, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
