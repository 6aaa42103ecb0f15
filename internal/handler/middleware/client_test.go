//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/handler/middleware"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/pkg/cookie"
	"carseat-rental/internal/usecase"
	"carseat-rental/tests/common/httptest"
	usecasemock "carseat-rental/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newClientTestRouter(t *testing.T) (*gin.Engine, *usecasemock.MockClientResolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver := usecasemock.NewMockClientResolver(gomock.NewController(t))
	m := middleware.NewClientMiddleware(resolver, config.NewTestConfig())

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(m.Identify())
	r.GET("/whoami", func(c *gin.Context) {
		id, _ := middleware.GetClientID(c)
		signedIn := middleware.GetSession(c) != nil
		c.JSON(http.StatusOK, gin.H{"client_id": id.String(), "signed_in": signedIn})
	})
	r.GET("/private", m.RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, resolver
}

func TestIdentify(t *testing.T) {
	t.Run("mints a cookie for a new client", func(t *testing.T) {
		r, resolver := newClientTestRouter(t)
		id := uuid.New()
		resolver.EXPECT().Resolve(gomock.Any(), "").
			Return(&usecase.Client{ID: id, Token: "minted-token", Minted: true}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, id.String(), body["client_id"])
		assert.Equal(t, false, body["signed_in"])

		c := httptest.ExtractCookie(rec, cookie.ClientTokenCookieName)
		require.NotNil(t, c)
		assert.Equal(t, "minted-token", c.Value)
		assert.True(t, c.HttpOnly)
	})

	t.Run("reuses the cookie token without reissuing it", func(t *testing.T) {
		r, resolver := newClientTestRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), "existing-token").
			Return(&usecase.Client{ID: uuid.New(), Token: "existing-token"}, nil)

		cookies := []*http.Cookie{{Name: cookie.ClientTokenCookieName, Value: "existing-token"}}
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/whoami", nil, cookies, "")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		assert.Nil(t, httptest.ExtractCookie(rec, cookie.ClientTokenCookieName))
	})

	t.Run("accepts a bearer token", func(t *testing.T) {
		r, resolver := newClientTestRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), "header-token").
			Return(&usecase.Client{ID: uuid.New(), Token: "header-token"}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "header-token")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("session storage outage is a 503", func(t *testing.T) {
		r, resolver := newClientTestRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis: connection refused"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Session storage unavailable")
	})
}

func TestRequireSession(t *testing.T) {
	t.Run("anonymous clients get a login redirect", func(t *testing.T) {
		r, resolver := newClientTestRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&usecase.Client{ID: uuid.New()}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Sign in required")
		assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)
	})

	t.Run("signed in clients pass", func(t *testing.T) {
		r, resolver := newClientTestRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(&usecase.Client{ID: uuid.New(), Session: &session.Session{UserID: uuid.New(), Email: "a@b.co"}}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
