package middleware

import (
	"net/http"
	"strings"

	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/domain/wizard"
	"carseat-rental/internal/handler/httperr"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/pkg/cookie"
	"carseat-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxClientKey = "client"

type ClientMiddleware struct {
	resolver usecase.ClientResolver
	cfg      config.Config
}

func NewClientMiddleware(resolver usecase.ClientResolver, cfg config.Config) *ClientMiddleware {
	return &ClientMiddleware{
		resolver: resolver,
		cfg:      cfg,
	}
}

// Identify attaches the request's client and its session, issuing a client cookie on first contact.
func (m *ClientMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetClientToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		client, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Session storage unavailable", nil)
			return
		}

		if client.Minted {
			cookie.SetClientToken(c, m.cfg.Cookie, client.Token, m.cfg.JWT.Duration)
		}
		c.Set(ctxClientKey, client)
		c.Next()
	}
}

// RequireSession rejects anonymous clients and tells them where to sign in.
func (m *ClientMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c) == nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNotAuthenticated,
				"Sign in required", httperr.RedirectDetail{Redirect: string(wizard.NavAuthentication)})
			return
		}
		c.Next()
	}
}

func GetClient(c *gin.Context) (*usecase.Client, bool) {
	v, exists := c.Get(ctxClientKey)
	if !exists {
		return nil, false
	}
	client, ok := v.(*usecase.Client)
	return client, ok && client != nil
}

func GetClientID(c *gin.Context) (uuid.UUID, bool) {
	client, ok := GetClient(c)
	if !ok {
		return uuid.Nil, false
	}
	return client.ID, true
}

// GetSession returns nil for anonymous clients.
func GetSession(c *gin.Context) *session.Session {
	client, ok := GetClient(c)
	if !ok {
		return nil
	}
	return client.Session
}

// SetSession replaces the session cached on the request after sign in or sign out.
func SetSession(c *gin.Context, sess *session.Session) {
	if client, ok := GetClient(c); ok {
		client.Session = sess
	}
}
