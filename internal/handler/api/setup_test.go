//go:build unit

package api_test

import (
	"carseat-rental/internal/handler/middleware"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/usecase"
	usecasemock "carseat-rental/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// newClientRouter runs the real client middleware against a resolver that always yields client.
// Tests sign in or out by assigning client.Session.
func newClientRouter(ctrl *gomock.Controller) (*gin.Engine, *usecase.Client) {
	gin.SetMode(gin.TestMode)

	client := &usecase.Client{ID: uuid.New(), Token: "client-token"}
	resolver := usecasemock.NewMockClientResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ string) (*usecase.Client, error) {
			cp := *client
			return &cp, nil
		}).AnyTimes()

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.NewClientMiddleware(resolver, config.NewTestConfig()).Identify())
	return router, client
}
