package api

import (
	"errors"
	"net/http"

	reqdto "carseat-rental/internal/handler/dto/request"
	resdto "carseat-rental/internal/handler/dto/response"
	"carseat-rental/internal/handler/httperr"
	"carseat-rental/internal/handler/middleware"
	"carseat-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errClientMissing = errors.New("client not identified")

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Sign up
// @Description Create an account and sign the current client in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errClientMissing, "Internal server error", nil)
		return
	}
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sess, err := h.authUseCase.Signup(c.Request.Context(), clientID, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "Signup failed")
		return
	}
	middleware.SetSession(c, sess)
	resp, err := resdto.FromSession(sess)
	respond(c, http.StatusCreated, resp, err)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errClientMissing, "Internal server error", nil)
		return
	}
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	sess, err := h.authUseCase.Login(c.Request.Context(), clientID, credentials)
	if err != nil {
		abortWithUseCaseError(c, err, "Login failed")
		return
	}
	middleware.SetSession(c, sess)
	resp, err := resdto.FromSession(sess)
	respond(c, http.StatusOK, resp, err)
}

// @Summary User logout
// @Description Clear the session of the current client
// @Tags auth
// @Success 204 "No Content"
// @Failure 500 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errClientMissing, "Internal server error", nil)
		return
	}
	if err := h.authUseCase.Logout(c.Request.Context(), clientID); err != nil {
		abortWithUseCaseError(c, err, "Logout failed")
		return
	}
	middleware.SetSession(c, nil)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the session of the signed in user
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, err := h.authUseCase.Me(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load session")
		return
	}
	resp, err := resdto.FromSession(sess)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Sign waiver
// @Description Record the safety waiver for the signed in user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.WaiverRequest true "Waiver request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /waiver [post]
func (h *AuthHandler) SignWaiver(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errClientMissing, "Internal server error", nil)
		return
	}
	var req reqdto.WaiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sess, err := h.authUseCase.SignWaiver(c.Request.Context(), clientID, middleware.GetSession(c), req.HasRead, req.Agrees)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to sign waiver")
		return
	}
	middleware.SetSession(c, sess)
	resp, err := resdto.FromSession(sess)
	respond(c, http.StatusOK, resp, err)
}
