package api

import (
	"errors"
	"net/http"

	"carseat-rental/internal/domain/user"
	"carseat-rental/internal/domain/wizard"
	"carseat-rental/internal/handler/httperr"
	"carseat-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use case and domain errors onto HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed",
			httperr.FieldDetail{Field: verr.Field, Reason: verr.Reason})

	case errors.Is(err, wizard.ErrAuthenticationRequired),
		errors.Is(err, usecase.ErrNotAuthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Sign in required", loginRedirect)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)

	case errors.Is(err, usecase.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking draft not found", nil)
	case errors.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, usecase.ErrLocationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)

	case errors.Is(err, usecase.ErrDraftBusy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking draft is busy, try again", nil)
	case errors.Is(err, wizard.ErrSubmissionInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already being submitted", nil)
	case errors.Is(err, wizard.ErrWizardLocked),
		errors.Is(err, wizard.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Action not allowed at this step", nil)
	case errors.Is(err, usecase.ErrInventoryExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, "No seats left for these dates", retryable)
	case errors.Is(err, usecase.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "An account with this email already exists", nil)
	case errors.Is(err, usecase.ErrBookingNotCancellable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking can no longer be cancelled", nil)

	case errors.Is(err, usecase.ErrSubmissionRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking was rejected", notRetryable)
	case errors.Is(err, usecase.ErrSubmissionNetwork):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking could not be submitted", retryable)
	case errors.Is(err, usecase.ErrSubmissionTimeout):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Booking submission timed out", retryable)

	case errors.Is(err, usecase.ErrWaiverTermsNotAccepted):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Waiver must be read and accepted", nil)
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrPasswordTooWeak),
		errors.Is(err, user.ErrEmptyName),
		errors.Is(err, user.ErrEmptyPhone):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

// respond writes resp unless building it failed.
func respond[T any](c *gin.Context, status int, resp T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

var (
	loginRedirect = httperr.RedirectDetail{Redirect: string(wizard.NavAuthentication)}
	retryable     = httperr.RetryDetail{Retryable: true}
	notRetryable  = httperr.RetryDetail{Retryable: false}
)
