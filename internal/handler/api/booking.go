package api

import (
	"net/http"

	resdto "carseat-rental/internal/handler/dto/response"
	"carseat-rental/internal/handler/middleware"
	"carseat-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary List bookings
// @Description Bookings of the signed in user grouped by status, newest first
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingOverviewResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	overview, err := h.bookingUseCase.List(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingOverview(overview))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.bookingUseCase.Get(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel an active booking whose pickup date has not passed
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	view, err := h.bookingUseCase.Cancel(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
