package api

import (
	"net/http"

	reqdto "carseat-rental/internal/handler/dto/request"
	resdto "carseat-rental/internal/handler/dto/response"
	"carseat-rental/internal/handler/httperr"
	"carseat-rental/internal/handler/middleware"
	"carseat-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingDraftHandler struct {
	wizardUseCase usecase.WizardUseCase
}

func NewBookingDraftHandler(wizardUseCase usecase.WizardUseCase) *BookingDraftHandler {
	return &BookingDraftHandler{wizardUseCase: wizardUseCase}
}

// @Summary Start booking
// @Description Start a new booking wizard for the current client
// @Tags booking-drafts
// @Produce json
// @Success 201 {object} resdto.DraftResponse
// @Router /booking-drafts [post]
func (h *BookingDraftHandler) Start(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errClientMissing, "Internal server error", nil)
		return
	}
	view, err := h.wizardUseCase.Start(c.Request.Context(), clientID)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to start booking")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWizardView(view))
}

// @Summary Get booking draft
// @Tags booking-drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /booking-drafts/{id} [get]
func (h *BookingDraftHandler) Get(c *gin.Context) {
	clientID, draftID, ok := draftParams(c)
	if !ok {
		return
	}
	view, err := h.wizardUseCase.Get(c.Request.Context(), clientID, draftID)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load booking draft")
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Update trip details
// @Description Partially update location, seat type, dates and special request
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.TripRequest true "Trip details"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /booking-drafts/{id}/trip [put]
func (h *BookingDraftHandler) UpdateTrip(c *gin.Context) {
	clientID, draftID, ok := draftParams(c)
	if !ok {
		return
	}
	var req reqdto.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	update, err := req.ToUpdate()
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid trip details")
		return
	}
	h.respond(c, "Failed to update trip")(h.wizardUseCase.UpdateTrip(c.Request.Context(), clientID, draftID, update))
}

// @Summary Update contact info
// @Tags booking-drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.ContactRequest true "Contact info"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/contact [put]
func (h *BookingDraftHandler) UpdateContact(c *gin.Context) {
	clientID, draftID, ok := draftParams(c)
	if !ok {
		return
	}
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.respond(c, "Failed to update contact")(h.wizardUseCase.UpdateContact(c.Request.Context(), clientID, draftID, req.ToUpdate()))
}

// @Summary Next step
// @Tags booking-drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /booking-drafts/{id}/next [post]
func (h *BookingDraftHandler) Next(c *gin.Context) {
	clientID, draftID, ok := draftParams(c)
	if !ok {
		return
	}
	h.respond(c, "Failed to advance")(h.wizardUseCase.Next(c.Request.Context(), clientID, middleware.GetSession(c), draftID))
}

// @Summary Previous step
// @Tags booking-drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/back [post]
func (h *BookingDraftHandler) Back(c *gin.Context) {
	clientID, draftID, ok := draftParams(c)
	if !ok {
		return
	}
	h.respond(c, "Failed to go back")(h.wizardUseCase.Back(c.Request.Context(), clientID, draftID))
}

// @Summary Edit trip details
// @Description Return to the first step keeping all entered data
// @Tags booking-drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/edit-trip [post]
func (h *BookingDraftHandler) EditTrip(c *gin.Context) {
	clientID, draftID, ok := draftParams(c)
	if !ok {
		return
	}
	h.respond(c, "Failed to edit trip")(h.wizardUseCase.EditTrip(c.Request.Context(), clientID, draftID))
}

// @Summary Submit booking
// @Tags booking-drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /booking-drafts/{id}/submit [post]
func (h *BookingDraftHandler) Submit(c *gin.Context) {
	clientID, draftID, ok := draftParams(c)
	if !ok {
		return
	}
	view, err := h.wizardUseCase.Submit(c.Request.Context(), clientID, middleware.GetSession(c), draftID)
	if err != nil {
		abortWithUseCaseError(c, err, "Booking submission failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmittedView(view))
}

// @Summary Retry submission
// @Description Return a retryable failed submission to review
// @Tags booking-drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-drafts/{id}/retry [post]
func (h *BookingDraftHandler) Retry(c *gin.Context) {
	clientID, draftID, ok := draftParams(c)
	if !ok {
		return
	}
	h.respond(c, "Failed to retry")(h.wizardUseCase.Retry(c.Request.Context(), clientID, draftID))
}

func (h *BookingDraftHandler) respond(c *gin.Context, fallback string) func(*usecase.WizardView, error) {
	return func(view *usecase.WizardView, err error) {
		if err != nil {
			abortWithUseCaseError(c, err, fallback)
			return
		}
		c.JSON(http.StatusOK, resdto.FromWizardView(view))
	}
}

func draftParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errClientMissing, "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return clientID, draftID, true
}
