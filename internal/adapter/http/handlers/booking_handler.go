package handlers

import (
	"errors"
	"net/http"

	request "travel_backoffice/internal/adapter/http/dto/request"
	response "travel_backoffice/internal/adapter/http/dto/response"
	"travel_backoffice/internal/adapter/http/middleware"
	"travel_backoffice/internal/usecase"
	"travel_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking godoc
// @Summary      Book a seat on a travel package
// @Description  Anonymous bookings are accepted. With a bearer token the booking is attached to the caller.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateBookingRequest  true  "Passenger data"
// @Success      201  {object}  response.BookingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload("booking", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		appErr := invalidPayload("booking", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var userID string
	if claims, ok := middleware.GetClaims(c); ok {
		userID = claims.Subject
	}

	booking, err := h.usecase.Create(c.Request.Context(), userID, in)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// ListBookings godoc
// @Summary   List every booking
// @Tags      bookings
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.BookingResponse
// @Router    /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// ListMyBookings godoc
// @Summary   List the bookings of the authenticated user
// @Tags      bookings
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.BookingResponse
// @Router    /bookings/me [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized).ToHTTPError())
		return
	}

	bookings, err := h.usecase.ListByUser(c.Request.Context(), claims.Subject)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// ListBookingsByTravelPackage godoc
// @Summary   List the bookings of one travel package
// @Tags      bookings
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  string  true  "Package id"
// @Success   200  {array}  response.BookingResponse
// @Router    /bookings/travel-package/{id} [get]
func (h *BookingHandler) ListBookingsByTravelPackage(c *gin.Context) {
	bookings, err := h.usecase.ListByTravelPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// GetBooking godoc
// @Summary   Get a booking
// @Tags      bookings
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  string  true  "Booking id"
// @Success   200  {object}  response.BookingResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// DeleteBooking godoc
// @Summary   Cancel a booking and release its seat
// @Tags      bookings
// @Security  BearerAuth
// @Param     id  path  string  true  "Booking id"
// @Success   204
// @Failure   404  {object}  pkg.HTTPError
// @Router    /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBookingDetails godoc
// @Summary   Bookings joined with their package and user
// @Tags      bookings
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.BookingDetailsResponse
// @Router    /bookings/details [get]
func (h *BookingHandler) ListBookingDetails(c *gin.Context) {
	details, err := h.usecase.Details(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingDetails(details))
}

// StatsByCity godoc
// @Summary   Booking count and average passenger age per city
// @Tags      bookings
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.CityStatResponse
// @Router    /bookings/stats/city [get]
func (h *BookingHandler) StatsByCity(c *gin.Context) {
	stats, err := h.usecase.StatsByCity(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

// StatsBySource godoc
// @Summary   Booking count and share per "how did you meet us" answer
// @Tags      bookings
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.SourceStatResponse
// @Router    /bookings/stats/source [get]
func (h *BookingHandler) StatsBySource(c *gin.Context) {
	stats, err := h.usecase.StatsBySource(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidTravelPackageID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBoardingLocationUnavailable):
		return pkg.NewDomainError("BOARDING_LOCATION_UNAVAILABLE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoSeatsAvailable):
		return pkg.NewDomainError("NO_SEATS_AVAILABLE", "No seats available for this travel package", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTravelPackageNotFound):
		return pkg.NewDomainErrorSimple("TRAVEL_PACKAGE_NOT_FOUND", "Travel package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
