package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starevents/starevents-api/internal/api/handler/v1/request"
	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/domain"
)

type BookingService interface {
	PlaceBooking(ctx context.Context, actor domain.Actor, req domain.BookingRequest) (domain.Booking, error)
	CancelBooking(ctx context.Context, actor domain.Actor, reference string) (domain.Booking, error)
	GetBooking(ctx context.Context, actor domain.Actor, reference string) (domain.Booking, error)
	ListMyBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error)
	ListMyTickets(ctx context.Context, actor domain.Actor) ([]domain.TicketDetails, error)
	ScanTicket(ctx context.Context, actor domain.Actor, number string) (domain.TicketDetails, error)
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{
		svc: svc,
	}
}

// HandlePlaceBooking godoc
// @Summary      Book tickets for an approved upcoming event
// @Description  Reserves the tickets, issues one ticket per seat and records the payment atomically.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                     true  "event id"
// @Param        request  body      request.BookingRequest  true  "booking"
// @Success      201      {object}  domain.Booking
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err  "not enough tickets or event not bookable"
// @Router       /events/{eventID}/bookings [post]
// @Security     BearerAuth
func (h *BookingHandler) HandlePlaceBooking(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	eventID, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.PlaceBooking(ctx.Request.Context(), actor, req.Booking(eventID))
	if err != nil {
		renderErr(ctx, "v1.HandlePlaceBooking -> h.svc.PlaceBooking", err)
		return
	}

	ctx.JSON(http.StatusCreated, booking)
}

// HandleListMyBookings godoc
// @Summary      The caller's booking history
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  response.Err
// @Router       /me/bookings [get]
// @Security     BearerAuth
func (h *BookingHandler) HandleListMyBookings(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	bookings, err := h.svc.ListMyBookings(ctx.Request.Context(), actor)
	if err != nil {
		renderErr(ctx, "v1.HandleListMyBookings -> h.svc.ListMyBookings", err)
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleListMyTickets godoc
// @Summary      The caller's valid tickets for upcoming events
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.TicketDetails
// @Failure      401  {object}  response.Err
// @Router       /me/tickets [get]
// @Security     BearerAuth
func (h *BookingHandler) HandleListMyTickets(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tickets, err := h.svc.ListMyTickets(ctx.Request.Context(), actor)
	if err != nil {
		renderErr(ctx, "v1.HandleListMyTickets -> h.svc.ListMyTickets", err)
		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleGetBooking godoc
// @Summary      Get a booking by reference
// @Tags         bookings
// @Produce      json
// @Param        reference  path      string  true  "booking reference"
// @Success      200        {object}  domain.Booking
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /bookings/{reference} [get]
// @Security     BearerAuth
func (h *BookingHandler) HandleGetBooking(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	booking, err := h.svc.GetBooking(ctx.Request.Context(), actor, ctx.Param("reference"))
	if err != nil {
		renderErr(ctx, "v1.HandleGetBooking -> h.svc.GetBooking", err)
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandleCancelBooking godoc
// @Summary      Cancel a confirmed booking and refund it
// @Tags         bookings
// @Produce      json
// @Param        reference  path      string  true  "booking reference"
// @Success      200        {object}  domain.Booking
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Router       /bookings/{reference}/cancel [post]
// @Security     BearerAuth
func (h *BookingHandler) HandleCancelBooking(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	booking, err := h.svc.CancelBooking(ctx.Request.Context(), actor, ctx.Param("reference"))
	if err != nil {
		renderErr(ctx, "v1.HandleCancelBooking -> h.svc.CancelBooking", err)
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandleScanTicket godoc
// @Summary      Admit a ticket at the door
// @Tags         organizer
// @Produce      json
// @Param        number  path      string  true  "ticket number"
// @Success      200     {object}  domain.TicketDetails
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err  "ticket already used or cancelled"
// @Router       /tickets/{number}/scan [post]
// @Security     BearerAuth
func (h *BookingHandler) HandleScanTicket(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ticket, err := h.svc.ScanTicket(ctx.Request.Context(), actor, ctx.Param("number"))
	if err != nil {
		renderErr(ctx, "v1.HandleScanTicket -> h.svc.ScanTicket", err)
		return
	}

	ctx.JSON(http.StatusOK, ticket)
}
