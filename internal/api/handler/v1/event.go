package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starevents/starevents-api/internal/api/handler/v1/request"
	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, actor domain.Actor, details domain.EventDetails, image *service.Image) (domain.Event, error)
	EditEvent(ctx context.Context, actor domain.Actor, id uint, version int, details domain.EventDetails, image *service.Image) (domain.Event, error)
	ReplaceImage(ctx context.Context, actor domain.Actor, id uint, image service.Image) (domain.Event, error)
	Approve(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error)
	Reject(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error)
	CancelEvent(ctx context.Context, actor domain.Actor, id uint) (domain.Event, int, error)
	ListPublicEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	GetPublicEvent(ctx context.Context, id uint) (domain.Event, error)
	ListMyEvents(ctx context.Context, actor domain.Actor, search string, status domain.EventStatus) ([]domain.Event, error)
	GetMyEvent(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error)
	ManageEvents(ctx context.Context, actor domain.Actor, search string, status domain.EventStatus) ([]domain.EventRow, error)
	Availability(ctx context.Context, id uint) (domain.Availability, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      Browse upcoming approved events
// @Tags         events
// @Produce      json
// @Param        search    query     string  false  "title or description"
// @Param        category  query     string  false  "category name"
// @Param        city      query     string  false  "venue city"
// @Param        sort      query     string  false  "date, date_desc, name_desc, price, price_desc"
// @Success      200       {array}   domain.Event
// @Failure      400       {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	var q request.EventQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	events, err := h.svc.ListPublicEvents(ctx.Request.Context(), q.Filter())
	if err != nil {
		renderErr(ctx, "v1.HandleListEvents -> h.svc.ListPublicEvents", err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an approved event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetPublicEvent(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, "v1.HandleGetEvent -> h.svc.GetPublicEvent", err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleGetAvailability godoc
// @Summary      Current ticket availability of an approved event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  domain.Availability
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID}/availability [get]
func (h *EventHandler) HandleGetAvailability(ctx *gin.Context) {
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	availability, err := h.svc.Availability(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, "v1.HandleGetAvailability -> h.svc.Availability", err)
		return
	}

	ctx.JSON(http.StatusOK, availability)
}

// HandleCreateEvent godoc
// @Summary      Create an event pending moderation
// @Description  Accepts JSON, or multipart form fields with an optional "image" file.
// @Tags         organizer
// @Accept       json,mpfd
// @Produce      json
// @Param        request  body      request.EventRequest  true  "event"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /organizer/events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	details, err := req.Details()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	image, err := readImage(ctx)
	if err != nil {
		renderErr(ctx, "v1.HandleCreateEvent -> readImage", err)
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), actor, details, image)
	if err != nil {
		renderErr(ctx, "v1.HandleCreateEvent -> h.svc.CreateEvent", err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleListMyEvents godoc
// @Summary      List the caller's events
// @Tags         organizer
// @Produce      json
// @Param        search  query     string  false  "title or description"
// @Param        status  query     string  false  "Pending, Approved, Rejected or Cancelled"
// @Success      200     {array}   domain.Event
// @Failure      403     {object}  response.Err
// @Router       /organizer/events [get]
// @Security     BearerAuth
func (h *EventHandler) HandleListMyEvents(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var q request.EventQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	events, err := h.svc.ListMyEvents(ctx.Request.Context(), actor, q.Search, domain.EventStatus(q.Status))
	if err != nil {
		renderErr(ctx, "v1.HandleListMyEvents -> h.svc.ListMyEvents", err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetMyEvent godoc
// @Summary      Get one of the caller's events in any status
// @Tags         organizer
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  domain.Event
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /organizer/events/{eventID} [get]
// @Security     BearerAuth
func (h *EventHandler) HandleGetMyEvent(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetMyEvent(ctx.Request.Context(), actor, id)
	if err != nil {
		renderErr(ctx, "v1.HandleGetMyEvent -> h.svc.GetMyEvent", err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleEditEvent godoc
// @Summary      Edit an event
// @Description  Sends an approved event back to moderation. Fails with 409 when version is stale
// @Description  and with 422 when total_tickets is below the tickets already sold.
// @Tags         organizer
// @Accept       json,mpfd
// @Produce      json
// @Param        eventID  path      int                       true  "event id"
// @Param        request  body      request.EditEventRequest  true  "event"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Router       /organizer/events/{eventID} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleEditEvent(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EditEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	details, err := req.Details()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	image, err := readImage(ctx)
	if err != nil {
		renderErr(ctx, "v1.HandleEditEvent -> readImage", err)
		return
	}

	event, err := h.svc.EditEvent(ctx.Request.Context(), actor, id, req.Version, details, image)
	if err != nil {
		renderErr(ctx, "v1.HandleEditEvent -> h.svc.EditEvent", err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleReplaceImage godoc
// @Summary      Replace an event's image
// @Tags         organizer
// @Accept       mpfd
// @Produce      json
// @Param        eventID  path      int   true  "event id"
// @Param        image    formData  file  true  "jpeg, png, gif or webp"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /organizer/events/{eventID}/image [post]
// @Security     BearerAuth
func (h *EventHandler) HandleReplaceImage(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	image, err := readImage(ctx)
	if err != nil {
		renderErr(ctx, "v1.HandleReplaceImage -> readImage", err)
		return
	}
	if image == nil {
		response.RenderErr(ctx, response.ErrBadRequest(domain.NewValidationError("image", "is required")))
		return
	}

	event, err := h.svc.ReplaceImage(ctx.Request.Context(), actor, id, *image)
	if err != nil {
		renderErr(ctx, "v1.HandleReplaceImage -> h.svc.ReplaceImage", err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCancelEvent godoc
// @Summary      Cancel an event and refund its bookings
// @Tags         organizer
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  response.CancelEventResponse
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /organizer/events/{eventID}/cancel [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCancelEvent(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, refunded, err := h.svc.CancelEvent(ctx.Request.Context(), actor, id)
	if err != nil {
		renderErr(ctx, "v1.HandleCancelEvent -> h.svc.CancelEvent", err)
		return
	}

	ctx.JSON(http.StatusOK, response.CancelEventResponse{
		Event:            event,
		BookingsRefunded: refunded,
	})
}

// HandleManageEvents godoc
// @Summary      List every event for moderation, pending first
// @Tags         admin
// @Produce      json
// @Param        search  query     string  false  "title or description"
// @Param        status  query     string  false  "Pending, Approved, Rejected or Cancelled"
// @Success      200     {array}   domain.EventRow
// @Failure      403     {object}  response.Err
// @Router       /admin/events [get]
// @Security     BearerAuth
func (h *EventHandler) HandleManageEvents(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var q request.EventQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rows, err := h.svc.ManageEvents(ctx.Request.Context(), actor, q.Search, domain.EventStatus(q.Status))
	if err != nil {
		renderErr(ctx, "v1.HandleManageEvents -> h.svc.ManageEvents", err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleApproveEvent godoc
// @Summary      Approve a pending event
// @Tags         admin
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  domain.Event
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /admin/events/{eventID}/approve [post]
// @Security     BearerAuth
func (h *EventHandler) HandleApproveEvent(ctx *gin.Context) {
	h.moderate(ctx, "v1.HandleApproveEvent -> h.svc.Approve", h.svc.Approve)
}

// HandleRejectEvent godoc
// @Summary      Reject a pending or approved event
// @Tags         admin
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      200      {object}  domain.Event
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /admin/events/{eventID}/reject [post]
// @Security     BearerAuth
func (h *EventHandler) HandleRejectEvent(ctx *gin.Context) {
	h.moderate(ctx, "v1.HandleRejectEvent -> h.svc.Reject", h.svc.Reject)
}

func (h *EventHandler) moderate(ctx *gin.Context, site string, fn func(context.Context, domain.Actor, uint) (domain.Event, error)) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := fn(ctx.Request.Context(), actor, id)
	if err != nil {
		renderErr(ctx, site, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}
