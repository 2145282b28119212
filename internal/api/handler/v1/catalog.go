package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starevents/starevents-api/internal/api/handler/v1/request"
	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/api/middleware"
	"github.com/starevents/starevents-api/internal/domain"
)

type CatalogService interface {
	CreateVenue(ctx context.Context, actor domain.Actor, venue domain.Venue) (domain.Venue, error)
	UpdateVenue(ctx context.Context, actor domain.Actor, venue domain.Venue) (domain.Venue, error)
	ListVenues(ctx context.Context, actor domain.Actor) ([]domain.Venue, error)
	Cities(ctx context.Context) ([]string, error)
	CreateCategory(ctx context.Context, actor domain.Actor, category domain.EventCategory) (domain.EventCategory, error)
	UpdateCategory(ctx context.Context, actor domain.Actor, category domain.EventCategory) (domain.EventCategory, error)
	ListCategories(ctx context.Context, actor domain.Actor) ([]domain.EventCategory, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListVenues godoc
// @Summary      List active venues
// @Tags         catalogue
// @Produce      json
// @Success      200  {array}  domain.Venue
// @Router       /venues [get]
func (h *CatalogHandler) HandleListVenues(ctx *gin.Context) {
	// Anonymous callers get the zero actor, which only sees active venues.
	actor, _ := middleware.Actor(ctx)

	venues, err := h.svc.ListVenues(ctx.Request.Context(), actor)
	if err != nil {
		renderErr(ctx, "v1.HandleListVenues -> h.svc.ListVenues", err)
		return
	}

	ctx.JSON(http.StatusOK, venues)
}

// HandleListCategories godoc
// @Summary      List active event categories
// @Tags         catalogue
// @Produce      json
// @Success      200  {array}  domain.EventCategory
// @Router       /categories [get]
func (h *CatalogHandler) HandleListCategories(ctx *gin.Context) {
	actor, _ := middleware.Actor(ctx)

	categories, err := h.svc.ListCategories(ctx.Request.Context(), actor)
	if err != nil {
		renderErr(ctx, "v1.HandleListCategories -> h.svc.ListCategories", err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleListCities godoc
// @Summary      Distinct cities of active venues
// @Tags         catalogue
// @Produce      json
// @Success      200  {array}  string
// @Router       /cities [get]
func (h *CatalogHandler) HandleListCities(ctx *gin.Context) {
	cities, err := h.svc.Cities(ctx.Request.Context())
	if err != nil {
		renderErr(ctx, "v1.HandleListCities -> h.svc.Cities", err)
		return
	}

	ctx.JSON(http.StatusOK, cities)
}

// HandleCreateVenue godoc
// @Summary      Add a venue
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.VenueRequest  true  "venue"
// @Success      201      {object}  domain.Venue
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /admin/venues [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateVenue(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	venue, err := h.svc.CreateVenue(ctx.Request.Context(), actor, req.Venue())
	if err != nil {
		renderErr(ctx, "v1.HandleCreateVenue -> h.svc.CreateVenue", err)
		return
	}

	ctx.JSON(http.StatusCreated, venue)
}

// HandleUpdateVenue godoc
// @Summary      Update or deactivate a venue
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        venueID  path      int                   true  "venue id"
// @Param        request  body      request.VenueRequest  true  "venue"
// @Success      200      {object}  domain.Venue
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /admin/venues/{venueID} [put]
// @Security     BearerAuth
func (h *CatalogHandler) HandleUpdateVenue(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	id, respErr := parseID(ctx, "venueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	venue := req.Venue()
	venue.ID = id

	venue, err := h.svc.UpdateVenue(ctx.Request.Context(), actor, venue)
	if err != nil {
		renderErr(ctx, "v1.HandleUpdateVenue -> h.svc.UpdateVenue", err)
		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleCreateCategory godoc
// @Summary      Add an event category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.CategoryRequest  true  "category"
// @Success      201      {object}  domain.EventCategory
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /admin/categories [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateCategory(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.CreateCategory(ctx.Request.Context(), actor, req.Category())
	if err != nil {
		renderErr(ctx, "v1.HandleCreateCategory -> h.svc.CreateCategory", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// HandleUpdateCategory godoc
// @Summary      Update or deactivate an event category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        categoryID  path      int                      true  "category id"
// @Param        request     body      request.CategoryRequest  true  "category"
// @Success      200         {object}  domain.EventCategory
// @Failure      400         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Router       /admin/categories/{categoryID} [put]
// @Security     BearerAuth
func (h *CatalogHandler) HandleUpdateCategory(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	id, respErr := parseID(ctx, "categoryID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category := req.Category()
	category.ID = id

	category, err := h.svc.UpdateCategory(ctx.Request.Context(), actor, category)
	if err != nil {
		renderErr(ctx, "v1.HandleUpdateCategory -> h.svc.UpdateCategory", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}
