package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starevents/starevents-api/internal/api/handler/v1/request"
	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/domain"
)

type PromotionService interface {
	CreatePromotion(ctx context.Context, actor domain.Actor, promotion domain.Promotion) (domain.Promotion, error)
	ListPromotions(ctx context.Context, actor domain.Actor) ([]domain.Promotion, error)
	SetActive(ctx context.Context, actor domain.Actor, id uint, active bool) (domain.Promotion, error)
}

type PromotionHandler struct {
	svc PromotionService
}

func NewPromotionHandler(svc PromotionService) *PromotionHandler {
	return &PromotionHandler{
		svc: svc,
	}
}

// HandleListPromotions godoc
// @Summary      List promotion codes
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Promotion
// @Failure      403  {object}  response.Err
// @Router       /admin/promotions [get]
// @Security     BearerAuth
func (h *PromotionHandler) HandleListPromotions(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	promotions, err := h.svc.ListPromotions(ctx.Request.Context(), actor)
	if err != nil {
		renderErr(ctx, "v1.HandleListPromotions -> h.svc.ListPromotions", err)
		return
	}

	ctx.JSON(http.StatusOK, promotions)
}

// HandleCreatePromotion godoc
// @Summary      Create a promotion code
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.PromotionRequest  true  "promotion"
// @Success      201      {object}  domain.Promotion
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /admin/promotions [post]
// @Security     BearerAuth
func (h *PromotionHandler) HandleCreatePromotion(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PromotionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	promotion, err := h.svc.CreatePromotion(ctx.Request.Context(), actor, req.Promotion())
	if err != nil {
		renderErr(ctx, "v1.HandleCreatePromotion -> h.svc.CreatePromotion", err)
		return
	}

	ctx.JSON(http.StatusCreated, promotion)
}

// HandleSetPromotionActive godoc
// @Summary      Enable or disable a promotion code
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        promotionID  path      int                    true  "promotion id"
// @Param        request      body      request.ActiveRequest  true  "flag"
// @Success      200          {object}  domain.Promotion
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Router       /admin/promotions/{promotionID}/active [put]
// @Security     BearerAuth
func (h *PromotionHandler) HandleSetPromotionActive(ctx *gin.Context) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	id, respErr := parseID(ctx, "promotionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	promotion, err := h.svc.SetActive(ctx.Request.Context(), actor, id, req.IsActive)
	if err != nil {
		renderErr(ctx, "v1.HandleSetPromotionActive -> h.svc.SetActive", err)
		return
	}

	ctx.JSON(http.StatusOK, promotion)
}
