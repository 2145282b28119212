package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starevents/starevents-api/internal/api/handler/v1/request"
	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/domain"
)

type ReportService interface {
	AdminDashboard(ctx context.Context, actor domain.Actor) (domain.AdminDashboard, error)
	OrganizerDashboard(ctx context.Context, actor domain.Actor) (domain.OrganizerDashboard, error)
	MonthlySales(ctx context.Context, actor domain.Actor) ([]domain.MonthlySales, error)
	EventsReport(ctx context.Context, actor domain.Actor) ([]domain.EventReportRow, error)
	UsersReport(ctx context.Context, actor domain.Actor) ([]domain.UserReportRow, error)
	OrganizerSales(ctx context.Context, actor domain.Actor, r domain.ReportRange) (domain.SalesReport, error)
	OrganizerRevenue(ctx context.Context, actor domain.Actor, r domain.ReportRange) (domain.RevenueReport, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleAdminDashboard godoc
// @Summary      Platform totals
// @Tags         reports
// @Produce      json
// @Success      200  {object}  domain.AdminDashboard
// @Failure      403  {object}  response.Err
// @Router       /admin/dashboard [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleAdminDashboard(ctx *gin.Context) {
	render(ctx, "v1.HandleAdminDashboard -> h.svc.AdminDashboard", h.svc.AdminDashboard)
}

// HandleMonthlySales godoc
// @Summary      Revenue and tickets per month, newest first
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.MonthlySales
// @Failure      403  {object}  response.Err
// @Router       /admin/reports/sales [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleMonthlySales(ctx *gin.Context) {
	render(ctx, "v1.HandleMonthlySales -> h.svc.MonthlySales", h.svc.MonthlySales)
}

// HandleEventsReport godoc
// @Summary      Tickets sold and available per event
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.EventReportRow
// @Failure      403  {object}  response.Err
// @Router       /admin/reports/events [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleEventsReport(ctx *gin.Context) {
	render(ctx, "v1.HandleEventsReport -> h.svc.EventsReport", h.svc.EventsReport)
}

// HandleUsersReport godoc
// @Summary      Users, newest first
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.UserReportRow
// @Failure      403  {object}  response.Err
// @Router       /admin/reports/users [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleUsersReport(ctx *gin.Context) {
	render(ctx, "v1.HandleUsersReport -> h.svc.UsersReport", h.svc.UsersReport)
}

// HandleOrganizerDashboard godoc
// @Summary      The caller's event totals
// @Tags         reports
// @Produce      json
// @Success      200  {object}  domain.OrganizerDashboard
// @Failure      403  {object}  response.Err
// @Router       /organizer/dashboard [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleOrganizerDashboard(ctx *gin.Context) {
	render(ctx, "v1.HandleOrganizerDashboard -> h.svc.OrganizerDashboard", h.svc.OrganizerDashboard)
}

// HandleOrganizerSales godoc
// @Summary      Sales of the caller's events over a period
// @Description  Defaults to the last 30 days.
// @Tags         reports
// @Produce      json
// @Param        from      query     string  false  "YYYY-MM-DD"
// @Param        to        query     string  false  "YYYY-MM-DD"
// @Param        event_id  query     int     false  "restrict to one event"
// @Success      200       {object}  domain.SalesReport
// @Failure      400       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Router       /organizer/reports/sales [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleOrganizerSales(ctx *gin.Context) {
	renderRange(ctx, "v1.HandleOrganizerSales -> h.svc.OrganizerSales", h.svc.OrganizerSales)
}

// HandleOrganizerRevenue godoc
// @Summary      Revenue and attendance of the caller's events over a period
// @Description  Defaults to the last 30 days.
// @Tags         reports
// @Produce      json
// @Param        from      query     string  false  "YYYY-MM-DD"
// @Param        to        query     string  false  "YYYY-MM-DD"
// @Param        event_id  query     int     false  "restrict to one event"
// @Success      200       {object}  domain.RevenueReport
// @Failure      400       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Router       /organizer/reports/revenue [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleOrganizerRevenue(ctx *gin.Context) {
	renderRange(ctx, "v1.HandleOrganizerRevenue -> h.svc.OrganizerRevenue", h.svc.OrganizerRevenue)
}

func render[T any](ctx *gin.Context, site string, fn func(context.Context, domain.Actor) (T, error)) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	report, err := fn(ctx.Request.Context(), actor)
	if err != nil {
		renderErr(ctx, site, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

func renderRange[T any](ctx *gin.Context, site string, fn func(context.Context, domain.Actor, domain.ReportRange) (T, error)) {
	actor, respErr := getActor(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var q request.RangeQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := fn(ctx.Request.Context(), actor, q.Range())
	if err != nil {
		renderErr(ctx, site, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
