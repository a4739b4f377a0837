package api

import (
	"net/http"

	resdto "beauty-booking/internal/handler/dto/response"
	"beauty-booking/internal/handler/httperr"
	"beauty-booking/internal/handler/middleware"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Monthly revenue
// @Description Revenue of completed appointments grouped by month. Months without completions are omitted.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RevenueReportResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /dados-financeiros [get]
func (h *DashboardHandler) MonthlyRevenue(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	report, err := h.q.MonthlyRevenue(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromRevenueReport(report)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map revenue report"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
