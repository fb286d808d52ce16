package api

import (
	"net/http"
	"time"

	reqdto "rental-inventory/internal/handler/dto/request"
	resdto "rental-inventory/internal/handler/dto/response"
	"rental-inventory/internal/handler/httperr"
	"rental-inventory/internal/pkg/clock"
	"rental-inventory/internal/pkg/errs"
	"rental-inventory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	queries queries.AvailabilityQueries
	dates   dateParam
}

func NewStatisticsHandler(q queries.AvailabilityQueries, c clock.Clock, loc *time.Location) *StatisticsHandler {
	return &StatisticsHandler{
		queries: q,
		dates:   newDateParam(c, loc),
	}
}

// @Summary Weekly statistics
// @Description Projected rental revenue and top-N utilization and sales for the week containing date
// @Tags statistics
// @Produce json
// @Param date query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Param limit query int false "Ranking size (default 5, max 100)"
// @Success 200 {object} resdto.WeeklyStatisticsResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/statistics/weekly [get]
func (h *StatisticsHandler) Weekly(c *gin.Context) {
	var q reqdto.StatisticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidLimit), "Invalid limit", nil)
		return
	}
	anchor, err := h.dates.orToday(q.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.queries.WeeklyStatistics(c.Request.Context(), anchor, queries.ValidateLimit(q.Limit))
	if err != nil {
		abortWithQueryError(c, err)
		return
	}

	res, err := resdto.FromStatisticsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
