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

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
	dates   dateParam
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, c clock.Clock, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{
		queries: q,
		dates:   newDateParam(c, loc),
	}
}

// @Summary Weekly availability
// @Description Remaining capacity of every rental item for the week containing date
// @Tags availability
// @Produce json
// @Param date query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.WeeklyAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Weekly(c *gin.Context) {
	anchor, ok := h.bindAnchor(c)
	if !ok {
		return
	}

	view, err := h.queries.WeeklyAvailability(c.Request.Context(), anchor)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	h.respondWeekly(c, view)
}

// @Summary Sold-out items
// @Description Rental items with no remaining units in the week containing date
// @Tags availability
// @Produce json
// @Param date query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.WeeklyAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/availability/sold-out [get]
func (h *AvailabilityHandler) SoldOut(c *gin.Context) {
	anchor, ok := h.bindAnchor(c)
	if !ok {
		return
	}

	view, err := h.queries.SoldOut(c.Request.Context(), anchor)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	h.respondWeekly(c, view)
}

// @Summary Bookable candidates
// @Description Rental items that can still take a booking in the week of date. Without a date the list is empty.
// @Tags availability
// @Produce json
// @Param date query string false "Target date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CandidatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/availability/candidates [get]
func (h *AvailabilityHandler) Candidates(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	target, err := h.dates.optional(q.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.queries.BookableCandidates(c.Request.Context(), target)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}

	res, err := resdto.FromCandidateView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AvailabilityHandler) bindAnchor(c *gin.Context) (time.Time, bool) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return time.Time{}, false
	}
	anchor, err := h.dates.orToday(q.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return time.Time{}, false
	}
	return anchor, true
}

func (h *AvailabilityHandler) respondWeekly(c *gin.Context, view *queries.WeeklyAvailabilityView) {
	res, err := resdto.FromWeeklyAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func abortWithQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
