//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-inventory/internal/handler/api"
	resdto "rental-inventory/internal/handler/dto/response"
	"rental-inventory/internal/pkg/clock"
	"rental-inventory/internal/pkg/errs"
	"rental-inventory/internal/usecase/queries"
	"rental-inventory/tests/common/httptest"
	"rental-inventory/tests/common/testutil"
	queriesmock "rental-inventory/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	clock       *clock.MockClock
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	// 10:00 on Wednesday 2024-03-13
	s.clock = clock.NewMockClock(time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC))
	s.handler = api.NewAvailabilityHandler(s.mockQueries, s.clock, time.UTC)

	s.router.GET("/availability", s.handler.Weekly)
	s.router.GET("/availability/sold-out", s.handler.SoldOut)
	s.router.GET("/availability/candidates", s.handler.Candidates)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func weeklyView() *queries.WeeklyAvailabilityView {
	return &queries.WeeklyAvailabilityView{
		WeekStart: "2024-03-11",
		WeekEnd:   "2024-03-17",
		Items: []*queries.AvailabilityItemView{
			{DesignCode: "A", Size: "M", TotalQuantity: 2, ReservedQuantity: 2, RemainingQuantity: 0, UtilizationRate: 100, SoldOut: true},
			{DesignCode: "B", Size: "M", TotalQuantity: 3, ReservedQuantity: 1, RemainingQuantity: 2, UtilizationRate: 33},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ================================================================================
// TestWeekly
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestWeekly() {
	s.Run("success: explicit date", func() {
		s.mockQueries.EXPECT().WeeklyAvailability(gomock.Any(), date(2024, 3, 14)).
			Return(weeklyView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			testutil.URL("/availability", map[string]string{"date": "2024-03-14"}))

		var body resdto.WeeklyAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2024-03-11", body.WeekStart)
		s.Equal("2024-03-17", body.WeekEnd)
		s.Require().Len(body.Items, 2)
		s.Equal("A", body.Items[0].DesignCode)
		s.True(body.Items[0].SoldOut)
		s.Equal(33, body.Items[1].UtilizationRate)
	})

	s.Run("success: missing date defaults to today", func() {
		s.mockQueries.EXPECT().WeeklyAvailability(gomock.Any(), date(2024, 3, 13)).
			Return(weeklyView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: blank date defaults to today", func() {
		s.mockQueries.EXPECT().WeeklyAvailability(gomock.Any(), date(2024, 3, 13)).
			Return(weeklyView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=%20")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: snake_case payload", func() {
		s.mockQueries.EXPECT().WeeklyAvailability(gomock.Any(), gomock.Any()).
			Return(weeklyView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability")

		s.Contains(rec.Body.String(), `"remaining_quantity":0`)
		s.Contains(rec.Body.String(), `"sold_out":true`)
	})

	s.Run("success: empty week serializes items as []", func() {
		s.mockQueries.EXPECT().WeeklyAvailability(gomock.Any(), gomock.Any()).
			Return(&queries.WeeklyAvailabilityView{WeekStart: "2024-03-11", WeekEnd: "2024-03-17"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
	})

	for _, raw := range []string{"2024-13-01", "2024/03/13", "yesterday", "2024-02-30"} {
		s.Run("error: 400 on malformed date "+raw, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
				testutil.URL("/availability", map[string]string{"date": raw}))

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
		})
	}

	s.Run("error: 500 when the query fails", func() {
		s.mockQueries.EXPECT().WeeklyAvailability(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(assert.AnError, errs.ErrAvailabilityQueryFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestSoldOut
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestSoldOut() {
	s.Run("success", func() {
		view := weeklyView()
		view.Items = view.Items[:1]
		s.mockQueries.EXPECT().SoldOut(gomock.Any(), date(2024, 3, 11)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/sold-out?date=2024-03-11")

		var body resdto.WeeklyAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(0, body.Items[0].RemainingQuantity)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/sold-out?date=03-11-2024")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 500 when the query fails", func() {
		s.mockQueries.EXPECT().SoldOut(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/sold-out")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestCandidates
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCandidates() {
	s.Run("success: target date is passed through", func() {
		want := date(2024, 3, 20)
		s.mockQueries.EXPECT().BookableCandidates(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, target *time.Time) (*queries.CandidateView, error) {
				s.Require().NotNil(target)
				s.Equal(want, *target)
				return &queries.CandidateView{
					WeekStart: "2024-03-18",
					WeekEnd:   "2024-03-24",
					Items:     []*queries.AvailabilityItemView{{DesignCode: "B", Size: "M", TotalQuantity: 3, RemainingQuantity: 3}},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/candidates?date=2024-03-20")

		var body resdto.CandidatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2024-03-18", body.WeekStart)
		s.Require().Len(body.Items, 1)
		s.Equal("B", body.Items[0].DesignCode)
	})

	s.Run("success: missing date yields an empty list, not today", func() {
		s.mockQueries.EXPECT().BookableCandidates(gomock.Any(), gomock.Nil()).
			Return(&queries.CandidateView{Items: []*queries.AvailabilityItemView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/candidates")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/candidates?date=2024-3-20x")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 500 when the query fails", func() {
		s.mockQueries.EXPECT().BookableCandidates(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/candidates?date=2024-03-20")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
