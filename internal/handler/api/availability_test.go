//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/httptest"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockSummaries *queriesmock.MockSummaryQueries
	mockSlots     *queriesmock.MockSlotQueries
	mockBookings  *queriesmock.MockBookingQueries
	mockCommands  *commandsmock.MockSummaryCommands
	ownerID       uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSummaries = queriesmock.NewMockSummaryQueries(s.mockCtrl)
	s.mockSlots = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockSummaryCommands(s.mockCtrl)
	s.ownerID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.ownerID)
		c.Set("user_role", booking.ActorOwner)
		c.Next()
	}

	availability := api.NewAvailabilityHandler(s.mockSummaries, s.mockSlots, s.mockCommands)
	bookings := api.NewBookingHandler(s.mockBookings)
	s.router.GET("/api/owners/:id/summaries", authMiddleware, availability.ListDaySummaries)
	s.router.GET("/api/owners/:id/summaries/:date", authMiddleware, availability.GetDaySummary)
	s.router.GET("/api/owners/:id/slots", authMiddleware, availability.ListSlots)
	s.router.POST("/api/owners/:id/summaries/rebuild", authMiddleware, availability.Rebuild)
	s.router.GET("/api/bookings/:id", authMiddleware, bookings.Get)
	s.router.GET("/api/sessions/:id/bookings", authMiddleware, bookings.ListBySession)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetDaySummary() {
	day := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)

	s.Run("success: flags read from the cache", func() {
		s.mockSummaries.EXPECT().GetDaySummary(gomock.Any(), s.ownerID, day).Return(&queries.DaySummaryView{
			OwnerID:           s.ownerID,
			Date:              day,
			HasBookableWindow: true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/owners/"+s.ownerID.String()+"/summaries/2030-06-02", nil, "")

		var body resdto.DaySummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := resdto.DaySummaryResponse{OwnerID: s.ownerID, Day: "2030-06-02", HasBookableWindow: true}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/owners/"+s.ownerID.String()+"/summaries/06-02-2030", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

func (s *AvailabilityHandlerTestSuite) TestListDaySummaries() {
	base := "/api/owners/" + s.ownerID.String() + "/summaries"

	s.Run("success", func() {
		from := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)
		s.mockSummaries.EXPECT().ListDaySummaries(gomock.Any(), s.ownerID, from, to).Return([]*queries.DaySummaryView{
			{OwnerID: s.ownerID, Date: from},
			{OwnerID: s.ownerID, Date: to, HasBookedActivity: true},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2030-06-01&to=2030-06-02", nil, "")

		var body []resdto.DaySummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("2030-06-01", body[0].Day)
		s.True(body[1].HasBookedActivity)
	})

	s.Run("error: 400 when the range is rejected", func() {
		s.mockSummaries.EXPECT().ListDaySummaries(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidDateRange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2030-06-02&to=2030-06-01", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("error: 400 without bounds", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}

func (s *AvailabilityHandlerTestSuite) TestListSlots() {
	start := time.Date(2030, 6, 2, 1, 0, 0, 0, time.UTC)
	s.mockSlots.EXPECT().ListSlots(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).Return([]*queries.SlotView{
		{ID: uuid.New(), OwnerID: s.ownerID, StartTime: start, EndTime: start.Add(30 * time.Minute), IsAvailable: true},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		"/api/owners/"+s.ownerID.String()+"/slots?from=2030-06-02&to=2030-06-02", nil, "")

	var body []resdto.SlotResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.True(body[0].IsAvailable)
	s.True(start.Equal(body[0].StartTime))
}

func (s *AvailabilityHandlerTestSuite) TestRebuild() {
	s.Run("success: own summaries", func() {
		s.mockCommands.EXPECT().Rebuild(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).Return(7, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/owners/"+s.ownerID.String()+"/summaries/rebuild?from=2030-06-01&to=2030-06-07", nil, "")

		var body resdto.RebuildResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(7, body.Days)
	})

	s.Run("error: 403 for another owner", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/owners/"+uuid.NewString()+"/summaries/rebuild?from=2030-06-01&to=2030-06-07", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AvailabilityHandlerTestSuite) TestBookings() {
	s.Run("success: booking by id", func() {
		id := uuid.New()
		s.mockBookings.EXPECT().GetBooking(gomock.Any(), id).Return(&queries.BookingView{
			ID:       id,
			Status:   "pending",
			Metadata: []byte(`{"room":"A"}`),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("pending", body["status"])
		s.Equal(map[string]any{"room": "A"}, body["metadata"])
	})

	s.Run("error: 404 for a cancelled session", func() {
		id := uuid.New()
		s.mockBookings.EXPECT().ListSessionBookings(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sessions/"+id.String()+"/bookings", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
