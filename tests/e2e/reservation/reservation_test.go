//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/tests/common/authtest"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/dbtest"
	"slotbook/tests/common/httptest"
	"slotbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	confirmURL      = "/api/reservations/confirm"
	cancelURL       = "/api/reservations/cancel"
	bookingURL      = "/api/bookings/%s"
	sessionURL      = "/api/sessions/%s/bookings"
)

var tokyo = mustLoad("Asia/Tokyo")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

type ReservationSuite struct {
	e2e.SharedSuite
	day      time.Time
	ownerID  uuid.UUID
	clientID uuid.UUID
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.day = time.Date(2031, 3, 10, 0, 0, 0, 0, tokyo)
	s.ownerID = uuid.New()
	s.clientID = uuid.New()
	s.Clock.Set(s.day.AddDate(0, 0, -1).Add(12 * time.Hour))
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) clientToken(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, s.clientID, booking.ActorClient)
}

func (s *ReservationSuite) reserve(t *testing.T, slotIDs ...uuid.UUID) resdto.ReserveResponse {
	t.Helper()
	body := builder.NewReserveRequestBuilder().WithOwner(s.ownerID).WithSlots(slotIDs...).BuildRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.clientToken(t))

	var res resdto.ReserveResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

// =============================================================================
// TestReserve
// =============================================================================

func (s *ReservationSuite) TestReserve() {
	s.Run("Normal case: contiguous slots become one pending session", func() {
		t := s.T()
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day.Add(10*time.Hour), 30*time.Minute, 2)

		res := s.reserve(t, slotIDs...)
		require.Len(t, res.BookingIDs, 2)

		for _, id := range slotIDs {
			assert.False(t, dbtest.IsSlotAvailable(t, s.DB, id))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sessionURL, res.SessionID), nil, s.clientToken(t))
		var got []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := []resdto.BookingResponse{
			{SessionID: res.SessionID, OwnerID: s.ownerID, ClientID: s.clientID, SlotID: slotIDs[0], Subject: "Trial lesson", Status: "pending",
				StartTime: s.day.Add(10 * time.Hour), EndTime: s.day.Add(10*time.Hour + 30*time.Minute)},
			{SessionID: res.SessionID, OwnerID: s.ownerID, ClientID: s.clientID, SlotID: slotIDs[1], Subject: "Trial lesson", Status: "pending",
				StartTime: s.day.Add(10*time.Hour + 30*time.Minute), EndTime: s.day.Add(11 * time.Hour)},
		}
		opts := cmpopts.IgnoreFields(resdto.BookingResponse{}, "ID", "Metadata", "CreatedAt")
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("session bookings mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Concurrency: overlapping requests book each slot exactly once", func() {
		t := s.T()
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day.Add(10*time.Hour), 30*time.Minute, 3)
		token := s.clientToken(t)

		requests := [][]uuid.UUID{
			{slotIDs[0], slotIDs[1]},
			{slotIDs[1], slotIDs[2]},
		}
		codes := make([]int, len(requests))
		var wg sync.WaitGroup
		for i, ids := range requests {
			wg.Add(1)
			go func() {
				defer wg.Done()
				body := builder.NewReserveRequestBuilder().WithOwner(s.ownerID).WithSlots(ids...).BuildRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)
		assert.Equal(t, 2, dbtest.CountBookingsForSlots(t, s.DB, slotIDs))
	})

	s.Run("Error case: a taken slot fails the whole request", func() {
		t := s.T()
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day.Add(10*time.Hour), 30*time.Minute, 2)
		s.reserve(t, slotIDs[1])

		req := builder.NewReserveRequestBuilder().WithOwner(s.ownerID).WithSlots(slotIDs...).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, s.clientToken(t))

		body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "One or more of your selected times were just taken. Please pick again.")
		assert.Equal(t, httperr.CodeSlotConflict, body.Error.Code)
		assert.True(t, dbtest.IsSlotAvailable(t, s.DB, slotIDs[0]))
		assert.Equal(t, 1, dbtest.CountBookingsForSlots(t, s.DB, slotIDs))
	})

	s.Run("Error case: policy failure leaves every slot available", func() {
		t := s.T()
		first := dbtest.CreateTestSlot(t, s.DB, s.ownerID, s.day.Add(10*time.Hour), s.day.Add(10*time.Hour+30*time.Minute))
		gap := dbtest.CreateTestSlot(t, s.DB, s.ownerID, s.day.Add(13*time.Hour), s.day.Add(13*time.Hour+30*time.Minute))

		body := builder.NewReserveRequestBuilder().WithOwner(s.ownerID).WithSlots(first, gap).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.clientToken(t))

		res := httptest.AssertErrorCode(t, w, http.StatusBadRequest, httperr.CodePolicyViolation)
		assert.Equal(t, "not_contiguous", res.Detail["reason"])
		assert.True(t, dbtest.IsSlotAvailable(t, s.DB, first))
		assert.True(t, dbtest.IsSlotAvailable(t, s.DB, gap))
		assert.Zero(t, dbtest.CountBookingsForSlots(t, s.DB, []uuid.UUID{first, gap}))
	})

	s.Run("Boundary: a start exactly at the minimum notice is accepted", func() {
		t := s.T()
		s.Clock.Set(s.day.Add(-20 * time.Minute))
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day, 30*time.Minute, 1)

		s.reserve(t, slotIDs...)
		assert.False(t, dbtest.IsSlotAvailable(t, s.DB, slotIDs[0]))
	})

	s.Run("Boundary: a start one minute inside the notice window is rejected", func() {
		t := s.T()
		s.Clock.Set(s.day.Add(-19 * time.Minute))
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day, 30*time.Minute, 1)

		body := builder.NewReserveRequestBuilder().WithOwner(s.ownerID).WithSlots(slotIDs...).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.clientToken(t))

		res := httptest.AssertErrorCode(t, w, http.StatusBadRequest, httperr.CodePolicyViolation)
		assert.Equal(t, "insufficient_notice", res.Detail["reason"])
		assert.True(t, dbtest.IsSlotAvailable(t, s.DB, slotIDs[0]))
	})

	s.Run("Error case: slots of another owner are rejected", func() {
		t := s.T()
		slotIDs := dbtest.CreateTestSlots(t, s.DB, uuid.New(), s.day.Add(10*time.Hour), 30*time.Minute, 1)

		body := builder.NewReserveRequestBuilder().WithOwner(s.ownerID).WithSlots(slotIDs...).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.clientToken(t))

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Selected slots must belong to a single owner")
	})

	s.Run("Error case: missing token", func() {
		t := s.T()
		body := builder.NewReserveRequestBuilder().BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// TestConfirm
// =============================================================================

func (s *ReservationSuite) TestConfirm() {
	s.Run("Normal case: the whole set is confirmed", func() {
		t := s.T()
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day.Add(10*time.Hour), 30*time.Minute, 2)
		res := s.reserve(t, slotIDs...)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			reqdto.ConfirmRequest{BookingIDs: res.BookingIDs}, s.clientToken(t))
		var confirmed resdto.ConfirmResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		assert.Equal(t, "confirmed", confirmed.Status)
		assert.ElementsMatch(t, res.BookingIDs, confirmed.BookingIDs)

		for _, id := range res.BookingIDs {
			assert.Equal(t, "confirmed", dbtest.BookingStatus(t, s.DB, id))
		}
	})

	s.Run("Error case: an unknown id confirms nothing", func() {
		t := s.T()
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day.Add(10*time.Hour), 30*time.Minute, 1)
		res := s.reserve(t, slotIDs...)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			reqdto.ConfirmRequest{BookingIDs: append(res.BookingIDs, uuid.New())}, s.clientToken(t))

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
		assert.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, res.BookingIDs[0]))
	})
}

// =============================================================================
// TestCancel
// =============================================================================

func (s *ReservationSuite) TestCancel() {
	s.Run("Normal case: cancel releases the slots", func() {
		t := s.T()
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day.Add(10*time.Hour), 30*time.Minute, 2)
		res := s.reserve(t, slotIDs...)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL,
			reqdto.CancelRequest{BookingIDs: res.BookingIDs, ActorRole: string(booking.ActorClient)}, s.clientToken(t))
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		for _, id := range slotIDs {
			assert.True(t, dbtest.IsSlotAvailable(t, s.DB, id))
		}
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, res.BookingIDs[0]), nil, s.clientToken(t))
		httptest.AssertErrorResponse(t, gw, http.StatusNotFound, "Booking not found")

		// the released slots can be booked again
		s.reserve(t, slotIDs...)
	})

	s.Run("Error case: a missing booking leaves the rest booked", func() {
		t := s.T()
		slotIDs := dbtest.CreateTestSlots(t, s.DB, s.ownerID, s.day.Add(10*time.Hour), 30*time.Minute, 1)
		res := s.reserve(t, slotIDs...)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL,
			reqdto.CancelRequest{BookingIDs: []uuid.UUID{res.BookingIDs[0], uuid.New()}, ActorRole: string(booking.ActorOwner)}, s.clientToken(t))

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
		assert.False(t, dbtest.IsSlotAvailable(t, s.DB, slotIDs[0]))
		assert.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, res.BookingIDs[0]))
	})

	s.Run("Error case: unknown actor role", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL,
			map[string]any{"bookingIds": []uuid.UUID{uuid.New()}, "actorRole": "admin"}, s.clientToken(t))

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}
