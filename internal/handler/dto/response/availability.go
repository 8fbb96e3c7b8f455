package response

import (
	"encoding/json"
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DaySummaryResponse struct {
	OwnerID           uuid.UUID  `json:"ownerId"`
	Day               string     `json:"date"`
	HasBookableWindow bool       `json:"hasBookableWindow"`
	HasBookedActivity bool       `json:"hasBookedActivity"`
	ComputedAt        *time.Time `json:"computedAt,omitempty"`
}

func FromDaySummaryView(v *queries.DaySummaryView) *DaySummaryResponse {
	res := &DaySummaryResponse{}
	_ = copier.Copy(res, v)
	res.Day = v.Date.Format(time.DateOnly)
	return res
}

func FromDaySummaryViews(vs []*queries.DaySummaryView) []*DaySummaryResponse {
	out := make([]*DaySummaryResponse, len(vs))
	for i, v := range vs {
		out[i] = FromDaySummaryView(v)
	}
	return out
}

type SlotResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
}

func FromSlotViews(vs []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, 0, len(vs))
	_ = copier.Copy(&out, vs)
	return out
}

type BookingResponse struct {
	ID        uuid.UUID       `json:"id"`
	SessionID uuid.UUID       `json:"sessionId"`
	OwnerID   uuid.UUID       `json:"ownerId"`
	ClientID  uuid.UUID       `json:"clientId"`
	SlotID    uuid.UUID       `json:"slotId"`
	Subject   string          `json:"subject"`
	Metadata  json.RawMessage `json:"metadata" swaggertype:"object"`
	Status    string          `json:"status"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	CreatedAt time.Time       `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}
