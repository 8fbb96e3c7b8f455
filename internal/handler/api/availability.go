package api

import (
	"net/http"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler serves calendar reads from the summary cache and the slot picker.
type AvailabilityHandler struct {
	summaries queries.SummaryQueries
	slots     queries.SlotQueries
	cmds      commands.SummaryCommands
}

func NewAvailabilityHandler(summaries queries.SummaryQueries, slots queries.SlotQueries, cmds commands.SummaryCommands) *AvailabilityHandler {
	return &AvailabilityHandler{summaries: summaries, slots: slots, cmds: cmds}
}

// @Summary Get day summary
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DaySummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/owners/{id}/summaries/{date} [get]
func (h *AvailabilityHandler) GetDaySummary(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid owner id", nil)
		return
	}
	date, err := reqdto.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	view, err := h.summaries.GetDaySummary(c.Request.Context(), ownerID, date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDaySummaryView(view))
}

// @Summary List day summaries
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date, inclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.DaySummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/owners/{id}/summaries [get]
func (h *AvailabilityHandler) ListDaySummaries(c *gin.Context) {
	ownerID, from, to, ok := bindOwnerRange(c)
	if !ok {
		return
	}
	views, err := h.summaries.ListDaySummaries(c.Request.Context(), ownerID, from, to)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDaySummaryViews(views))
}

// @Summary List slots
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date, inclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/owners/{id}/slots [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	ownerID, from, to, ok := bindOwnerRange(c)
	if !ok {
		return
	}
	views, err := h.slots.ListSlots(c.Request.Context(), ownerID, from, to)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Rebuild day summaries
// @Description Recompute the cached summaries of the owner for every date in the range
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} resdto.RebuildResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/owners/{id}/summaries/rebuild [post]
func (h *AvailabilityHandler) Rebuild(c *gin.Context) {
	ownerID, from, to, ok := bindOwnerRange(c)
	if !ok {
		return
	}
	if userID, _ := middleware.GetUserID(c); userID != ownerID {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("rebuild of another owner"), "Insufficient permissions", nil)
		return
	}
	days, err := h.cmds.Rebuild(c.Request.Context(), ownerID, from, to)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RebuildResponse{Days: days})
}

func bindOwnerRange(c *gin.Context) (uuid.UUID, time.Time, time.Time, bool) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid owner id", nil)
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	from, to, err := q.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	return ownerID, from, to, true
}
