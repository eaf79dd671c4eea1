package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"staycove/internal/app/dto"
	availabilityapp "staycove/internal/app/handlers/availability"
	"staycove/internal/app/queries"
	domainrange "staycove/internal/domain/shared/daterange"
)

// AvailabilityHandler exposes the raw calendar view.
type AvailabilityHandler struct {
	Queries queries.Bus
}

// Calendar responds with per-day availability over a window; defaults to
// the next 45 days when the window is absent or inverted.
func (h AvailabilityHandler) Calendar(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "availability handler unavailable"})
		return
	}
	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property id is required"})
		return
	}

	from, okFrom := parseDate(c.Query("from"))
	to, okTo := parseDate(c.Query("to"))
	if !okFrom {
		from = domainrange.Day(timeNow())
	}
	if !okTo || !to.After(from) {
		to = from.AddDate(0, 0, 45)
	}

	query := availabilityapp.GetCalendarQuery{
		PropertyID: propertyID,
		From:       from,
		To:         to,
	}
	result, err := queries.Ask[availabilityapp.GetCalendarQuery, dto.Calendar](c.Request.Context(), h.Queries, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load calendar"})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ AvailabilityHTTP = AvailabilityHandler{}

// timeNow is swapped in tests.
var timeNow = time.Now
