package ginserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	"staycove/internal/app/dto"
	pricingapp "staycove/internal/app/handlers/pricing"
	"staycove/internal/app/queries"
	domainpricing "staycove/internal/domain/pricing"
	domainrange "staycove/internal/domain/shared/daterange"
)

// QuoteHandler wires the quote query to HTTP.
type QuoteHandler struct {
	Queries queries.Bus
}

// Quote responds with a full price breakdown for a stay window.
func (h QuoteHandler) Quote(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "quote handler unavailable"})
		return
	}
	propertyID := c.Param("id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property id is required"})
		return
	}

	checkIn, okIn := parseDate(c.Query("check_in"))
	checkOut, okOut := parseDate(c.Query("check_out"))
	if !okIn || !okOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in and check_out must be YYYY-MM-DD dates"})
		return
	}

	// guests is the consumer apps' coarse count; adults/children win when sent.
	adults := parseIntWithDefault(c.Query("adults"), parseIntWithDefault(c.Query("guests"), 1))

	query := pricingapp.GetQuoteQuery{
		PropertyID:      propertyID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          adults,
		Children:        parseInt(c.Query("children")),
		Pets:            parseInt(c.Query("pets")),
		PromoCode:       strings.TrimSpace(c.Query("promo_code")),
		PoolHeat:        parseBool(c.Query("pool_heat")),
		TravelInsurance: parseBool(c.Query("travel_insurance")),
	}

	result, err := queries.Ask[pricingapp.GetQuoteQuery, dto.Quote](c.Request.Context(), h.Queries, query)
	if err != nil {
		status, message := mapQuoteError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusOK, result)
}

func mapQuoteError(err error) (int, string) {
	switch {
	case errors.Is(err, domainrange.ErrInvalidDateRange):
		return http.StatusBadRequest, "check-out must be after check-in"
	case errors.Is(err, domainpricing.ErrIncompleteAvailability):
		return http.StatusUnprocessableEntity, "property is not bookable for these dates"
	default:
		return http.StatusInternalServerError, "unable to compute quote"
	}
}

var _ QuoteHTTP = QuoteHandler{}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseIntWithDefault(raw string, def int) int {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return parseInt(raw)
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "on":
		return true
	default:
		return false
	}
}
