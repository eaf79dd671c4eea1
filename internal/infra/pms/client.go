package pms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"staycove/internal/domain/availability"
	"staycove/internal/domain/pricing"
	"staycove/internal/domain/property"
	"staycove/internal/domain/shared/daterange"
	"staycove/internal/domain/shared/money"
)

const dateLayout = "2006-01-02"

// Client fetches per-day availability from the Property Management System.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Logger     *slog.Logger
}

type pmsDay struct {
	Date        string   `json:"date"`
	IsAvailable bool     `json:"isAvailable"`
	Rate        *float64 `json:"rate"`
	MinimumStay int      `json:"minimumStay"`
}

// Days queries the PMS availability endpoint for [from, to).
func (c *Client) Days(ctx context.Context, id property.ID, from, to time.Time) ([]availability.Day, error) {
	if c == nil || c.HTTPClient == nil {
		return nil, errors.New("pms: http client not configured")
	}
	if c.BaseURL == "" {
		return nil, errors.New("pms: base url not configured")
	}

	endpoint := fmt.Sprintf("%s/properties/%s/availability?%s",
		strings.TrimRight(c.BaseURL, "/"),
		url.PathEscape(string(id)),
		url.Values{
			"startDate": []string{from.Format(dateLayout)},
			"endDate":   []string{to.Format(dateLayout)},
		}.Encode(),
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		c.logError("pms availability request failed", id, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("pms returned status %d: %s", resp.StatusCode, string(snippet))
		c.logError("pms availability returned error", id, err)
		return nil, err
	}

	var raw []pmsDay
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.logError("pms availability decode failed", id, err)
		return nil, err
	}

	days := make([]availability.Day, 0, len(raw))
	for _, entry := range raw {
		date, err := time.Parse(dateLayout, entry.Date)
		if err != nil {
			return nil, fmt.Errorf("pms: invalid date %q: %w", entry.Date, err)
		}
		day := availability.Day{
			Date:        daterange.Day(date),
			Available:   entry.IsAvailable,
			MinimumStay: entry.MinimumStay,
		}
		if entry.Rate != nil {
			rate := *entry.Rate
			if math.IsNaN(rate) || rate < 0 {
				return nil, fmt.Errorf("%w: rate %v on %s", pricing.ErrInvalidAmount, rate, entry.Date)
			}
			m := money.Dollars(int64(math.Round(rate)))
			day.Rate = &m
		}
		days = append(days, day)
	}
	return days, nil
}

func (c *Client) logError(msg string, id property.ID, err error) {
	if c.Logger == nil {
		return
	}
	c.Logger.Error(msg, "property_id", id, "error", err)
}

var _ availability.Source = (*Client)(nil)
