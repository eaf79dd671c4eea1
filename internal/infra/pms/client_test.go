package pms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staycove/internal/domain/pricing"
)

func TestClientDays(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 3)

	t.Run("maps the PMS payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/properties/prop-1/availability" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("startDate"); got != "2025-07-01" {
				t.Errorf("unexpected startDate %s", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"date":"2025-07-01","isAvailable":true,"rate":200,"minimumStay":2},
				{"date":"2025-07-02","isAvailable":true,"rate":210,"minimumStay":2},
				{"date":"2025-07-03","isAvailable":false,"minimumStay":2}
			]`))
		}))
		defer server.Close()

		client := &Client{HTTPClient: server.Client(), BaseURL: server.URL}
		days, err := client.Days(context.Background(), "prop-1", from, to)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(days) != 3 {
			t.Fatalf("expected 3 days, got %d", len(days))
		}
		if !days[0].Available || !days[0].HasRate() || days[0].Rate.Amount != 200 {
			t.Fatalf("unexpected first day %+v", days[0])
		}
		if days[2].Available || days[2].HasRate() {
			t.Fatalf("unexpected third day %+v", days[2])
		}
		if days[1].MinimumStay != 2 {
			t.Fatalf("expected minimum stay 2, got %d", days[1].MinimumStay)
		}
	})

	t.Run("negative rate is an invalid amount", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"date":"2025-07-01","isAvailable":true,"rate":-5}]`))
		}))
		defer server.Close()

		client := &Client{HTTPClient: server.Client(), BaseURL: server.URL}
		_, err := client.Days(context.Background(), "prop-1", from, to)
		if !errors.Is(err, pricing.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("error status propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		defer server.Close()

		client := &Client{HTTPClient: server.Client(), BaseURL: server.URL}
		if _, err := client.Days(context.Background(), "prop-1", from, to); err == nil {
			t.Fatal("expected error")
		}
	})
}
