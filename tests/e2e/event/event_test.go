//go:build e2e

package event_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"tickethub/internal/handler/dto/response"
	"tickethub/tests/common/dbtest"
	"tickethub/tests/common/httptest"
	"tickethub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	eventsURL   = "/api/events/%s"
	callbackURL = "/api/payments/callback"
)

type EventSuite struct {
	e2e.SharedSuite
}

func (s *EventSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestEventSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(EventSuite))
}

func (s *EventSuite) TestGetEvent() {
	s.Run("an event is served with its live availability", func() {
		row := dbtest.NewEventRow()
		row.AvailableSeats = 73
		eventID, err := dbtest.SeedEvent(s.DB, row)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf(eventsURL, eventID), nil, "")
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var resp response.EventResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(eventID, resp.ID)
		s.Equal("Moonlight Concert", resp.Name)
		s.Equal(100, resp.TotalSeats)
		s.Equal(73, resp.AvailableSeats)
		s.Equal("LAK", resp.Currency)
	})

	s.Run("an unknown event returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf(eventsURL, uuid.New()), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("a malformed event id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf(eventsURL, "not-a-uuid"), nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *EventSuite) TestCallbackHardening() {
	s.Run("a callback with a forged signature is rejected", func() {
		payload := []byte(`{
			"transaction_uuid": "txn-forged",
			"reference_label":  "ORD-20260901-0001",
			"status":           "APPROVED",
			"amount":           "300000.00",
			"currency":         "LAK",
			"timestamp":        1756720800,
			"signature":        "deadbeef"
		}`)

		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, callbackURL, payload)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("a verified callback for an unknown handle is absorbed and flagged", func() {
		body := s.Gateway.SignedCallback("txn-never-issued", "ORD-20260901-0001",
			"APPROVED", "300000.00", "LAK")

		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, callbackURL, body)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		metrics := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/metrics", nil, "")
		s.Contains(metrics.Body.String(), `tickethub_callback_anomalies_total{kind="unknown_handle"}`)
	})
}

func (s *EventSuite) TestOperationalEndpoints() {
	s.Run("health reports ok", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "ok")
	})

	s.Run("metrics exposes the purchase counters", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/metrics", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "go_goroutines")
	})
}
