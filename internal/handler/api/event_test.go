//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tickethub/internal/handler/api"
	"tickethub/internal/usecase/queries"
	"tickethub/tests/common/httptest"
	queriesmock "tickethub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockEventQuery
	handler     *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockEventQuery(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockQueries)

	s.router.GET("/events/:id", s.handler.GetEvent)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) TestGetEvent() {
	eventID := uuid.New()

	s.Run("success returns the event with availability", func() {
		view := &queries.EventView{
			ID:             eventID,
			Name:           "Moonlight Concert",
			Venue:          "National Stadium",
			StartsAt:       time.Now().Add(30 * 24 * time.Hour),
			TotalSeats:     100,
			AvailableSeats: 42,
			UnitPrice:      decimal.NewFromInt(150000),
			Currency:       "LAK",
		}

		s.mockQueries.EXPECT().GetEvent(gomock.Any(), eventID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+eventID.String(), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Moonlight Concert")
		s.Contains(rec.Body.String(), "42")
	})

	s.Run("unknown event returns 404", func() {
		s.mockQueries.EXPECT().GetEvent(gomock.Any(), eventID).
			Return(nil, queries.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+eventID.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
