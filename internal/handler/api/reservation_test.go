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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQuery
	handler     *api.ReservationHandler
	buyerID     uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.buyerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQuery(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("buyer_id", s.buyerID)
		c.Next()
	}

	s.router.GET("/reservations/:reference", authMiddleware, s.handler.GetReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) detail(status string) *queries.ReservationDetail {
	return &queries.ReservationDetail{
		Reservation: queries.ReservationView{
			ID:          uuid.New(),
			Reference:   "ORD-20260901-0001",
			EventID:     uuid.New(),
			EventName:   "Moonlight Concert",
			BuyerID:     s.buyerID,
			Quantity:    2,
			TotalAmount: decimal.NewFromInt(300000),
			Currency:    "LAK",
			Status:      status,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	url := "/reservations/ORD-20260901-0001"

	s.Run("pending reservation re-serves the payment session", func() {
		detail := s.detail("pending")
		detail.Payment = &queries.PaymentSessionView{
			QRCode:    "0002010102...6304ABCD",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}

		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "ORD-20260901-0001", s.buyerID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "pending")
		s.Contains(rec.Body.String(), "0002010102")
	})

	s.Run("confirmed reservation carries its tickets", func() {
		detail := s.detail("confirmed")
		detail.Tickets = []queries.TicketView{
			{
				ID:            uuid.New(),
				Code:          "TKT-3vQB7B6MsdQm",
				ReservationID: detail.Reservation.ID,
				EventID:       detail.Reservation.EventID,
				AttendeeName:  "Alice Example",
				Status:        "active",
				AmountPaid:    decimal.NewFromInt(150000),
				Currency:      "LAK",
				IssuedAt:      time.Now(),
			},
		}

		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "ORD-20260901-0001", s.buyerID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "TKT-3vQB7B6MsdQm")
	})

	s.Run("unknown reference returns 404", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "ORD-20260901-0001", s.buyerID).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
