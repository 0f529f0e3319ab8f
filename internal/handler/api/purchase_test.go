//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"tickethub/internal/gateway"
	"tickethub/internal/handler/api"
	reqdto "tickethub/internal/handler/dto/request"
	"tickethub/internal/usecase/commands"
	"tickethub/tests/common/httptest"
	"tickethub/tests/common/testutil"
	commandsmock "tickethub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseUsecase
	handler      *api.PurchaseHandler
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseUsecase(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("buyer_id", uuid.New())
		c.Next()
	}

	s.router.POST("/purchases", authMiddleware, s.handler.CreatePurchase)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func purchaseRequestDTO() reqdto.CreatePurchaseRequest {
	return reqdto.CreatePurchaseRequest{
		EventID:   uuid.New(),
		Reference: "ORD-20260901-0001",
		Attendees: []reqdto.PurchaseAttendee{
			{
				FullName:   "Alice Example",
				Email:      "alice@example.com",
				NationalID: "ID100200300",
				Phone:      "+8562055512345",
			},
		},
	}
}

func (s *PurchaseHandlerTestSuite) TestCreatePurchase() {
	url := "/purchases"

	result := &commands.PurchaseResult{
		ReservationID: uuid.New(),
		Reference:     "ORD-20260901-0001",
		Status:        "pending",
		Quantity:      1,
		TotalAmount:   decimal.NewFromInt(150000),
		Currency:      "LAK",
		Payment: &gateway.PaymentArtifact{
			Handle:    "txn-1234",
			QRCode:    "0002010102...6304ABCD",
			ExpiresAt: time.Now().Add(15 * time.Minute),
		},
	}

	s.Run("success: returns 201 Created with the payment artifact", func() {
		s.mockCommands.EXPECT().BeginPurchase(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, purchaseRequestDTO(), "bearer-token")

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "txn-1234")
		s.Contains(rec.Body.String(), "ORD-20260901-0001")
	})

	s.Run("missing token: returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, purchaseRequestDTO(), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("binding failures: returns 400 before the usecase runs", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing event_id", mutate: testutil.Field("event_id", nil)},
			{name: "missing reference", mutate: testutil.Field("reference", nil)},
			{name: "missing attendees", mutate: testutil.Field("attendees", nil)},
			{name: "empty attendees", mutate: testutil.Field("attendees", []any{})},
			{name: "event_id not a uuid", mutate: testutil.Field("event_id", "not-a-uuid")},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				body := testutil.DtoMap(s.T(), purchaseRequestDTO(), c.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("usecase errors map onto status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "event not found", err: commands.ErrEventNotFound, expectCode: http.StatusNotFound},
			{name: "validation failed", err: commands.ErrValidationFailed, expectCode: http.StatusUnprocessableEntity},
			{name: "sold out", err: commands.ErrSoldOut, expectCode: http.StatusConflict},
			{name: "duplicate reference", err: commands.ErrDuplicateRequest, expectCode: http.StatusConflict},
			{name: "gateway unavailable", err: gateway.ErrGatewayUnavailable, expectCode: http.StatusServiceUnavailable},
			{name: "unexpected error", err: commands.ErrReservationInvalid, expectCode: http.StatusInternalServerError},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().BeginPurchase(gomock.Any(), gomock.Any()).
					Return(nil, c.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, purchaseRequestDTO(), "bearer-token")
				s.Equal(c.expectCode, rec.Code)
			})
		}
	})

	s.Run("reference is trimmed before reaching the usecase", func() {
		s.mockCommands.EXPECT().BeginPurchase(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input commands.PurchaseInput) (*commands.PurchaseResult, error) {
				s.Equal("ORD-20260901-0001", input.Reference)
				s.False(strings.ContainsAny(input.Reference, " "))
				return result, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), purchaseRequestDTO(), testutil.Field("reference", "  ORD-20260901-0001  "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)
	})
}
