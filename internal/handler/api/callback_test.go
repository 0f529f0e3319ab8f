//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tickethub/internal/gateway"
	"tickethub/internal/handler/api"
	"tickethub/tests/common/httptest"
	commandsmock "tickethub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CallbackHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCallbackUsecase
	handler      *api.CallbackHandler
}

func (s *CallbackHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCallbackUsecase(s.mockCtrl)
	s.handler = api.NewCallbackHandler(s.mockCommands)

	// The callback endpoint authenticates with the payload signature, so no
	// auth middleware here.
	s.router.POST("/payments/callback", s.handler.HandleCallback)
}

func (s *CallbackHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCallbackHandlerSuite(t *testing.T) {
	suite.Run(t, new(CallbackHandlerTestSuite))
}

func (s *CallbackHandlerTestSuite) TestHandleCallback() {
	url := "/payments/callback"
	payload := []byte(`{"transaction_uuid":"txn-1234","status":"APPROVED"}`)

	s.Run("accepted callback returns 200", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), payload).
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "ok")
	})

	s.Run("invalid signature returns 400", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).
			Return(gateway.ErrInvalidCallback).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"tampered":true}`))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("internal failure returns 500 so the provider redelivers", func() {
		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).
			Return(errors.New("db unavailable")).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})

	s.Run("oversized body is truncated, not fatal", func() {
		big := make([]byte, 80<<10)
		for i := range big {
			big[i] = 'a'
		}

		s.mockCommands.EXPECT().HandleCallback(gomock.Any(), gomock.Len(64<<10)).
			Return(gateway.ErrInvalidCallback).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, big)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
