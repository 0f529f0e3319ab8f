//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/domain/ticket"
	"tickethub/internal/gateway"
	"tickethub/internal/infra"
	"tickethub/internal/monitoring"
	"tickethub/internal/pkg/clock"
	"tickethub/internal/usecase/commands"
	"tickethub/internal/usecase/shared"
	"tickethub/tests/common/builder"
	gatewaymock "tickethub/tests/mock/gateway"
	sharedmock "tickethub/tests/mock/shared"

	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CallbackUsecaseTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	inventory     *sharedmock.MockInventoryRepository
	reservations  *sharedmock.MockReservationRepository
	tickets       *sharedmock.MockTicketRepository
	notifications *sharedmock.MockNotificationRepository
	gw            *gatewaymock.MockPaymentGateway
	redisMock     redismock.ClientMock
	metrics       *monitoring.Metrics
	usecase       commands.CallbackUsecase
}

func (s *CallbackUsecaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.inventory = sharedmock.NewMockInventoryRepository(s.mockCtrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.mockCtrl)
	s.tickets = sharedmock.NewMockTicketRepository(s.mockCtrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.mockCtrl)
	s.gw = gatewaymock.NewMockPaymentGateway(s.mockCtrl)
	s.metrics = monitoring.NewMetrics(prometheus.NewRegistry())

	rdb, redisMock := redismock.NewClientMock()
	s.redisMock = redisMock
	sessions := gateway.NewSessionStore(rdb, 15*time.Minute)

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Inventory().Return(s.inventory).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Tickets().Return(s.tickets).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	issuer := commands.NewTicketIssuer(
		ticket.NewCodeGenerator(),
		clock.NewMockClock(time.Date(2026, 9, 1, 10, 5, 0, 0, time.UTC)),
	)
	s.usecase = commands.NewCallbackUsecase(s.uow, s.gw, issuer, sessions, s.metrics)
}

func (s *CallbackUsecaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCallbackUsecaseSuite(t *testing.T) {
	suite.Run(t, new(CallbackUsecaseTestSuite))
}

func confirmation(snap *shared.ReservationSnapshot, outcome gateway.Outcome) *gateway.CanonicalConfirmation {
	return &gateway.CanonicalConfirmation{
		Handle:      snap.GatewayHandle,
		Outcome:     outcome,
		Amount:      snap.TotalAmount,
		Currency:    snap.Currency,
		ProviderRef: snap.Reference,
		Timestamp:   time.Date(2026, 9, 1, 10, 5, 0, 0, time.UTC),
	}
}

func (s *CallbackUsecaseTestSuite) expectParse(conf *gateway.CanonicalConfirmation) {
	s.gw.EXPECT().ParseCallback(gomock.Any()).Return(conf, nil)
}

func (s *CallbackUsecaseTestSuite) anomalies(kind string) float64 {
	return promtestutil.ToFloat64(s.metrics.CallbackAnomaliesTotal.WithLabelValues(kind))
}

func (s *CallbackUsecaseTestSuite) TestHandleCallback() {
	s.Run("approved callback confirms and issues one ticket per attendee", func() {
		resBuilder := builder.NewReservationSnapshotBuilder()
		snap := resBuilder.Build()
		attendees := resBuilder.Attendees()

		s.expectParse(confirmation(snap, gateway.OutcomeApproved))
		s.reads.EXPECT().ReservationByGatewayHandle(gomock.Any(), snap.GatewayHandle).Return(snap, nil)
		s.reservations.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(),
			snap.Reference, reservation.StatusPending, reservation.StatusConfirmed).Return(nil)
		s.inventory.EXPECT().CommitHold(gomock.Any(), gomock.Any(), snap.HoldID).Return(true, nil)
		s.reads.EXPECT().AttendeesByReservation(gomock.Any(), snap.ID).Return(attendees, nil)
		s.tickets.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, tickets []*ticket.Ticket) error {
				s.Len(tickets, len(attendees))
				for _, tk := range tickets {
					s.Equal(snap.ID, tk.ReservationID())
					s.Equal(snap.GatewayHandle, tk.GatewayHandle())
					s.Equal(ticket.StatusActive, tk.Status())
					s.True(tk.AmountPaid().Amount().Equal(decimal.NewFromInt(150000)))
				}
				return nil
			})
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(),
			"tickets_issued", "buyer-"+snap.BuyerID.String(), gomock.Any(), gomock.Any()).Return(nil)
		s.redisMock.ExpectDel("payment:session:" + snap.Reference).SetVal(1)

		err := s.usecase.HandleCallback(context.Background(), []byte(`{}`))
		s.Require().NoError(err)
		s.InDelta(2, promtestutil.ToFloat64(s.metrics.TicketsIssuedTotal), 0)
	})

	s.Run("rejected callback fails the reservation and releases seats", func() {
		snap := builder.NewReservationSnapshotBuilder().Build()

		s.expectParse(confirmation(snap, gateway.OutcomeRejected))
		s.reads.EXPECT().ReservationByGatewayHandle(gomock.Any(), snap.GatewayHandle).Return(snap, nil)
		s.reservations.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(),
			snap.Reference, reservation.StatusPending, reservation.StatusFailed).Return(nil)
		s.inventory.EXPECT().ReleaseHold(gomock.Any(), gomock.Any(), snap.HoldID).Return(true, nil)
		s.redisMock.ExpectDel("payment:session:" + snap.Reference).SetVal(1)

		err := s.usecase.HandleCallback(context.Background(), []byte(`{}`))
		s.Require().NoError(err)
	})

	s.Run("pending outcome is informational only", func() {
		snap := builder.NewReservationSnapshotBuilder().Build()
		s.expectParse(confirmation(snap, gateway.OutcomePending))

		err := s.usecase.HandleCallback(context.Background(), []byte(`{}`))
		s.Require().NoError(err)
	})

	s.Run("unknown handle is recorded, not an error", func() {
		snap := builder.NewReservationSnapshotBuilder().Build()

		s.expectParse(confirmation(snap, gateway.OutcomeApproved))
		s.reads.EXPECT().ReservationByGatewayHandle(gomock.Any(), snap.GatewayHandle).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "no reservation for handle", nil))

		err := s.usecase.HandleCallback(context.Background(), []byte(`{}`))
		s.Require().NoError(err)
		s.InDelta(1, s.anomalies(monitoring.AnomalyUnknownHandle), 0)
	})

	s.Run("replayed approval after confirmation is a no-op", func() {
		snap := builder.NewReservationSnapshotBuilder().Build()
		resolved := builder.NewReservationSnapshotBuilder().With(func(b *builder.ReservationSnapshotBuilder) {
			b.Reference = snap.Reference
			b.Status = "confirmed"
		}).Build()

		s.expectParse(confirmation(snap, gateway.OutcomeApproved))
		s.reads.EXPECT().ReservationByGatewayHandle(gomock.Any(), snap.GatewayHandle).Return(snap, nil)
		s.reservations.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(),
			snap.Reference, reservation.StatusPending, reservation.StatusConfirmed).
			Return(infra.WrapRepoErr(infra.KindStaleTransition, "already resolved", nil))
		s.reads.EXPECT().ReservationByReference(gomock.Any(), snap.Reference).Return(resolved, nil)
		s.redisMock.ExpectDel("payment:session:" + snap.Reference).SetVal(0)

		err := s.usecase.HandleCallback(context.Background(), []byte(`{}`))
		s.Require().NoError(err)
		s.InDelta(0, s.anomalies(monitoring.AnomalyConflictingOutcome), 0)
	})

	s.Run("approval after a rejection is a conflicting outcome", func() {
		snap := builder.NewReservationSnapshotBuilder().Build()
		resolved := builder.NewReservationSnapshotBuilder().With(func(b *builder.ReservationSnapshotBuilder) {
			b.Reference = snap.Reference
			b.Status = "failed"
		}).Build()

		s.expectParse(confirmation(snap, gateway.OutcomeApproved))
		s.reads.EXPECT().ReservationByGatewayHandle(gomock.Any(), snap.GatewayHandle).Return(snap, nil)
		s.reservations.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(),
			snap.Reference, reservation.StatusPending, reservation.StatusConfirmed).
			Return(infra.WrapRepoErr(infra.KindStaleTransition, "already resolved", nil))
		s.reads.EXPECT().ReservationByReference(gomock.Any(), snap.Reference).Return(resolved, nil)
		s.redisMock.ExpectDel("payment:session:" + snap.Reference).SetVal(0)

		err := s.usecase.HandleCallback(context.Background(), []byte(`{}`))
		s.Require().NoError(err)
		s.InDelta(1, s.anomalies(monitoring.AnomalyConflictingOutcome), 0)
	})

	s.Run("amount mismatch is recorded but the outcome still applies", func() {
		resBuilder := builder.NewReservationSnapshotBuilder()
		snap := resBuilder.Build()
		attendees := resBuilder.Attendees()

		conf := confirmation(snap, gateway.OutcomeApproved)
		conf.Amount = decimal.NewFromInt(1)

		s.expectParse(conf)
		s.reads.EXPECT().ReservationByGatewayHandle(gomock.Any(), snap.GatewayHandle).Return(snap, nil)
		s.reservations.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(),
			snap.Reference, reservation.StatusPending, reservation.StatusConfirmed).Return(nil)
		s.inventory.EXPECT().CommitHold(gomock.Any(), gomock.Any(), snap.HoldID).Return(true, nil)
		s.reads.EXPECT().AttendeesByReservation(gomock.Any(), snap.ID).Return(attendees, nil)
		s.tickets.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.redisMock.ExpectDel("payment:session:" + snap.Reference).SetVal(1)

		err := s.usecase.HandleCallback(context.Background(), []byte(`{}`))
		s.Require().NoError(err)
		s.InDelta(1, s.anomalies(monitoring.AnomalyAmountMismatch), 0)
	})

	s.Run("invalid callback propagates", func() {
		s.gw.EXPECT().ParseCallback(gomock.Any()).Return(nil, gateway.ErrInvalidCallback)

		err := s.usecase.HandleCallback(context.Background(), []byte(`garbage`))
		s.Require().ErrorIs(err, gateway.ErrInvalidCallback)
	})
}
