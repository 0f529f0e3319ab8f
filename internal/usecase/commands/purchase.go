package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tickethub/internal/domain/reservation"
	"tickethub/internal/gateway"
	"tickethub/internal/infra"
	"tickethub/internal/monitoring"
	"tickethub/internal/pkg/config"
	"tickethub/internal/pkg/errs"
	"tickethub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValidationFailed   = errs.New("purchase request failed validation")
	ErrEventNotFound      = errs.New("event not found")
	ErrSoldOut            = errs.New("not enough seats available")
	ErrDuplicateRequest   = errs.New("external reference already used")
	ErrReservationInvalid = errs.New("reservation could not be created")
)

type PurchaseInput struct {
	BuyerID   uuid.UUID
	EventID   uuid.UUID
	Reference string
	Attendees []reservation.AttendeeInput
}

type PurchaseResult struct {
	ReservationID uuid.UUID
	Reference     string
	Status        string
	Quantity      int
	TotalAmount   decimal.Decimal
	Currency      string
	Payment       *gateway.PaymentArtifact
}

type PurchaseUsecase interface {
	BeginPurchase(ctx context.Context, input PurchaseInput) (*PurchaseResult, error)
}

type purchaseInteractor struct {
	uow      shared.UnitOfWork
	factory  *reservation.Factory
	gw       gateway.PaymentGateway
	sessions *gateway.SessionStore
	metrics  *monitoring.Metrics
	cfg      config.ReservationConfig
}

func NewPurchaseUsecase(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	gw gateway.PaymentGateway,
	sessions *gateway.SessionStore,
	metrics *monitoring.Metrics,
	cfg config.ReservationConfig,
) PurchaseUsecase {
	return &purchaseInteractor{
		uow:      uow,
		factory:  factory,
		gw:       gw,
		sessions: sessions,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// BeginPurchase reserves seats, persists the pending reservation, and
// registers payment intent with the gateway. Seat decrement and reservation
// insert share one transaction: a duplicate external reference rolls both
// back, so retried requests never leak inventory.
func (p *purchaseInteractor) BeginPurchase(ctx context.Context, input PurchaseInput) (*PurchaseResult, error) {
	reference, err := reservation.NewReference(input.Reference)
	if err != nil {
		p.metrics.PurchasesTotal.WithLabelValues("validation_failed").Inc()
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	attendees, err := reservation.ValidateAttendees(input.Attendees)
	if err != nil {
		p.metrics.PurchasesTotal.WithLabelValues("validation_failed").Inc()
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	var created *reservation.Reservation
	var snapshot *shared.EventSnapshot

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Reads().EventByID(ctx, input.EventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return errs.Wrap(err, "failed to load event")
		}
		snapshot = ev

		holdID, err := tx.Inventory().ReserveSeats(ctx, tx.DB(), ev.ID, len(attendees))
		if err != nil {
			if infra.IsKind(err, infra.KindInsufficientSeats) {
				return errs.Mark(err, ErrSoldOut)
			}
			return errs.Wrap(err, "failed to reserve seats")
		}

		unitPrice, err := reservation.NewMoney(ev.UnitPrice, ev.Currency)
		if err != nil {
			return errs.Mark(err, ErrReservationInvalid)
		}

		res, err := p.factory.CreateReservation(
			reservation.EventSpec{ID: ev.ID, UnitPrice: unitPrice},
			input.BuyerID,
			reference,
			holdID,
			attendees,
		)
		if err != nil {
			return errs.Mark(err, ErrReservationInvalid)
		}

		if _, err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// Rollback also restores the seat decrement above.
				return errs.Mark(err, ErrDuplicateRequest)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return errs.Wrap(err, "failed to persist reservation")
		}

		created = res
		return nil
	})
	if err != nil {
		p.countFailure(err)
		return nil, err
	}

	artifact, err := p.registerPayment(ctx, created, snapshot)
	if err != nil {
		// The reservation stays pending; the expiry sweep reclaims its seats
		// if the buyer never retries.
		p.metrics.PurchasesTotal.WithLabelValues("gateway_unavailable").Inc()
		return nil, errs.Mark(err, gateway.ErrGatewayUnavailable)
	}

	p.metrics.PurchasesTotal.WithLabelValues("created").Inc()

	return &PurchaseResult{
		ReservationID: created.ID(),
		Reference:     created.Reference().String(),
		Status:        created.Status().String(),
		Quantity:      created.Quantity(),
		TotalAmount:   created.TotalAmount().Amount(),
		Currency:      created.TotalAmount().Currency(),
		Payment:       artifact,
	}, nil
}

// registerPayment calls the gateway outside any transaction, then records the
// returned handle with a second short write.
func (p *purchaseInteractor) registerPayment(
	ctx context.Context,
	res *reservation.Reservation,
	ev *shared.EventSnapshot,
) (*gateway.PaymentArtifact, error) {
	started := time.Now()
	artifact, err := p.gw.CreatePaymentRequest(ctx, gateway.PaymentRequest{
		Reference:     res.Reference().String(),
		Amount:        res.TotalAmount().Amount(),
		Currency:      res.TotalAmount().Currency(),
		Description:   ev.Name,
		ExpiryMinutes: int(p.cfg.PendingTTL.Minutes()),
	})
	p.metrics.GatewayRequestDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return nil, err
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().SetGatewayHandle(ctx, tx.DB(), res.Reference().String(), artifact.Handle)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to record gateway handle")
	}

	if err := p.sessions.Save(ctx, res.Reference().String(), artifact); err != nil {
		// Best effort: polling falls back to the reservation row.
		slog.Warn("failed to cache payment session",
			"reference", res.Reference().String(),
			"error", err.Error())
	}

	return artifact, nil
}

func (p *purchaseInteractor) countFailure(err error) {
	switch {
	case errors.Is(err, ErrSoldOut):
		p.metrics.PurchasesTotal.WithLabelValues("sold_out").Inc()
	case errors.Is(err, ErrDuplicateRequest):
		p.metrics.PurchasesTotal.WithLabelValues("duplicate").Inc()
	case errors.Is(err, ErrEventNotFound):
		p.metrics.PurchasesTotal.WithLabelValues("event_not_found").Inc()
	default:
		p.metrics.PurchasesTotal.WithLabelValues("error").Inc()
	}
}
