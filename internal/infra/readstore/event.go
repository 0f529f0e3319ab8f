package readstore

import (
	"context"
	"errors"

	"tickethub/internal/infra"
	"tickethub/internal/infra/db"
	"tickethub/internal/usecase/queries"
	"tickethub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

const eventViewSQL = `
SELECT id, name, venue, starts_at, total_seats, available_seats, unit_price::text, currency, created_at, updated_at
FROM events
WHERE id = $1`

func (s *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	var (
		v        queries.EventView
		priceStr string
	)
	err := s.db.QueryRow(ctx, eventViewSQL, id).Scan(
		&v.ID, &v.Name, &v.Venue, &v.StartsAt, &v.TotalSeats, &v.AvailableSeats,
		&priceStr, &v.Currency, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "event not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get event", err)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse unit price", err)
	}
	v.UnitPrice = price
	return &v, nil
}

const eventSnapshotSQL = `
SELECT id, name, venue, starts_at, total_seats, available_seats, unit_price::text, currency
FROM events
WHERE id = $1`

func (s *EventReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	var (
		snap     shared.EventSnapshot
		priceStr string
	)
	err := s.db.QueryRow(ctx, eventSnapshotSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.Venue, &snap.StartsAt,
		&snap.TotalSeats, &snap.AvailableSeats, &priceStr, &snap.Currency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "event not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get event snapshot", err)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse unit price", err)
	}
	snap.UnitPrice = price
	return &snap, nil
}
