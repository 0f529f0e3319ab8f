package queries

import (
	"context"

	"tickethub/internal/infra"
	"tickethub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event not found")

type EventReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type EventQuery interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type eventQuery struct {
	events EventReader
}

func NewEventQuery(events EventReader) EventQuery {
	return &eventQuery{events: events}
}

func (q *eventQuery) GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.events.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, errs.Wrap(err, "failed to get event")
	}
	return view, nil
}
