package response

import (
	"time"

	"tickethub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type EventResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Venue          string          `json:"venue"`
	StartsAt       time.Time       `json:"startsAt"`
	TotalSeats     int             `json:"totalSeats"`
	AvailableSeats int             `json:"availableSeats"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Currency       string          `json:"currency"`
}

func FromEventView(view *queries.EventView) *EventResponse {
	resp := &EventResponse{}
	_ = copier.Copy(resp, view)
	return resp
}
