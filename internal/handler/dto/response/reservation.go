package response

import (
	"time"

	"tickethub/internal/usecase/commands"
	"tickethub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PaymentSessionResponse struct {
	QRCode    string    `json:"qrCode"`
	DeepLink  string    `json:"deepLink,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PurchaseResponse struct {
	ReservationID uuid.UUID               `json:"reservationId"`
	Reference     string                  `json:"reference"`
	Status        string                  `json:"status"`
	Quantity      int                     `json:"quantity"`
	TotalAmount   decimal.Decimal         `json:"totalAmount"`
	Currency      string                  `json:"currency"`
	Payment       *PaymentSessionResponse `json:"payment,omitempty"`
}

type TicketResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	AttendeeName  string          `json:"attendeeName"`
	AttendeeEmail string          `json:"attendeeEmail"`
	Status        string          `json:"status"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Currency      string          `json:"currency"`
	IssuedAt      time.Time       `json:"issuedAt"`
}

type ReservationResponse struct {
	ID          uuid.UUID               `json:"id"`
	Reference   string                  `json:"reference"`
	EventID     uuid.UUID               `json:"eventId"`
	EventName   string                  `json:"eventName"`
	Quantity    int                     `json:"quantity"`
	TotalAmount decimal.Decimal         `json:"totalAmount"`
	Currency    string                  `json:"currency"`
	Status      string                  `json:"status"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
	Tickets     []TicketResponse        `json:"tickets,omitempty"`
	Payment     *PaymentSessionResponse `json:"payment,omitempty"`
}

func FromPurchaseResult(result *commands.PurchaseResult) *PurchaseResponse {
	resp := &PurchaseResponse{}
	_ = copier.Copy(resp, result)
	if result.Payment != nil {
		resp.Payment = &PaymentSessionResponse{
			QRCode:    result.Payment.QRCode,
			DeepLink:  result.Payment.DeepLink,
			ExpiresAt: result.Payment.ExpiresAt,
		}
	}
	return resp
}

func FromReservationDetail(detail *queries.ReservationDetail) *ReservationResponse {
	resp := &ReservationResponse{}
	_ = copier.Copy(resp, &detail.Reservation)

	if len(detail.Tickets) > 0 {
		tickets := make([]TicketResponse, 0, len(detail.Tickets))
		for i := range detail.Tickets {
			var t TicketResponse
			_ = copier.Copy(&t, &detail.Tickets[i])
			tickets = append(tickets, t)
		}
		resp.Tickets = tickets
	}

	if detail.Payment != nil {
		resp.Payment = &PaymentSessionResponse{
			QRCode:    detail.Payment.QRCode,
			DeepLink:  detail.Payment.DeepLink,
			ExpiresAt: detail.Payment.ExpiresAt,
		}
	}
	return resp
}
