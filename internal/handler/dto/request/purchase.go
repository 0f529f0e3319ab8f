package request

import (
	"strings"

	"tickethub/internal/domain/reservation"

	"github.com/google/uuid"
)

type PurchaseAttendee struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	NationalID string `json:"national_id" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

type CreatePurchaseRequest struct {
	EventID   uuid.UUID          `json:"event_id" binding:"required"`
	Reference string             `json:"reference" binding:"required"`
	Attendees []PurchaseAttendee `json:"attendees" binding:"required,min=1"`
}

func (r CreatePurchaseRequest) GetReference() string {
	return strings.TrimSpace(r.Reference)
}

func (r CreatePurchaseRequest) ToAttendeeInputs() []reservation.AttendeeInput {
	inputs := make([]reservation.AttendeeInput, 0, len(r.Attendees))
	for _, a := range r.Attendees {
		inputs = append(inputs, reservation.AttendeeInput{
			FullName:   a.FullName,
			Email:      a.Email,
			NationalID: a.NationalID,
			Phone:      a.Phone,
		})
	}
	return inputs
}
