package reservation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyReference     = errors.New("external reference must not be empty")
	ErrReferenceTooLong   = errors.New("external reference exceeds maximum length")
	ErrInvalidReference   = errors.New("external reference contains invalid characters")
	ErrAttendeeName       = errors.New("attendee name must not be empty")
	ErrAttendeeEmail      = errors.New("attendee email is malformed")
	ErrAttendeeNationalID = errors.New("attendee national id must not be empty")
	ErrAttendeePhone      = errors.New("attendee phone is malformed")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrCurrencyMismatch   = errors.New("currency mismatch")
)

const maxReferenceLen = 64

var (
	referencePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	emailPattern     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern     = regexp.MustCompile(`^\+?[0-9]{6,15}$`)
)

// Reference is the caller-supplied idempotency key for one purchase attempt.
type Reference struct {
	value string
}

func NewReference(value string) (Reference, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Reference{}, ErrEmptyReference
	}
	if len(v) > maxReferenceLen {
		return Reference{}, ErrReferenceTooLong
	}
	if !referencePattern.MatchString(v) {
		return Reference{}, ErrInvalidReference
	}
	return Reference{value: v}, nil
}

func (r Reference) String() string {
	return r.value
}

// Attendee is one seat holder inside a reservation.
type Attendee struct {
	fullName   string
	email      string
	nationalID string
	phone      string
}

func NewAttendee(fullName, email, nationalID, phone string) (Attendee, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return Attendee{}, ErrAttendeeName
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return Attendee{}, ErrAttendeeEmail
	}
	nid := strings.TrimSpace(nationalID)
	if nid == "" {
		return Attendee{}, ErrAttendeeNationalID
	}
	p := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if !phonePattern.MatchString(p) {
		return Attendee{}, ErrAttendeePhone
	}
	return Attendee{fullName: name, email: strings.TrimSpace(email), nationalID: nid, phone: p}, nil
}

func (a Attendee) FullName() string   { return a.fullName }
func (a Attendee) Email() string      { return a.email }
func (a Attendee) NationalID() string { return a.nationalID }
func (a Attendee) Phone() string      { return a.phone }

// Money pairs a decimal amount with its currency. Amounts are never floats.
type Money struct {
	amount   decimal.Decimal
	currency string
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount, currency: strings.ToUpper(currency)}, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }

func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))), currency: m.currency}
}

func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}
