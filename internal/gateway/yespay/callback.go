package yespay

import (
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tickethub/internal/gateway"
	"tickethub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type callbackPayload struct {
	TransactionUUID string `json:"transaction_uuid"`
	ReferenceLabel  string `json:"reference_label"`
	Status          string `json:"status"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Timestamp       int64  `json:"timestamp"`
	Signature       string `json:"signature"`
}

// ParseCallback verifies the provider signature and normalizes the payload.
// It is a pure function of the raw bytes: replaying a payload yields the
// identical confirmation, which is what makes at-least-once delivery safe to
// feed straight into the reconciliation engine.
func (c *Client) ParseCallback(raw []byte) (*gateway.CanonicalConfirmation, error) {
	var p callbackPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed callback payload"), gateway.ErrInvalidCallback)
	}

	if p.TransactionUUID == "" || p.Status == "" || p.Signature == "" {
		return nil, errs.Mark(errs.New("callback payload missing required fields"), gateway.ErrInvalidCallback)
	}

	if !c.verifySignature(p) {
		return nil, errs.Mark(errs.New("callback signature verification failed"), gateway.ErrInvalidCallback)
	}

	outcome, err := normalizeStatus(p.Status)
	if err != nil {
		return nil, errs.Mark(err, gateway.ErrInvalidCallback)
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed callback amount"), gateway.ErrInvalidCallback)
	}

	return &gateway.CanonicalConfirmation{
		Handle:      p.TransactionUUID,
		Outcome:     outcome,
		Amount:      amount,
		Currency:    strings.ToUpper(p.Currency),
		ProviderRef: p.ReferenceLabel,
		Timestamp:   time.Unix(p.Timestamp, 0),
	}, nil
}

func (c *Client) verifySignature(p callbackPayload) bool {
	canonical := strings.Join([]string{
		p.TransactionUUID,
		p.ReferenceLabel,
		p.Status,
		p.Amount,
		p.Currency,
		fmt.Sprintf("%d", p.Timestamp),
	}, "|")

	expected := c.sign(canonical)

	got, err := hex.DecodeString(p.Signature)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(expected)
	if err != nil {
		return false
	}
	return hmac.Equal(got, want)
}

func normalizeStatus(status string) (gateway.Outcome, error) {
	switch strings.ToUpper(status) {
	case "APPROVED", "SUCCESS", "PAID":
		return gateway.OutcomeApproved, nil
	case "REJECTED", "FAILED", "CANCELLED", "DECLINED":
		return gateway.OutcomeRejected, nil
	case "PENDING", "CREATED":
		return gateway.OutcomePending, nil
	default:
		return "", errs.New("unknown callback status: " + status)
	}
}
