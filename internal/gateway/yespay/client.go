package yespay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tickethub/internal/gateway"
	"tickethub/internal/pkg/config"
	"tickethub/internal/pkg/errs"
)

// Client talks to the Yespay QR payment backend. Requests are signed with the
// partner HMAC key; transient failures are retried with exponential backoff
// before surfacing ErrGatewayUnavailable.
type Client struct {
	baseURL   string
	partnerID string
	clientID  string
	clientKey string
	hmacKey   []byte

	retryMax      int
	retryBaseWait time.Duration

	hc *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		partnerID:     cfg.PartnerID,
		clientID:      cfg.ClientID,
		clientKey:     cfg.ClientKey,
		hmacKey:       []byte(cfg.HMACKey),
		retryMax:      cfg.RetryMax,
		retryBaseWait: cfg.RetryBaseWait,
		hc: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

type createQRRequest struct {
	PartnerID      string `json:"partner_id"`
	ClientID       string `json:"client_id"`
	ReferenceLabel string `json:"reference_label"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Description    string `json:"description,omitempty"`
	ExpiryMinutes  int    `json:"expiry_minutes,omitempty"`
	Signature      string `json:"signature"`
}

type createQRResponse struct {
	TransactionUUID string `json:"transaction_uuid"`
	QRCode          string `json:"qr_code"`
	DeepLink        string `json:"deep_link,omitempty"`
	ExpiresAt       string `json:"expires_at"`
}

// CreatePaymentRequest registers payment intent and returns the QR artifact
// the buyer pays against. The provider's transaction UUID becomes the opaque
// gateway handle used to correlate callbacks.
func (c *Client) CreatePaymentRequest(ctx context.Context, req gateway.PaymentRequest) (*gateway.PaymentArtifact, error) {
	amount := req.Amount.StringFixed(2)
	body := createQRRequest{
		PartnerID:      c.partnerID,
		ClientID:       c.clientID,
		ReferenceLabel: req.Reference,
		Amount:         amount,
		Currency:       req.Currency,
		Description:    req.Description,
		ExpiryMinutes:  req.ExpiryMinutes,
		Signature:      c.sign(c.partnerID, c.clientID, req.Reference, amount, req.Currency),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode payment request")
	}

	var lastErr error
	backOff := c.retryBaseWait

	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, errs.Mark(ctx.Err(), gateway.ErrGatewayUnavailable)
			case <-time.After(backOff):
				backOff *= 2
			}
		}

		resp, err := c.post(ctx, "/v1/payments/qr", payload)
		if err != nil {
			lastErr = err
			slog.Warn("gateway request failed, will retry", "attempt", attempt+1, "error", err.Error())
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
			var qr createQRResponse
			err := json.NewDecoder(resp.Body).Decode(&qr)
			resp.Body.Close()
			if err != nil {
				return nil, errs.Wrap(err, "failed to decode gateway response")
			}
			return toArtifact(qr)

		case resp.StatusCode >= http.StatusInternalServerError:
			resp.Body.Close()
			lastErr = fmt.Errorf("gateway returned status %d", resp.StatusCode)
			slog.Warn("gateway server error, will retry", "attempt", attempt+1, "status", resp.StatusCode)

		default:
			resp.Body.Close()
			return nil, errs.New(fmt.Sprintf("gateway refused payment request: status %d", resp.StatusCode))
		}
	}

	return nil, errs.Mark(lastErr, gateway.ErrGatewayUnavailable)
}

func (c *Client) post(ctx context.Context, path string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Key", c.clientKey)

	return c.hc.Do(req)
}

func toArtifact(qr createQRResponse) (*gateway.PaymentArtifact, error) {
	if qr.TransactionUUID == "" || qr.QRCode == "" {
		return nil, errs.New("gateway response missing transaction uuid or qr code")
	}

	expiresAt, err := time.Parse(time.RFC3339, qr.ExpiresAt)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse gateway expiry")
	}

	return &gateway.PaymentArtifact{
		Handle:    qr.TransactionUUID,
		QRCode:    qr.QRCode,
		DeepLink:  qr.DeepLink,
		ExpiresAt: expiresAt,
	}, nil
}

func (c *Client) sign(fields ...string) string {
	mac := hmac.New(sha256.New, c.hmacKey)
	mac.Write([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(mac.Sum(nil))
}
