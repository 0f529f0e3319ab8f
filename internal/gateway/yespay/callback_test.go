//go:build unit

package yespay_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"tickethub/internal/gateway"
	"tickethub/internal/gateway/yespay"
	"tickethub/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rawCallback struct {
	TransactionUUID string `json:"transaction_uuid"`
	ReferenceLabel  string `json:"reference_label"`
	Status          string `json:"status"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Timestamp       int64  `json:"timestamp"`
	Signature       string `json:"signature"`
}

func signCallback(key string, p rawCallback) string {
	canonical := strings.Join([]string{
		p.TransactionUUID,
		p.ReferenceLabel,
		p.Status,
		p.Amount,
		p.Currency,
		strconv.FormatInt(p.Timestamp, 10),
	}, "|")
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

func validCallback() rawCallback {
	return rawCallback{
		TransactionUUID: "txn-1234",
		ReferenceLabel:  "ORD-20260901-0001",
		Status:          "APPROVED",
		Amount:          "300000.00",
		Currency:        "LAK",
		Timestamp:       1756720800,
	}
}

func marshalSigned(t *testing.T, key string, p rawCallback) []byte {
	t.Helper()
	p.Signature = signCallback(key, p)
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return raw
}

func TestParseCallback(t *testing.T) {
	cfg := config.NewTestConfig().Gateway
	client := yespay.NewClient(cfg)

	t.Run("valid approved callback", func(t *testing.T) {
		conf, err := client.ParseCallback(marshalSigned(t, cfg.HMACKey, validCallback()))
		require.NoError(t, err)

		assert.Equal(t, "txn-1234", conf.Handle)
		assert.Equal(t, gateway.OutcomeApproved, conf.Outcome)
		assert.True(t, conf.Amount.Equal(decimal.NewFromInt(300000)))
		assert.Equal(t, "LAK", conf.Currency)
		assert.Equal(t, "ORD-20260901-0001", conf.ProviderRef)
		assert.Equal(t, int64(1756720800), conf.Timestamp.Unix())
	})

	t.Run("replaying the same payload yields the same confirmation", func(t *testing.T) {
		raw := marshalSigned(t, cfg.HMACKey, validCallback())

		first, err := client.ParseCallback(raw)
		require.NoError(t, err)
		second, err := client.ParseCallback(raw)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("status normalization", func(t *testing.T) {
		cases := []struct {
			status string
			want   gateway.Outcome
		}{
			{status: "SUCCESS", want: gateway.OutcomeApproved},
			{status: "paid", want: gateway.OutcomeApproved},
			{status: "REJECTED", want: gateway.OutcomeRejected},
			{status: "cancelled", want: gateway.OutcomeRejected},
			{status: "DECLINED", want: gateway.OutcomeRejected},
			{status: "PENDING", want: gateway.OutcomePending},
			{status: "created", want: gateway.OutcomePending},
		}
		for _, c := range cases {
			t.Run(c.status, func(t *testing.T) {
				p := validCallback()
				p.Status = c.status

				conf, err := client.ParseCallback(marshalSigned(t, cfg.HMACKey, p))
				require.NoError(t, err)
				assert.Equal(t, c.want, conf.Outcome)
			})
		}
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*rawCallback)
			resign bool
		}{
			{name: "tampered amount", mutate: func(p *rawCallback) { p.Amount = "1.00" }},
			{name: "tampered status", mutate: func(p *rawCallback) { p.Status = "APPROVED"; p.ReferenceLabel = "ORD-other" }},
			{name: "signature for a different key", mutate: func(p *rawCallback) { p.Signature = signCallback("wrong-key", *p) }},
			{name: "signature not hex", mutate: func(p *rawCallback) { p.Signature = "zz-not-hex" }},
			{name: "missing handle", mutate: func(p *rawCallback) { p.TransactionUUID = "" }, resign: true},
			{name: "missing status", mutate: func(p *rawCallback) { p.Status = "" }, resign: true},
			{name: "unknown status", mutate: func(p *rawCallback) { p.Status = "REFUNDED" }, resign: true},
			{name: "malformed amount", mutate: func(p *rawCallback) { p.Amount = "three hundred" }, resign: true},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				p := validCallback()
				p.Signature = signCallback(cfg.HMACKey, p)
				c.mutate(&p)
				if c.resign {
					p.Signature = signCallback(cfg.HMACKey, p)
				}
				raw, err := json.Marshal(p)
				require.NoError(t, err)

				_, err = client.ParseCallback(raw)
				require.ErrorIs(t, err, gateway.ErrInvalidCallback)
			})
		}
	})

	t.Run("not json", func(t *testing.T) {
		_, err := client.ParseCallback([]byte("not json"))
		require.ErrorIs(t, err, gateway.ErrInvalidCallback)
	})
}
