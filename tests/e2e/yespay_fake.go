//go:build e2e

package e2e

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

const (
	testGatewayClientKey = "test-client-key"
	testGatewayHMACKey   = "test-hmac-key"
)

// FakeYespay emulates the payment provider's QR endpoint so purchase flows
// run against a real HTTP hop. It records the transaction handle it issued
// per reference and can sign callback payloads the way the provider does.
type FakeYespay struct {
	server    *httptest.Server
	clientKey string
	hmacKey   []byte

	mu       sync.Mutex
	handles  map[string]string // reference label -> transaction uuid
	requests int
}

func NewFakeYespay(t *testing.T, clientKey, hmacKey string) *FakeYespay {
	f := &FakeYespay{
		clientKey: clientKey,
		hmacKey:   []byte(hmacKey),
		handles:   make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/payments/qr", f.handleCreateQR)
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *FakeYespay) URL() string {
	return f.server.URL
}

func (f *FakeYespay) handleCreateQR(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Client-Key") != f.clientKey {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req struct {
		ReferenceLabel string `json:"reference_label"`
		Amount         string `json:"amount"`
		Currency       string `json:"currency"`
		Signature      string `json:"signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReferenceLabel == "" || req.Signature == "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	handle := "txn-" + strings.ReplaceAll(uuid.New().String(), "-", "")

	f.mu.Lock()
	f.handles[req.ReferenceLabel] = handle
	f.requests++
	f.mu.Unlock()

	resp := map[string]string{
		"transaction_uuid": handle,
		"qr_code":          "00020101021238" + handle + "530341854" + req.Amount + "6304ABCD",
		"deep_link":        "yespay://pay/" + handle,
		"expires_at":       time.Now().Add(15 * time.Minute).UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// HandleFor returns the transaction handle issued for a reference, or "".
func (f *FakeYespay) HandleFor(reference string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handles[reference]
}

func (f *FakeYespay) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

// SignedCallback builds a callback payload carrying a valid provider
// signature over the canonical field string.
func (f *FakeYespay) SignedCallback(handle, reference, status, amount, currency string) []byte {
	ts := time.Now().Unix()

	canonical := strings.Join([]string{
		handle, reference, status, amount, currency, strconv.FormatInt(ts, 10),
	}, "|")
	mac := hmac.New(sha256.New, f.hmacKey)
	mac.Write([]byte(canonical))

	payload := map[string]any{
		"transaction_uuid": handle,
		"reference_label":  reference,
		"status":           status,
		"amount":           amount,
		"currency":         currency,
		"timestamp":        ts,
		"signature":        hex.EncodeToString(mac.Sum(nil)),
	}
	raw, _ := json.Marshal(payload)
	return raw
}
