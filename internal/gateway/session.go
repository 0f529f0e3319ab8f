package gateway

import (
	"context"
	"time"

	"tickethub/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// SessionStore caches the payment artifact per reservation reference so
// status polls can re-serve the QR while the reservation is pending. Entries
// expire alongside the reservation TTL; the cache is best-effort and never
// authoritative for reconciliation.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(reference string) string {
	return "payment:session:" + reference
}

func (s *SessionStore) Save(ctx context.Context, reference string, art *PaymentArtifact) error {
	key := sessionKey(reference)

	fields := map[string]any{
		"handle":     art.Handle,
		"qr_code":    art.QRCode,
		"deep_link":  art.DeepLink,
		"expires_at": art.ExpiresAt.Format(time.RFC3339),
	}

	if err := s.rdb.HSet(ctx, key, fields).Err(); err != nil {
		return errs.Wrap(err, "failed to cache payment session")
	}
	if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to set payment session ttl")
	}
	return nil
}

// Find returns nil without error when no session is cached.
func (s *SessionStore) Find(ctx context.Context, reference string) (*PaymentArtifact, error) {
	values, err := s.rdb.HGetAll(ctx, sessionKey(reference)).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to read payment session")
	}
	if len(values) == 0 {
		return nil, nil
	}

	expiresAt, err := time.Parse(time.RFC3339, values["expires_at"])
	if err != nil {
		return nil, errs.Wrap(err, "corrupt payment session expiry")
	}

	return &PaymentArtifact{
		Handle:    values["handle"],
		QRCode:    values["qr_code"],
		DeepLink:  values["deep_link"],
		ExpiresAt: expiresAt,
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, reference string) error {
	if err := s.rdb.Del(ctx, sessionKey(reference)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete payment session")
	}
	return nil
}
