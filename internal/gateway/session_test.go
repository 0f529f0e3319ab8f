//go:build unit

package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tickethub/internal/gateway"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionTTL = 15 * time.Minute

func artifact() *gateway.PaymentArtifact {
	return &gateway.PaymentArtifact{
		Handle:    "txn-1234",
		QRCode:    "0002010102...6304ABCD",
		DeepLink:  "yespay://pay/txn-1234",
		ExpiresAt: time.Date(2026, 9, 1, 10, 15, 0, 0, time.UTC),
	}
}

func TestSessionStoreSave(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := gateway.NewSessionStore(rdb, sessionTTL)
	art := artifact()

	fields := map[string]any{
		"handle":     art.Handle,
		"qr_code":    art.QRCode,
		"deep_link":  art.DeepLink,
		"expires_at": art.ExpiresAt.Format(time.RFC3339),
	}
	mock.ExpectHSet("payment:session:ORD-1", fields).SetVal(4)
	mock.ExpectExpire("payment:session:ORD-1", sessionTTL).SetVal(true)

	require.NoError(t, store.Save(context.Background(), "ORD-1", art))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStoreFind(t *testing.T) {
	t.Run("cached session round-trips", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := gateway.NewSessionStore(rdb, sessionTTL)
		art := artifact()

		mock.ExpectHGetAll("payment:session:ORD-1").SetVal(map[string]string{
			"handle":     art.Handle,
			"qr_code":    art.QRCode,
			"deep_link":  art.DeepLink,
			"expires_at": art.ExpiresAt.Format(time.RFC3339),
		})

		got, err := store.Find(context.Background(), "ORD-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, art.Handle, got.Handle)
		assert.Equal(t, art.QRCode, got.QRCode)
		assert.Equal(t, art.DeepLink, got.DeepLink)
		assert.True(t, art.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("missing session is nil without error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := gateway.NewSessionStore(rdb, sessionTTL)

		mock.ExpectHGetAll("payment:session:ORD-gone").SetVal(map[string]string{})

		got, err := store.Find(context.Background(), "ORD-gone")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt expiry is an error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := gateway.NewSessionStore(rdb, sessionTTL)

		mock.ExpectHGetAll("payment:session:ORD-1").SetVal(map[string]string{
			"handle":     "txn-1234",
			"expires_at": "not-a-time",
		})

		_, err := store.Find(context.Background(), "ORD-1")
		require.Error(t, err)
	})

	t.Run("redis failure propagates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := gateway.NewSessionStore(rdb, sessionTTL)

		mock.ExpectHGetAll("payment:session:ORD-1").SetErr(errors.New("connection refused"))

		_, err := store.Find(context.Background(), "ORD-1")
		require.Error(t, err)
	})
}

func TestSessionStoreDelete(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := gateway.NewSessionStore(rdb, sessionTTL)

	mock.ExpectDel("payment:session:ORD-1").SetVal(1)

	require.NoError(t, store.Delete(context.Background(), "ORD-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
