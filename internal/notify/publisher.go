package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"tickethub/internal/pkg/config"
	"tickethub/internal/pkg/errs"

	pubnub "github.com/pubnub/go/v7"
)

// Publisher delivers a notification payload to a buyer-facing topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

func NewPubNubClient(cfg config.NotifyConfig) *pubnub.PubNub {
	pnConfig := pubnub.NewConfigWithUserId(pubnub.UserId("tickethub-server"))
	pnConfig.PublishKey = cfg.PublishKey
	pnConfig.SubscribeKey = cfg.SubscribeKey
	return pubnub.NewPubNub(pnConfig)
}

// NewPublisher returns a no-op publisher when no keys are configured, so
// local development does not need a PubNub account.
func NewPublisher(cfg config.NotifyConfig) Publisher {
	if cfg.PublishKey == "" || cfg.SubscribeKey == "" {
		slog.Warn("pubnub keys not configured, notifications will be dropped")
		return nopPublisher{}
	}
	return &pubnubPublisher{pn: NewPubNubClient(cfg)}
}

type pubnubPublisher struct {
	pn *pubnub.PubNub
}

func (p *pubnubPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	var message map[string]any
	if err := json.Unmarshal(payload, &message); err != nil {
		return errs.Wrap(err, "malformed notification payload")
	}

	_, _, err := p.pn.PublishWithContext(ctx).
		Channel(topic).
		Message(message).
		Execute()
	if err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	return nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, []byte) error { return nil }
