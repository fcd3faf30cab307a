package providers

import (
	"context"
	"fmt"

	"football-club/matchday/internal/config"
)

// Sender delivers text to one chat recipient.
type Sender interface {
	SendText(ctx context.Context, recipientToken, text string) error
}

var (
	_ Sender = (*KakaoSender)(nil)
	_ Sender = (*SlackSender)(nil)
	_ Sender = LogSender{}
)

// NewSender picks the delivery provider named by DELIVERY_PROVIDER.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.DeliveryProvider {
	case "kakao":
		return NewKakaoSender(cfg.KakaoAPIURL, cfg.DashboardURL), nil
	case "slack":
		return NewSlackSender(cfg.SlackToken, cfg.SlackChannel), nil
	case "log", "":
		return LogSender{}, nil
	default:
		return nil, fmt.Errorf("unknown delivery provider %q", cfg.DeliveryProvider)
	}
}
