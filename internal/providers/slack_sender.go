package providers

import (
	"context"

	"github.com/slack-go/slack"
)

const slackProvider = "slack"

// SlackSender posts notifications to a Slack channel. The recipient token is
// read as a channel id, so each announcer can point at their own channel.
type SlackSender struct {
	client         *slack.Client
	defaultChannel string
}

func NewSlackSender(token, defaultChannel string, options ...slack.Option) *SlackSender {
	return &SlackSender{
		client:         slack.New(token, options...),
		defaultChannel: defaultChannel,
	}
}

func (s *SlackSender) SendText(ctx context.Context, recipientToken, text string) error {
	channel := recipientToken
	if channel == "" {
		channel = s.defaultChannel
	}
	if channel == "" {
		return &ProviderError{Provider: slackProvider, Message: "no channel configured"}
	}

	if _, _, err := s.client.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false)); err != nil {
		return &ProviderError{Provider: slackProvider, Message: "failed to post message", Err: err}
	}
	return nil
}
