// Package notify sends SMS and WhatsApp messages through Twilio.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"financezenn-server/src/logging"

	"github.com/twilio/twilio-go"
	twilioClient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	ErrNotConfigured = errors.New("notification service not configured")
	ErrSendFailed    = errors.New("notification send failed")
	// ErrPermanent is wrapped alongside ErrSendFailed when the provider
	// rejected the message itself, so resending cannot succeed.
	ErrPermanent     = errors.New("notification rejected by provider")
)

type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

func (c Channel) Valid() bool {
	return c == ChannelSMS || c == ChannelWhatsApp
}

// Result mirrors what the provider reported for one send.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// MessageCreator is the slice of the Twilio REST API the notifier uses.
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type Config struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
}

type Notifier struct {
	api    MessageCreator
	from   string
	logger *slog.Logger
}

func New(cfg Config) (*Notifier, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.PhoneNumber == "" {
		return nil, ErrNotConfigured
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return NewWithCreator(client.Api, cfg.PhoneNumber), nil
}

func NewWithCreator(api MessageCreator, from string) *Notifier {
	return &Notifier{api: api, from: from, logger: logging.For(logging.ComponentNotify)}
}

func (n *Notifier) SendSMS(ctx context.Context, to, body string) (Result, error) {
	return n.send(ctx, ChannelSMS, n.from, to, body)
}

func (n *Notifier) SendWhatsApp(ctx context.Context, to, body string) (Result, error) {
	return n.send(ctx, ChannelWhatsApp, "whatsapp:"+n.from, "whatsapp:"+to, body)
}

// Send dispatches on the channel.
func (n *Notifier) Send(ctx context.Context, ch Channel, to, body string) (Result, error) {
	switch ch {
	case ChannelSMS:
		return n.SendSMS(ctx, to, body)
	case ChannelWhatsApp:
		return n.SendWhatsApp(ctx, to, body)
	}
	return Result{Error: "unknown channel"}, fmt.Errorf("unknown channel %q", ch)
}

func (n *Notifier) send(ctx context.Context, ch Channel, from, to, body string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Error: err.Error()}, err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to send notification", logging.FieldChannel, ch, logging.FieldError, err)
		if permanent(err) {
			return Result{Error: err.Error()}, fmt.Errorf("%w: %w: %w", ErrSendFailed, ErrPermanent, err)
		}
		return Result{Error: err.Error()}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	res := Result{Success: true}
	if resp != nil && resp.Sid != nil {
		res.MessageID = *resp.Sid
	}
	n.logger.InfoContext(ctx, "Sent notification", logging.FieldChannel, ch, logging.FieldMessageID, res.MessageID)
	return res, nil
}

// permanent reports whether Twilio refused the request as a client error,
// e.g. 21211 invalid To number. 429 is rate limiting and stays retryable.
func permanent(err error) bool {
	var restErr *twilioClient.TwilioRestError
	if !errors.As(err, &restErr) {
		return false
	}
	return restErr.Status >= 400 && restErr.Status < 500 && restErr.Status != 429
}
