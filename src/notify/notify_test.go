package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	twilioClient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeCreator struct {
	params []*twilioApi.CreateMessageParams
	err    error
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestNewRequiresAllSettings(t *testing.T) {
	if _, err := New(Config{AccountSID: "AC1", AuthToken: "tok"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSendSMS(t *testing.T) {
	fake := &fakeCreator{}
	n := NewWithCreator(fake, "+15550001111")

	res, err := n.SendSMS(context.Background(), "+5511999990000", "olá")
	if err != nil {
		t.Fatalf("SendSMS: %v", err)
	}
	if !res.Success || res.MessageID != "SM123" {
		t.Errorf("unexpected result %+v", res)
	}
	p := fake.params[0]
	if *p.To != "+5511999990000" || *p.From != "+15550001111" || *p.Body != "olá" {
		t.Errorf("unexpected params to=%s from=%s body=%s", *p.To, *p.From, *p.Body)
	}
}

func TestSendWhatsAppPrefixesNumbers(t *testing.T) {
	fake := &fakeCreator{}
	n := NewWithCreator(fake, "+15550001111")

	if _, err := n.Send(context.Background(), ChannelWhatsApp, "+5511999990000", "oi"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	p := fake.params[0]
	if *p.To != "whatsapp:+5511999990000" || *p.From != "whatsapp:+15550001111" {
		t.Errorf("expected whatsapp prefixes, got to=%s from=%s", *p.To, *p.From)
	}
}

func TestSendFailure(t *testing.T) {
	n := NewWithCreator(&fakeCreator{err: errors.New("invalid number")}, "+15550001111")

	res, err := n.SendSMS(context.Background(), "+1", "x")
	if !errors.Is(err, ErrSendFailed) {
		t.Errorf("expected ErrSendFailed, got %v", err)
	}
	if res.Success || res.Error != "invalid number" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestSendUnknownChannel(t *testing.T) {
	n := NewWithCreator(&fakeCreator{}, "+15550001111")
	if _, err := n.Send(context.Background(), Channel("pigeon"), "+1", "x"); err == nil {
		t.Error("expected error for unknown channel")
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want []string
	}{
		{"debt due", DebtDueMessage("Cartão", time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), 150000),
			[]string{`"Cartão" vence em 09/03/2025`, "Valor: R$ 1.500,00"}},
		{"goal reached", GoalReachedMessage("Viagem", 500000),
			[]string{`meta "Viagem"`, "R$ 5.000,00"}},
		{"daily insight", DailyInsightMessage("Reduza suas Dívidas"),
			[]string{"Insight do Dia", "Reduza suas Dívidas"}},
		{"emergency reserve", EmergencyReserveMessage(150000, 600000),
			[]string{"Progresso: 25.0%", "Meta: R$ 6.000,00"}},
		{"investment gain", InvestmentUpdateMessage("CDB", 1234, 100000),
			[]string{"📈", "Ganho: R$ 12,34 (1.23%)"}},
		{"investment loss", InvestmentUpdateMessage("Ações", -5000, 100000),
			[]string{"📉", "-R$ 50,00 (-5.00%)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range tt.want {
				if !strings.Contains(tt.msg, w) {
					t.Errorf("message %q missing %q", tt.msg, w)
				}
			}
		})
	}
}

func TestSendFailureClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantPermanent bool
	}{
		{"invalid to number", &twilioClient.TwilioRestError{Status: 400, Code: 21211, Message: "Invalid 'To' Phone Number"}, true},
		{"unverified number", &twilioClient.TwilioRestError{Status: 400, Code: 21614, Message: "not a valid mobile number"}, true},
		{"rate limited", &twilioClient.TwilioRestError{Status: 429, Code: 20429, Message: "Too Many Requests"}, false},
		{"provider outage", &twilioClient.TwilioRestError{Status: 503, Code: 20503, Message: "Service Unavailable"}, false},
		{"transport error", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewWithCreator(&fakeCreator{err: tt.err}, "+15550001111")
			_, err := n.SendSMS(context.Background(), "+5511999990000", "x")
			if !errors.Is(err, ErrSendFailed) {
				t.Fatalf("expected ErrSendFailed, got %v", err)
			}
			if got := errors.Is(err, ErrPermanent); got != tt.wantPermanent {
				t.Errorf("permanent = %v, want %v", got, tt.wantPermanent)
			}
		})
	}
}
