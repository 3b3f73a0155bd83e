package smsc

import (
	"context"
	"errors"
	"testing"
	"time"

	"gopkg.in/gomail.v2"
)

type fakeMailer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeMailer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func newMailClient(t *testing.T, opts ...Option) (*Client, *fakeMailer) {
	t.Helper()
	client, err := New("user", "secret", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	mailer := &fakeMailer{}
	client.mailer = mailer
	return client, mailer
}

func TestSendSMSMail_RequiresSender(t *testing.T) {
	client, mailer := newMailClient(t)

	err := client.SendSMSMail(context.Background(), "79991234567", "Hi")
	if !errors.Is(err, ErrMissingEmailSender) {
		t.Fatalf("SendSMSMail() error = %v, want ErrMissingEmailSender", err)
	}
	if len(mailer.sent) != 0 {
		t.Error("no mail should be sent")
	}
}

func TestSendSMSMail_Headers(t *testing.T) {
	client, mailer := newMailClient(t, WithEmailSender("bot@example.com"))

	if err := client.SendSMSMail(context.Background(), "79991234567", "Hi"); err != nil {
		t.Fatalf("SendSMSMail() error = %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(mailer.sent))
	}

	m := mailer.sent[0]
	if got := m.GetHeader("From"); len(got) != 1 || got[0] != "bot@example.com" {
		t.Errorf("From = %v", got)
	}
	if got := m.GetHeader("To"); len(got) != 1 || got[0] != MailGateway {
		t.Errorf("To = %v, want %s", got, MailGateway)
	}
}

func TestSendSMSMail_RelayError(t *testing.T) {
	client, mailer := newMailClient(t, WithEmailSender("bot@example.com"))
	relayErr := errors.New("connection refused")
	mailer.err = relayErr

	err := client.SendSMSMail(context.Background(), "79991234567", "Hi")
	if !errors.Is(err, relayErr) {
		t.Errorf("SendSMSMail() error = %v, want relay error", err)
	}
}

func TestSendSMSMail_ContextCanceled(t *testing.T) {
	client, mailer := newMailClient(t, WithEmailSender("bot@example.com"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.SendSMSMail(ctx, "79991234567", "Hi"); !errors.Is(err, context.Canceled) {
		t.Errorf("SendSMSMail() error = %v, want context.Canceled", err)
	}
	if len(mailer.sent) != 0 {
		t.Error("no mail should be sent")
	}
}

func TestMailBody(t *testing.T) {
	client, _ := newMailClient(t)

	tests := []struct {
		name string
		opts []SendOption
		want string
	}{
		{
			name: "defaults",
			want: "user:secret:0:0:0,0,:79991234567:Hello",
		},
		{
			name: "all options",
			opts: []SendOption{
				WithMessageID(17),
				WithScheduledAt(time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)),
				WithTranslit(1),
				WithFormat(FormatFlash),
				WithSender("Shop"),
			},
			want: "user:secret:17:0903241405:1,1,Shop:79991234567:Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.mailBody("79991234567", "Hello", newSendConfig(tt.opts))
			if got != tt.want {
				t.Errorf("mailBody() = %q, want %q", got, tt.want)
			}
		})
	}
}
