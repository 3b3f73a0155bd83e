package smsc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

// MailGateway is the address that turns relayed mail into SMS.
const MailGateway = "send@send.smsc.ru"

// mailDialer delivers composed messages. *gomail.Dialer satisfies it.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func newSMTPDialer(host string, port int, username, password string) *gomail.Dialer {
	return gomail.NewDialer(host, port, username, password)
}

// SendSMSMail sends a message through the e-mail gateway instead of HTTP.
// The mail leaves from the sender set with [WithEmailSender] through the
// relay set with [WithSMTP]. Only translit, time, message ID, format and
// sender options apply.
func (c *Client) SendSMSMail(ctx context.Context, phones, message string, opts ...SendOption) error {
	if c.emailSender == "" {
		return ErrMissingEmailSender
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newSendConfig(opts)
	m := gomail.NewMessage(gomail.SetCharset(string(c.charset)))
	m.SetHeader("From", c.emailSender)
	m.SetHeader("To", MailGateway)
	m.SetHeader("Subject", "")
	m.SetBody("text/plain", c.charset.Encode(c.mailBody(phones, message, cfg)))

	if err := c.mailer.DialAndSend(m); err != nil {
		return wrapError("mail", fmt.Errorf("failed to relay message via %s:%d: %w", c.smtpHost, c.smtpPort, err))
	}
	return nil
}

// mailBody renders login:password:id:time:translit,format,sender:phones:message.
func (c *Client) mailBody(phones, message string, cfg *sendConfig) string {
	when := cfg.time
	if when == "" {
		when = "0"
	}
	options := strings.Join([]string{
		strconv.Itoa(cfg.translit),
		strconv.Itoa(int(cfg.format)),
		cfg.sender,
	}, ",")
	return strings.Join([]string{
		c.login,
		c.password,
		strconv.Itoa(cfg.id),
		when,
		options,
		phones,
		message,
	}, ":")
}
