package mail

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/metrics"
)

type Attachment struct {
	Name string
	Data []byte
}

type Message struct {
	Subject     string
	Body        string
	From        string
	To          []string
	Cc          []string
	Attachments []Attachment
}

//go:generate mockgen -source=mail.go -destination=sender_mock.go -package=mail
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTP delivers messages through an authenticated SMTP relay.
type SMTP struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	m, err := build(msg)
	if err != nil {
		return err
	}

	opts := []gomail.Option{gomail.WithPort(s.cfg.Port)}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("%w: creating smtp client: %v", apperr.ErrUpstream, err)
	}

	err = client.DialAndSendWithContext(ctx, m)
	metrics.Upstream("smtp", "send", err)

	if err != nil {
		return fmt.Errorf("%w: sending mail: %v", apperr.ErrUpstream, err)
	}

	return nil
}

func build(msg Message) (*gomail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("mail has no recipients")
	}

	m := gomail.NewMsg()

	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}

	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}

	if len(msg.Cc) > 0 {
		if err := m.Cc(msg.Cc...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	for _, a := range msg.Attachments {
		m.AttachReadSeeker(a.Name, bytes.NewReader(a.Data))
	}

	return m, nil
}
