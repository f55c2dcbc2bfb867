package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"

	"inspirehub/config"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, message Message) error
}

type mailerImpl struct {
	config *config.Config
}

func New(config *config.Config) Mailer {
	return &mailerImpl{
		config: config,
	}
}

func (m *mailerImpl) Send(ctx context.Context, message Message) error {
	if !m.config.Mail.Enable {
		log.Info().Str("to", message.To).Str("subject", message.Subject).Msg("Mail disabled, skipping send")

		return nil
	}

	msg := gomail.NewMsg()

	if err := msg.From(m.config.Mail.From); err != nil {
		return fmt.Errorf("failed to set mail sender: %w", err)
	}

	if err := msg.To(message.To); err != nil {
		return fmt.Errorf("failed to set mail recipient: %w", err)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.Body)

	client, err := gomail.NewClient(
		m.config.Mail.Host,
		gomail.WithPort(m.config.Mail.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.config.Mail.Username),
		gomail.WithPassword(m.config.Mail.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", message.To).Str("subject", message.Subject).Msg("Sent mail successfully.")

	return nil
}
