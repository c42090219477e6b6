package service

import (
	"fmt"

	"jobboard"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"
)

type MailService struct {
	logger zerolog.Logger
}

func NewMailService() *MailService {
	return &MailService{
		logger: jobboard.Logger,
	}
}

// Send delivers a message through the SMTP settings from .env, using
// SMTP_FROM as the sender (falls back to SMTP_USERNAME).
func (slf *MailService) Send(to []string, subject, body string, isHTML bool) error {
	cfg := jobboard.GetConfig().SmtpConfig
	if cfg.Host == "" || cfg.Username == "" {
		return fmt.Errorf("SMTP not configured (SMTP_HOST / SMTP_USERNAME missing)")
	}
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return fmt.Errorf("failed to set from: %w", err)
	}
	if err := m.To(to...); err != nil {
		return fmt.Errorf("failed to set to: %w", err)
	}
	m.Subject(subject)
	if isHTML {
		m.SetBodyString(gomail.TypeTextHTML, body)
	} else {
		m.SetBodyString(gomail.TypeTextPlain, body)
	}

	tlsPolicy := gomail.TLSOpportunistic
	if cfg.UseTLS {
		tlsPolicy = gomail.TLSMandatory
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(tlsPolicy),
	}
	if cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slf.logger.Info().Strs("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}

// SendPasswordReset mails the reset link for a forgotten password.
func (slf *MailService) SendPasswordReset(to, resetURL string) error {
	body := fmt.Sprintf(
		"You requested a password reset.\n\nOpen the link below within 15 minutes to choose a new password:\n\n%s\n\nIf you did not request this, ignore this email.",
		resetURL,
	)
	return slf.Send([]string{to}, "Password reset", body, false)
}
