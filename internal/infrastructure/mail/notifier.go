// Package mail implementa el Notifier sobre SMTP con gomail.
package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/hrms-api/internal/application/auth"
	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/pkg/config"
)

var _ auth.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía correos HTML por SMTP. Las fallas de entrega se
// propagan envolviendo domain.ErrDeliveryFailed: el llamador debe saber que
// el OTP o el enlace de reset pudo no llegar.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier construye el notificador. Host y remitente ausentes son un
// error de configuración: nunca se degrada a un envío silenciosamente nulo.
func NewSMTPNotifier(cfg config.SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" || cfg.FromEmail == "" {
		return nil, fmt.Errorf("mail: SMTP_HOST y SMTP_FROM_EMAIL son obligatorios")
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.FromEmail,
	}, nil
}

// Send entrega un correo HTML. Registra destino y asunto para diagnosticar
// fallas sin reintentar a ciegas (los reintentos son del transporte, no del core).
func (n *SMTPNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	log.Debug().Str("destino", to).Str("asunto", subject).Msg("enviando correo")
	if err := n.dialer.DialAndSend(m); err != nil {
		log.Error().Err(err).Str("destino", to).Str("asunto", subject).Msg("falla de entrega de correo")
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	return nil
}
