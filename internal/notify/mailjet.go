// Package notify holds the outbound messaging integrations. Both are
// best-effort from the order flow's point of view.
package notify

import (
	"context"
	"log"

	"github.com/wneessen/go-mail"
)

// Mailjet sends order confirmations through the Mailjet SMTP relay, using the
// API key pair as SMTP credentials.
type Mailjet struct {
	publicKey   string
	privateKey  string
	senderEmail string
	senderName  string
}

func NewMailjet(publicKey, privateKey, senderEmail, senderName string) *Mailjet {
	return &Mailjet{
		publicKey:   publicKey,
		privateKey:  privateKey,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (m *Mailjet) Configured() bool {
	return m.publicKey != "" && m.privateKey != ""
}

// NotifyOrder sends a localized confirmation when the integration is
// configured and the payload carries an email. Anything else is a no-op.
func (m *Mailjet) NotifyOrder(ctx context.Context, orderID string, payload map[string]any) error {
	if !m.Configured() {
		return nil
	}
	email, _ := payload["email"].(string)
	if email == "" {
		return nil
	}
	lang, _ := payload["lang"].(string)

	subject := "ALTURA Order Confirmation"
	body := "Thanks for your ALTURA order. Order: " + orderID
	if lang == "fr" {
		subject = "Confirmation de commande ALTURA"
		body = "Merci pour votre commande ALTURA. Commande: " + orderID
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.senderName, m.senderEmail); err != nil {
		return err
	}
	if err := msg.To(email); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient("in-v3.mailjet.com",
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.publicKey),
		mail.WithPassword(m.privateKey),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending confirmation email to", email)
	return client.DialAndSendWithContext(ctx, msg)
}
