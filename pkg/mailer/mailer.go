// Package mailer delivers the transactional emails of the reset and
// verification flows over SMTP.
package mailer

import (
	"fmt"
	"time"

	"passify-auth/pkg/utils"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg utils.EmailConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)

	return &Mailer{
		dialer: dialer,
		from:   cfg.From,
	}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("Passify <%s>", m.from))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

// SendResetCode mails a password reset code and how long it stays valid.
func (m *Mailer) SendResetCode(to, code string, expiresIn time.Duration) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.5; color: #333;">
			<h2>Password Reset Request</h2>
			<p>Hello,</p>
			<p>Your password reset code is:</p>
			<h1 style="color:#2563EB; letter-spacing:4px;">%s</h1>
			<p>This code will expire in <strong>%d minutes</strong>.</p>
			<p>If you didn't request this, please ignore this email.</p>
			<br/>
			<p>— The Passify Team</p>
		</div>
	`, code, int(expiresIn.Minutes()))

	return m.send(to, "Password Reset Code", body)
}

// SendVerificationLink mails the account verification link.
func (m *Mailer) SendVerificationLink(to, link string) error {
	body := fmt.Sprintf(`
		<p>Click the link below to verify your account:</p>
		<p><a href="%s">Verify Account</a></p>
		<p>This link will expire in 1 hour.</p>
	`, link)

	return m.send(to, "Verify your email address", body)
}
