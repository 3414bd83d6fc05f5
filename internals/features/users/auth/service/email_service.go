package service

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"vatplatform_backend/internals/configs"
)

// EmailService sends transactional mail over SMTP. It is constructed at
// startup and injected into the auth controller; nothing in this package
// holds a global transporter.
type EmailService struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     configs.SMTPHost,
		port:     configs.SMTPPort,
		username: configs.SMTPUsername,
		password: configs.SMTPPassword,
		from:     configs.SMTPFrom,
	}
}

// SendPasswordReset dispatches the single-use reset link. One attempt,
// no retry; the caller maps failure to a 500.
func (s *EmailService) SendPasswordReset(to, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", configs.FrontendURL, resetToken)
	subject := "Password Reset Request"
	body := fmt.Sprintf(
		"You requested a password reset. Click this link to reset your password: %s\r\n\r\nThis link will expire in 1 hour.",
		resetURL,
	)
	return s.send(to, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.from, to, subject, body,
	))

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	// Port 465 is implicit TLS; smtp.SendMail only does STARTTLS.
	if s.port == "465" {
		return s.sendImplicitTLS(addr, auth, to, msg)
	}
	return smtp.SendMail(addr, auth, s.from, []string{to}, msg)
}

func (s *EmailService) sendImplicitTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
