package mail

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

//go:generate mockgen -source=sender.go -destination=../../internal/server-service/mocks/mail/mock_sender.go -package=mockmail

var ErrNoRecipients = errors.New("mail has no recipients")

type Attachment struct {
	Name    string
	Content io.Reader
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

type Sender interface {
	SendMail(msg Message) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) SendMail(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("Sender.SendMail: %w", ErrNoRecipients)
	}
	m := mail.NewMessage()

	m.SetHeader("From", s.email)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
	}
	if msg.HTMLBody != "" {
		if msg.TextBody != "" {
			m.AddAlternative("text/html", msg.HTMLBody)
		} else {
			m.SetBody("text/html", msg.HTMLBody)
		}
	}

	for _, attachment := range msg.Attachments {
		if attachment.Content == nil || attachment.Name == "" {
			continue
		}
		content := attachment.Content
		m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("Sender.SendMail: %w", err)
	}
	return nil
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		email:  email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}
