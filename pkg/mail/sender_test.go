package mail

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type mockDialer struct {
	SentMessage *mail.Message
	ShouldError bool
}

func (d *mockDialer) DialAndSend(m ...*mail.Message) error {
	if d.ShouldError {
		return errors.New("dial error")
	}
	if len(m) > 0 {
		d.SentMessage = m[0]
	}
	return nil
}

func TestSender_SendMail(t *testing.T) {
	t.Run("sends an email with both bodies and an attachment", func(t *testing.T) {
		dialer := &mockDialer{}
		s := &sender{
			email:  "dashboard@example.com",
			dialer: dialer,
		}

		msg := Message{
			To:       []string{"ops@example.com"},
			Subject:  "Daily server report",
			HTMLBody: "<h1>Report</h1>",
			TextBody: "Report",
			Attachments: []Attachment{
				{Name: "servers.csv", Content: strings.NewReader("ID;Name")},
				{Name: "", Content: strings.NewReader("ignored")},
			},
		}
		err := s.SendMail(msg)
		require.NoError(t, err)
		require.NotNil(t, dialer.SentMessage)
		assert.Equal(t, s.email, dialer.SentMessage.GetHeader("From")[0])
		assert.Equal(t, "ops@example.com", dialer.SentMessage.GetHeader("To")[0])
		assert.Equal(t, "Daily server report", dialer.SentMessage.GetHeader("Subject")[0])

		var body bytes.Buffer
		_, err = dialer.SentMessage.WriteTo(&body)
		require.NoError(t, err)
		assert.Contains(t, body.String(), "Content-Type: text/plain")
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.Contains(t, body.String(), "<h1>Report</h1>")
		assert.Contains(t, body.String(), `filename="servers.csv"`)
	})

	t.Run("sends html only mail", func(t *testing.T) {
		dialer := &mockDialer{}
		s := &sender{email: "dashboard@example.com", dialer: dialer}

		err := s.SendMail(Message{To: []string{"ops@example.com"}, Subject: "s", HTMLBody: "<p>hi</p>"})
		require.NoError(t, err)

		var body bytes.Buffer
		_, err = dialer.SentMessage.WriteTo(&body)
		require.NoError(t, err)
		assert.Contains(t, body.String(), "Content-Type: text/html")
	})

	t.Run("returns an error without recipients", func(t *testing.T) {
		dialer := &mockDialer{}
		s := &sender{email: "dashboard@example.com", dialer: dialer}
		err := s.SendMail(Message{Subject: "s", TextBody: "b"})
		assert.ErrorIs(t, err, ErrNoRecipients)
		assert.Nil(t, dialer.SentMessage)
	})

	t.Run("returns an error when dialer fails", func(t *testing.T) {
		s := &sender{
			email:  "dashboard@example.com",
			dialer: &mockDialer{ShouldError: true},
		}
		err := s.SendMail(Message{To: []string{"ops@example.com"}, Subject: "Subject", TextBody: "Body"})
		assert.Error(t, err)
	})
}
