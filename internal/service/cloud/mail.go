package cloud

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/errors"
)

// MailSender delivers one HTML message. Implementations must not block
// longer than the configured send timeout.
type MailSender interface {
	SendMail(xl *xlog.Logger, to string, subject string, htmlBody string) error
}

// NewMailSender selects the sender by conf.Mail.Provider. Anything other
// than "smtp" returns the mock sender, which only logs.
func NewMailSender(conf *utils.Config) MailSender {
	if conf.Mail != nil && conf.Mail.Provider == "smtp" {
		return &smtpMailSender{conf: *conf.Mail}
	}
	return &mockMailSender{}
}

type mockMailSender struct{}

func (s *mockMailSender) SendMail(xl *xlog.Logger, to string, subject string, htmlBody string) error {
	if xl == nil {
		xl = xlog.New("mock mail sender")
	}
	xl.Infof("mock mail to %s, subject %q, %d bytes", to, subject, len(htmlBody))
	return nil
}

type smtpMailSender struct {
	conf utils.MailConfig
}

func (s *smtpMailSender) SendMail(xl *xlog.Logger, to string, subject string, htmlBody string) error {
	if xl == nil {
		xl = xlog.New("smtp mail sender")
	}
	timeout := time.Duration(s.conf.SendTimeoutSecond) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	addr := fmt.Sprintf("%s:%d", s.conf.SMTPHost, s.conf.SMTPPort)
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		xl.Errorf("dial smtp %s: %v", addr, err)
		return &errors.ServerError{Code: errors.ServerErrorMailSendFail, Summary: err.Error()}
	}
	conn.SetDeadline(time.Now().Add(timeout))

	client, err := smtp.NewClient(conn, s.conf.SMTPHost)
	if err != nil {
		conn.Close()
		xl.Errorf("smtp handshake: %v", err)
		return &errors.ServerError{Code: errors.ServerErrorMailSendFail, Summary: err.Error()}
	}
	defer client.Close()
	if s.conf.Username != "" {
		auth := smtp.PlainAuth("", s.conf.Username, s.conf.Password, s.conf.SMTPHost)
		if err := client.Auth(auth); err != nil {
			xl.Errorf("smtp auth: %v", err)
			return &errors.ServerError{Code: errors.ServerErrorMailSendFail, Summary: err.Error()}
		}
	}
	if err := client.Mail(s.conf.From); err != nil {
		return &errors.ServerError{Code: errors.ServerErrorMailSendFail, Summary: err.Error()}
	}
	if err := client.Rcpt(to); err != nil {
		return &errors.ServerError{Code: errors.ServerErrorMailSendFail, Summary: err.Error()}
	}
	w, err := client.Data()
	if err != nil {
		return &errors.ServerError{Code: errors.ServerErrorMailSendFail, Summary: err.Error()}
	}
	msg := buildMessage(s.conf.From, to, subject, htmlBody)
	if _, err := w.Write([]byte(msg)); err != nil {
		return &errors.ServerError{Code: errors.ServerErrorMailSendFail, Summary: err.Error()}
	}
	if err := w.Close(); err != nil {
		return &errors.ServerError{Code: errors.ServerErrorMailSendFail, Summary: err.Error()}
	}
	return client.Quit()
}

func buildMessage(from, to, subject, htmlBody string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return b.String()
}
