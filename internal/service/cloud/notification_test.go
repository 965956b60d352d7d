package cloud

import (
	"strings"
	"testing"
	"time"

	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
)

type captureSender struct {
	to      string
	subject string
	body    string
}

func (s *captureSender) SendMail(xl *xlog.Logger, to string, subject string, htmlBody string) error {
	s.to = to
	s.subject = subject
	s.body = htmlBody
	return nil
}

func newCaptureService() (*NotificationService, *captureSender) {
	sender := &captureSender{}
	svc := NewNotificationService(utils.NewSample(), nil)
	svc.sender = sender
	return svc, sender
}

func TestSendInterviewScheduled(t *testing.T) {
	svc, sender := newCaptureService()
	candidate := &model.CandidateDo{Name: "Jordan Lee", Email: "jordan@example.com", Position: "Backend Engineer"}
	interview := &model.InterviewDo{
		ScheduledDate: time.Date(2026, time.September, 10, 14, 30, 0, 0, time.UTC),
		DurationMin:   60,
		Type:          model.InterviewTypeVideo,
		MeetingLink:   "https://meet.example.com/abc",
	}
	if err := svc.SendInterviewScheduled(nil, candidate, interview); err != nil {
		t.Fatalf("send: %v", err)
	}
	if sender.to != "jordan@example.com" {
		t.Errorf("to = %q", sender.to)
	}
	if !strings.Contains(sender.subject, "10/09/2026") {
		t.Errorf("subject missing date: %q", sender.subject)
	}
	for _, want := range []string{"Jordan Lee", "14:30", "60 minutes", "Video", "https://meet.example.com/abc"} {
		if !strings.Contains(sender.body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSendAcceptanceAndRejection(t *testing.T) {
	svc, sender := newCaptureService()
	candidate := &model.CandidateDo{Name: "Sam Doe", Email: "sam@example.com", Position: "SRE"}

	if err := svc.SendAcceptance(nil, candidate); err != nil {
		t.Fatalf("acceptance: %v", err)
	}
	if !strings.Contains(sender.body, "Congratulations") || !strings.Contains(sender.subject, "SRE") {
		t.Errorf("acceptance content wrong: subject %q", sender.subject)
	}

	if err := svc.SendRejection(nil, candidate); err != nil {
		t.Fatalf("rejection: %v", err)
	}
	if !strings.Contains(sender.body, "not to move forward") {
		t.Error("rejection content wrong")
	}
}

func TestMockSenderSelected(t *testing.T) {
	conf := utils.NewSample()
	conf.Mail.Provider = "mock"
	if _, ok := NewMailSender(conf).(*mockMailSender); !ok {
		t.Error("expected mock sender for non-smtp provider")
	}
	conf.Mail.Provider = "smtp"
	if _, ok := NewMailSender(conf).(*smtpMailSender); !ok {
		t.Error("expected smtp sender")
	}
}
