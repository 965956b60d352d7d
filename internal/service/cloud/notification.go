package cloud

import (
	"fmt"
	"strings"

	"github.com/qiniu/x/xlog"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
)

// NotificationService composes and sends the candidate-facing emails.
// Delivery failures are logged and reported back, never retried here;
// callers decide whether to swallow them.
type NotificationService struct {
	sender MailSender
	xl     *xlog.Logger
}

func NewNotificationService(conf *utils.Config, xl *xlog.Logger) *NotificationService {
	if xl == nil {
		xl = xlog.New("notification service")
	}
	return &NotificationService{
		sender: NewMailSender(conf),
		xl:     xl,
	}
}

// SendInterviewScheduled mails the interview invitation to the candidate.
func (s *NotificationService) SendInterviewScheduled(xl *xlog.Logger, candidate *model.CandidateDo, interview *model.InterviewDo) error {
	if xl == nil {
		xl = s.xl
	}
	date := interview.ScheduledDate.Format("02/01/2006")
	clock := interview.ScheduledDate.Format("15:04")
	subject := fmt.Sprintf("Interview Invitation - %s", date)
	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", candidate.Name)
	b.WriteString("<p>We are pleased to inform you that your application has been reviewed and we would like to invite you to an interview.</p>")
	b.WriteString("<p><strong>Details:</strong></p><ul>")
	fmt.Fprintf(&b, "<li>Date: %s</li>", date)
	fmt.Fprintf(&b, "<li>Time: %s</li>", clock)
	fmt.Fprintf(&b, "<li>Duration: %d minutes</li>", interview.DurationMin)
	if interview.Location != "" {
		fmt.Fprintf(&b, "<li>Location: %s</li>", interview.Location)
	}
	if interview.MeetingLink != "" {
		fmt.Fprintf(&b, "<li>Meeting link: %s</li>", interview.MeetingLink)
	}
	fmt.Fprintf(&b, "<li>Format: %s</li>", utils.Capitalize(interview.Type))
	b.WriteString("</ul>")
	if interview.Notes != "" {
		fmt.Fprintf(&b, "<p><strong>Additional notes:</strong> %s</p>", interview.Notes)
	}
	b.WriteString("<p>Please confirm your attendance by replying to this email.</p>")
	b.WriteString("<p>Best regards,<br>Recruitment Team</p>")
	b.WriteString("</body></html>")
	return s.sender.SendMail(xl, candidate.Email, subject, b.String())
}

// SendAcceptance mails the offer notification, fired when a candidate
// moves to hired.
func (s *NotificationService) SendAcceptance(xl *xlog.Logger, candidate *model.CandidateDo) error {
	if xl == nil {
		xl = s.xl
	}
	subject := fmt.Sprintf("Offer for the %s position", candidate.Position)
	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", candidate.Name)
	fmt.Fprintf(&b, "<p>Congratulations! We are delighted to offer you the %s position. Our team will contact you shortly with the next steps and the formal offer letter.</p>", candidate.Position)
	b.WriteString("<p>Best regards,<br>Recruitment Team</p>")
	b.WriteString("</body></html>")
	return s.sender.SendMail(xl, candidate.Email, subject, b.String())
}

// SendRejection mails the rejection notification, fired when a candidate
// moves to rejected.
func (s *NotificationService) SendRejection(xl *xlog.Logger, candidate *model.CandidateDo) error {
	if xl == nil {
		xl = s.xl
	}
	subject := fmt.Sprintf("Update on your application for %s", candidate.Position)
	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", candidate.Name)
	fmt.Fprintf(&b, "<p>Thank you for the time you invested in applying for the %s position. After careful consideration we have decided not to move forward with your application at this time. We encourage you to apply for future openings that match your profile.</p>", candidate.Position)
	b.WriteString("<p>Best regards,<br>Recruitment Team</p>")
	b.WriteString("</body></html>")
	return s.sender.SendMail(xl, candidate.Email, subject, b.String())
}
