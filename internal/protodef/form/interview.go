package form

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/solutions/recruit-cube/internal/protodef/model"
)

var interviewStatuses = []interface{}{
	model.InterviewStatusScheduled,
	model.InterviewStatusCompleted,
	model.InterviewStatusCancelled,
	model.InterviewStatusRescheduled,
	model.InterviewStatusPending,
}

var interviewTypes = []interface{}{
	model.InterviewTypePhone,
	model.InterviewTypeVideo,
	model.InterviewTypeOnsite,
	model.InterviewTypeTechnical,
	model.InterviewTypeHR,
}

type InterviewCreateForm struct {
	CandidateID   string    `json:"candidateId"`
	JobID         string    `json:"jobId"`
	InterviewerID string    `json:"interviewerId"`
	ScheduledDate time.Time `json:"scheduledDate"`
	DurationMin   int       `json:"durationMinutes"`
	Round         int       `json:"round"`
	Type          string    `json:"type"`
	Location      string    `json:"location"`
	MeetingLink   string    `json:"meetingLink"`
	Notes         string    `json:"notes"`
}

func (f InterviewCreateForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.CandidateID, validation.Required),
		validation.Field(&f.JobID, validation.Required),
		validation.Field(&f.ScheduledDate, validation.Required),
		validation.Field(&f.Type, validation.In(interviewTypes...)),
		validation.Field(&f.DurationMin, validation.Min(0)),
	)
	if err != nil {
		defaultLogger.Debugf("interview create form: %v", err)
	}
	return err
}

// InterviewUpdateForm partial update body. Nil fields stay untouched.
type InterviewUpdateForm struct {
	InterviewerID *string    `json:"interviewerId"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	DurationMin   *int       `json:"durationMinutes"`
	Round         *int       `json:"round"`
	Type          *string    `json:"type"`
	Status        *string    `json:"status"`
	Location      *string    `json:"location"`
	MeetingLink   *string    `json:"meetingLink"`
	Notes         *string    `json:"notes"`
}

func (f InterviewUpdateForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Status, validation.By(inStatuses(interviewStatuses))),
	)
	if err != nil {
		defaultLogger.Debugf("interview update form: %v", err)
	}
	return err
}

// InterviewResultForm body of the result submission endpoint.
type InterviewResultForm struct {
	Rating               float64            `json:"rating"`
	Feedback             string             `json:"feedback"`
	Strengths            []string           `json:"strengths"`
	Weaknesses           []string           `json:"weaknesses"`
	Notes                string             `json:"notes"`
	Scores               map[string]float64 `json:"scores"`
	HiringRecommendation bool               `json:"hiringRecommendation"`
	SubmittedBy          string             `json:"submittedBy"`
}

func (f InterviewResultForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Rating, validation.Required, validation.Min(1.0), validation.Max(5.0)),
	)
	if err != nil {
		defaultLogger.Debugf("interview result form: %v", err)
	}
	return err
}
