package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/solutions/recruit-cube/internal/protodef/model"
)

var jobStatuses = []interface{}{
	model.JobStatusOpen,
	model.JobStatusClosed,
	model.JobStatusDraft,
	model.JobStatusPaused,
}

type JobCreateForm struct {
	Title            string                   `json:"title"`
	Department       string                   `json:"department"`
	CreatedBy        string                   `json:"createdBy"`
	HiringManagerID  string                   `json:"hiringManagerId"`
	Location         string                   `json:"location"`
	Type             string                   `json:"type"`
	Status           string                   `json:"status"`
	Description      string                   `json:"description"`
	Requirements     []string                 `json:"requirements"`
	Responsibilities []string                 `json:"responsibilities"`
	IsRemote         bool                     `json:"isRemote"`
	SalaryMin        int                      `json:"salaryMin"`
	SalaryMax        int                      `json:"salaryMax"`
	RqBackground     *model.EvaluationSection `json:"rq_background"`
	RqProject        *model.EvaluationSection `json:"rq_project"`
	RqSkill          *model.EvaluationSection `json:"rq_skill"`
	RqCertification  *model.EvaluationSection `json:"rq_certification"`
}

func (f JobCreateForm) Validate() error {
	f.Status = model.NormalizeJobStatus(f.Status)
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Department, validation.Required),
		validation.Field(&f.Status, validation.In(jobStatuses...)),
		validation.Field(&f.SalaryMin, validation.Min(0)),
		validation.Field(&f.SalaryMax, validation.Min(f.SalaryMin)),
	)
	if err != nil {
		defaultLogger.Debugf("job create form: %v", err)
	}
	return err
}

// JobUpdateForm partial update body. Nil fields stay untouched.
type JobUpdateForm struct {
	Title            *string                  `json:"title"`
	Department       *string                  `json:"department"`
	HiringManagerID  *string                  `json:"hiringManagerId"`
	Location         *string                  `json:"location"`
	Type             *string                  `json:"type"`
	Status           *string                  `json:"status"`
	Description      *string                  `json:"description"`
	Requirements     *[]string                `json:"requirements"`
	Responsibilities *[]string                `json:"responsibilities"`
	IsRemote         *bool                    `json:"isRemote"`
	SalaryMin        *int                     `json:"salaryMin"`
	SalaryMax        *int                     `json:"salaryMax"`
	RqBackground     *model.EvaluationSection `json:"rq_background"`
	RqProject        *model.EvaluationSection `json:"rq_project"`
	RqSkill          *model.EvaluationSection `json:"rq_skill"`
	RqCertification  *model.EvaluationSection `json:"rq_certification"`
}

func (f JobUpdateForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Status, validation.By(inStatuses(jobStatuses))),
	)
	if err != nil {
		defaultLogger.Debugf("job update form: %v", err)
	}
	return err
}
