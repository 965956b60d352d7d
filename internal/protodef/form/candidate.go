package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/solutions/recruit-cube/internal/protodef/model"
)

var candidateStatuses = []interface{}{
	model.CandidateStatusNew,
	model.CandidateStatusScreening,
	model.CandidateStatusInterview,
	model.CandidateStatusOffer,
	model.CandidateStatusHired,
	model.CandidateStatusRejected,
}

type CandidateCreateForm struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Position          string   `json:"position"`
	Department        string   `json:"department"`
	JobID             string   `json:"jobId"`
	RecruiterID       string   `json:"recruiterId"`
	Status            string   `json:"status"`
	Source            string   `json:"source"`
	ResumeURL         string   `json:"resumeUrl"`
	Skills            []string `json:"skills"`
	Notes             string   `json:"notes"`
	ExperienceYears   int      `json:"experienceYears"`
	SalaryExpectation int      `json:"salaryExpectation"`
}

func (f CandidateCreateForm) Validate() error {
	f.Status = model.NormalizeCandidateStatus(f.Status)
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Position, validation.Required),
		validation.Field(&f.Status, validation.In(candidateStatuses...)),
		validation.Field(&f.ExperienceYears, validation.Min(0)),
		validation.Field(&f.SalaryExpectation, validation.Min(0)),
	)
	if err != nil {
		defaultLogger.Debugf("candidate create form: %v", err)
	}
	return err
}

// CandidateUpdateForm partial update body. Nil fields stay untouched.
type CandidateUpdateForm struct {
	Name              *string   `json:"name"`
	Email             *string   `json:"email"`
	Phone             *string   `json:"phone"`
	Position          *string   `json:"position"`
	Department        *string   `json:"department"`
	JobID             *string   `json:"jobId"`
	RecruiterID       *string   `json:"recruiterId"`
	Status            *string   `json:"status"`
	Source            *string   `json:"source"`
	ResumeURL         *string   `json:"resumeUrl"`
	Skills            *[]string `json:"skills"`
	Notes             *string   `json:"notes"`
	ExperienceYears   *int      `json:"experienceYears"`
	SalaryExpectation *int      `json:"salaryExpectation"`
}

func (f CandidateUpdateForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Email, is.Email),
		validation.Field(&f.Status, validation.By(inStatuses(candidateStatuses))),
	)
	if err != nil {
		defaultLogger.Debugf("candidate update form: %v", err)
	}
	return err
}

// inStatuses validates an optional status pointer against the canonical
// set after normalization.
func inStatuses(statuses []interface{}) validation.RuleFunc {
	return func(value interface{}) error {
		ptr, ok := value.(*string)
		if !ok || ptr == nil {
			return nil
		}
		return validation.Validate(model.NormalizeCandidateStatus(*ptr), validation.In(statuses...))
	}
}
