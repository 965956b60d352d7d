package model

import "time"

const (
	CandidateStatusNew       = "new"
	CandidateStatusScreening = "screening"
	CandidateStatusInterview = "interview"
	CandidateStatusOffer     = "offer"
	CandidateStatusHired     = "hired"
	CandidateStatusRejected  = "rejected"
)

// HiringFunnelStages funnel display order. Stages absent from the data
// still appear with a zero count.
var HiringFunnelStages = []string{
	CandidateStatusNew,
	CandidateStatusScreening,
	CandidateStatusInterview,
	CandidateStatusOffer,
	CandidateStatusHired,
	CandidateStatusRejected,
}

// CandidateDo candidate document. The five score fields are filled by
// the evaluation flow against the job's evaluation sections.
type CandidateDo struct {
	ID                 string    `json:"id" bson:"_id"`
	Name               string    `json:"name" bson:"name"`
	Email              string    `json:"email" bson:"email"`
	Phone              string    `json:"phone" bson:"phone"`
	Position           string    `json:"position" bson:"position"`
	Department         string    `json:"department,omitempty" bson:"department,omitempty"`
	JobID              string    `json:"jobId,omitempty" bson:"jobId,omitempty"`
	RecruiterID        string    `json:"recruiterId,omitempty" bson:"recruiterId,omitempty"`
	Status             string    `json:"status" bson:"status"`
	Source             string    `json:"source" bson:"source"`
	ResumeURL          string    `json:"resumeUrl,omitempty" bson:"resumeUrl,omitempty"`
	Skills             []string  `json:"skills" bson:"skills"`
	Notes              string    `json:"notes,omitempty" bson:"notes,omitempty"`
	ExperienceYears    int       `json:"experienceYears" bson:"experienceYears"`
	SalaryExpectation  int       `json:"salaryExpectation,omitempty" bson:"salaryExpectation,omitempty"`
	BackgroundScore    float64   `json:"background_score" bson:"backgroundScore"`
	ProjectScore       float64   `json:"project_score" bson:"projectScore"`
	SkillScore         float64   `json:"skill_score" bson:"skillScore"`
	CertificationScore float64   `json:"certification_score" bson:"certificationScore"`
	TotalScore         float64   `json:"total_score" bson:"totalScore"`
	AppliedDate        time.Time `json:"appliedDate" bson:"appliedDate"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

// NormalizeCandidateStatus maps legacy casings ("New", "SCREENING") onto
// the canonical lower-case value.
func NormalizeCandidateStatus(s string) string {
	return NormalizeJobStatus(s)
}

// CandidateStatusVariants canonical value plus legacy casings, for $in
// filters over stored rows.
func CandidateStatusVariants(s string) []string {
	return JobStatusVariants(s)
}
