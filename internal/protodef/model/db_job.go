package model

import (
	"strings"
	"time"
)

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
	JobStatusPaused = "paused"
)

// Criterion one scored line inside an evaluation section.
type Criterion struct {
	Description string `json:"description" bson:"description"`
	MaxScore    int    `json:"maxScore" bson:"maxScore"`
}

// EvaluationSection weighted group of criteria attached to a job. The
// four section ratios of a job are expected to sum to 100.
type EvaluationSection struct {
	Ratio    int         `json:"ratio" bson:"ratio"`
	Criteria []Criterion `json:"criteria" bson:"criteria"`
}

// JobDo job posting document. Applicants and Interviews are denormalized
// counters kept by $inc on candidate and interview writes and reconciled
// by a periodic task.
type JobDo struct {
	ID               string             `json:"id" bson:"_id"`
	Title            string             `json:"title" bson:"title"`
	Department       string             `json:"department" bson:"department"`
	CreatedBy        string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	HiringManagerID  string             `json:"hiringManagerId,omitempty" bson:"hiringManagerId,omitempty"`
	Location         string             `json:"location" bson:"location"`
	Type             string             `json:"type" bson:"type"`
	Status           string             `json:"status" bson:"status"`
	Description      string             `json:"description" bson:"description"`
	Requirements     []string           `json:"requirements" bson:"requirements"`
	Responsibilities []string           `json:"responsibilities,omitempty" bson:"responsibilities,omitempty"`
	IsRemote         bool               `json:"isRemote" bson:"isRemote"`
	SalaryMin        int                `json:"salaryMin" bson:"salaryMin"`
	SalaryMax        int                `json:"salaryMax" bson:"salaryMax"`
	Applicants       int                `json:"applicants" bson:"applicants"`
	Interviews       int                `json:"interviews" bson:"interviews"`
	PostedDate       *time.Time         `json:"postedDate,omitempty" bson:"postedDate,omitempty"`
	ClosedDate       *time.Time         `json:"closedDate,omitempty" bson:"closedDate,omitempty"`
	RqBackground     *EvaluationSection `json:"rq_background,omitempty" bson:"rqBackground,omitempty"`
	RqProject        *EvaluationSection `json:"rq_project,omitempty" bson:"rqProject,omitempty"`
	RqSkill          *EvaluationSection `json:"rq_skill,omitempty" bson:"rqSkill,omitempty"`
	RqCertification  *EvaluationSection `json:"rq_certification,omitempty" bson:"rqCertification,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NormalizeJobStatus maps legacy casings ("OPEN", "Open") onto the
// canonical lower-case value. Unknown values pass through lowered.
func NormalizeJobStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// JobStatusVariants returns the canonical value plus the legacy casings
// still present in stored rows, for $in filters.
func JobStatusVariants(s string) []string {
	canonical := NormalizeJobStatus(s)
	variants := []string{canonical}
	if upper := strings.ToUpper(canonical); upper != canonical {
		variants = append(variants, upper)
	}
	if title := capitalizeFirst(canonical); title != canonical {
		variants = append(variants, title)
	}
	return variants
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
