package model

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
)

const (
	InterviewStatusScheduled   = "scheduled"
	InterviewStatusCompleted   = "completed"
	InterviewStatusCancelled   = "cancelled"
	InterviewStatusRescheduled = "rescheduled"
	InterviewStatusPending     = "pending"

	InterviewTypePhone     = "phone"
	InterviewTypeVideo     = "video"
	InterviewTypeOnsite    = "onsite"
	InterviewTypeTechnical = "technical"
	InterviewTypeHR        = "hr"
)

// InterviewResultDo structured interview outcome. Rating runs 1 to 5;
// Scores holds optional per-dimension breakdowns.
type InterviewResultDo struct {
	Rating               float64            `json:"rating" bson:"rating"`
	Feedback             string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Strengths            []string           `json:"strengths" bson:"strengths"`
	Weaknesses           []string           `json:"weaknesses" bson:"weaknesses"`
	Notes                string             `json:"notes" bson:"notes"`
	Scores               map[string]float64 `json:"scores,omitempty" bson:"scores,omitempty"`
	HiringRecommendation bool               `json:"hiringRecommendation" bson:"hiringRecommendation"`
	SubmittedBy          string             `json:"submittedBy,omitempty" bson:"submittedBy,omitempty"`
	SubmittedAt          time.Time          `json:"submittedAt" bson:"submittedAt"`
}

// InterviewDo interview document. RawResult holds whatever shape the row
// carries; legacy rows stored bare strings there, so reads go through
// Result() instead of decoding into the struct directly.
type InterviewDo struct {
	ID            string      `json:"-" bson:"_id"`
	CandidateID   string      `json:"candidateId" bson:"candidateId"`
	JobID         string      `json:"jobId" bson:"jobId"`
	InterviewerID string      `json:"interviewerId,omitempty" bson:"interviewerId,omitempty"`
	ScheduledDate time.Time   `json:"scheduledDate" bson:"scheduledDate"`
	DurationMin   int         `json:"durationMinutes" bson:"durationMinutes"`
	Round         int         `json:"round,omitempty" bson:"round,omitempty"`
	Type          string      `json:"type" bson:"type"`
	Status        string      `json:"status" bson:"status"`
	Location      string      `json:"location,omitempty" bson:"location,omitempty"`
	MeetingLink   string      `json:"meetingLink,omitempty" bson:"meetingLink,omitempty"`
	Notes         string      `json:"notes,omitempty" bson:"notes,omitempty"`
	RawResult     interface{} `json:"-" bson:"result,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// Result decodes RawResult when it is a result-shaped object, meaning a
// JSON object carrying a numeric rating. Anything else returns nil.
func (i *InterviewDo) Result() *InterviewResultDo {
	if i.RawResult == nil {
		return nil
	}
	buf, err := json.Marshal(i.RawResult)
	if err != nil {
		return nil
	}
	parsed := gjson.ParseBytes(buf)
	if !parsed.IsObject() {
		return nil
	}
	if rating := parsed.Get("rating"); rating.Type != gjson.Number {
		return nil
	}
	result := new(InterviewResultDo)
	if err := json.Unmarshal(buf, result); err != nil {
		return nil
	}
	return result
}

// InterviewResponse interview plus its normalized result and the joined
// candidate and job names, the shape the API returns.
type InterviewResponse struct {
	InterviewDo
	ID            string             `json:"id"`
	Result        *InterviewResultDo `json:"result"`
	CandidateName string             `json:"candidateName,omitempty"`
	JobTitle      string             `json:"jobTitle,omitempty"`
}

func NewInterviewResponse(do InterviewDo) InterviewResponse {
	return InterviewResponse{
		InterviewDo: do,
		ID:          do.ID,
		Result:      do.Result(),
	}
}

// NormalizeInterviewStatus maps legacy casings onto the canonical
// lower-case value.
func NormalizeInterviewStatus(s string) string {
	return NormalizeJobStatus(s)
}

// NormalizeInterviewType maps legacy casings of the type enum onto the
// canonical lower-case value.
func NormalizeInterviewType(s string) string {
	return NormalizeJobStatus(s)
}

// InterviewStatusVariants canonical value plus legacy casings, for $in
// filters over stored rows.
func InterviewStatusVariants(s string) []string {
	return JobStatusVariants(s)
}
