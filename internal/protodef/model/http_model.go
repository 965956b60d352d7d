package model

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

/*
	http_model.go: API parameter and response definitions. ***Args are the
	parameters of the *** endpoint, ***Response its result body.
*/

const (
	// RequestIDHeader request ID header.
	RequestIDHeader = "X-Reqid"
	// XLogKey gin context key holding the per-request xlog logger.
	XLogKey = "xlog-logger"

	// SkipContextKey / LimitContextKey pagination values filled by middleware.
	SkipContextKey  = "skip"
	LimitContextKey = "limit"

	// RequestStartKey request start timestamp in the gin context.
	RequestStartKey = "request-start-timestamp-nano"

	MaxPageLimit     = 100
	DefaultPageLimit = 100

	ResponseStatusCodeSuccess    ResponseStatusCode    = 0
	ResponseStatusMessageSuccess ResponseStatusMessage = "success"
)

type ResponseStatusCode int
type ResponseStatusMessage string

type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	RequestID string      `json:"requestId"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Code:    int(ResponseStatusCodeSuccess),
		Message: string(ResponseStatusMessageSuccess),
		Data:    data,
	}
}

func NewFailResponse(err ResponseError) *Response {
	return &Response{
		Code:    err.Code,
		Message: err.Message,
	}
}

func (r *Response) WithRequestID(requestID string) *Response {
	r.RequestID = requestID
	return r
}

// Send writes the envelope with HTTP 200.
func (r *Response) Send(c *gin.Context) {
	c.JSON(http.StatusOK, r)
}

// SendStatus writes the envelope with an explicit HTTP status, used for
// 201 on create, 404 on missing ids and 400/422 on invalid bodies.
func (r *Response) SendStatus(c *gin.Context, status int) {
	c.JSON(status, r)
}

// ListQueryArgs shared list filters for candidates, jobs and interviews.
type ListQueryArgs struct {
	Status     string `form:"status"`
	Department string `form:"department"`
	Search     string `form:"search"`
}

// SummaryStatsResponse /dashboard/stats result.
type SummaryStatsResponse struct {
	ActiveJobs          int `json:"activeJobs"`
	ActiveJobsChange    int `json:"activeJobsChange"`
	NewApplications     int `json:"newApplications"`
	ApplicationsChange  int `json:"applicationsChange"`
	ScheduledInterviews int `json:"scheduledInterviews"`
	InterviewsChange    int `json:"interviewsChange"`
	PositionsFilled     int `json:"positionsFilled"`
	FilledChange        int `json:"filledChange"`
}

// DepartmentCountResponse one row of /dashboard/jobs-by-department.
type DepartmentCountResponse struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// FunnelStageResponse one row of /dashboard/hiring-funnel.
type FunnelStageResponse struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// RecentApplicationResponse one row of /dashboard/recent-applications.
type RecentApplicationResponse struct {
	ID          string `json:"id"`
	Candidate   string `json:"candidate"`
	Position    string `json:"position"`
	AppliedDate string `json:"appliedDate"`
	Status      string `json:"status"`
}

// UpcomingInterviewResponse one row of /dashboard/upcoming-interviews.
type UpcomingInterviewResponse struct {
	ID            string `json:"id"`
	CandidateName string `json:"candidateName"`
	JobTitle      string `json:"jobTitle"`
	ScheduledAt   string `json:"scheduledAt"`
	Type          string `json:"type"`
}

// ActivityResponse one row of /dashboard/recent-activity.
type ActivityResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Timestamp time.Time `json:"timestamp"`
}

// TrendPointResponse one bucket of /dashboard/application-trend.
type TrendPointResponse struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
	Interviews   int    `json:"interviews"`
	Offers       int    `json:"offers"`
}

// StatusPatchArgs body of the PATCH .../status endpoints.
type StatusPatchArgs struct {
	Status string `json:"status" form:"status"`
}

// AnalysisJobResponse one open job with its applicants and the four
// evaluation sections, for /analysis/data.
type AnalysisJobResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Field           string            `json:"field"`
	RqBackground    EvaluationSection `json:"rq_background"`
	RqProject       EvaluationSection `json:"rq_project"`
	RqSkill         EvaluationSection `json:"rq_skill"`
	RqCertification EvaluationSection `json:"rq_certification"`
	Candidates      []CandidateDo     `json:"candidates"`
}
