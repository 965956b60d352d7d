package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/form"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db"
	"github.com/solutions/recruit-cube/internal/service/web/middleware"
)

type InterviewApiHandler struct {
	Interview InterviewInterface
}

type InterviewInterface interface {
	ListInterviews(xl *xlog.Logger, status, candidateID, jobID string, skip, limit int) ([]model.InterviewResponse, error)
	GetInterviewByID(xl *xlog.Logger, id string) (*model.InterviewDo, error)
	CreateInterview(xl *xlog.Logger, interview *model.InterviewDo) (*model.InterviewDo, error)
	UpdateInterview(xl *xlog.Logger, id string, fields bson.M) (*model.InterviewDo, error)
	UpdateInterviewStatus(xl *xlog.Logger, id string, status string) (*model.InterviewDo, error)
	SubmitResult(xl *xlog.Logger, id string, result *model.InterviewResultDo) (*model.InterviewDo, error)
	DeleteInterview(xl *xlog.Logger, id string) error
}

func NewInterviewApiHandler(conf *utils.Config) *InterviewApiHandler {
	h := new(InterviewApiHandler)
	interviewService, err := db.NewInterviewService(conf, nil)
	if err != nil {
		panic(err)
	}
	h.Interview = interviewService
	return h
}

func (h *InterviewApiHandler) ListInterviews(c *gin.Context) {
	xl, requestID := requestContext(c)
	skip, limit := middleware.PageInfo(c)
	interviews, err := h.Interview.ListInterviews(xl,
		c.Query("status"), c.Query("candidateId"), c.Query("jobId"), skip, limit)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(interviews).WithRequestID(requestID).Send(c)
}

// ListCandidateInterviews lists the interviews scheduled for one candidate.
func (h *InterviewApiHandler) ListCandidateInterviews(c *gin.Context) {
	xl, requestID := requestContext(c)
	skip, limit := middleware.PageInfo(c)
	interviews, err := h.Interview.ListInterviews(xl,
		c.Query("status"), c.Param("candidateId"), "", skip, limit)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(interviews).WithRequestID(requestID).Send(c)
}

func (h *InterviewApiHandler) GetInterview(c *gin.Context) {
	xl, requestID := requestContext(c)
	interview, err := h.Interview.GetInterviewByID(xl, c.Param("interviewId"))
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(model.NewInterviewResponse(*interview)).WithRequestID(requestID).Send(c)
}

func (h *InterviewApiHandler) CreateInterview(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := form.InterviewCreateForm{}
	if err := c.ShouldBindJSON(&args); err != nil {
		xl.Infof("bad interview body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	if err := args.Validate(); err != nil {
		responseErr := model.NewResponseErrorValidation(err)
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	interview := &model.InterviewDo{
		CandidateID:   args.CandidateID,
		JobID:         args.JobID,
		InterviewerID: args.InterviewerID,
		ScheduledDate: args.ScheduledDate,
		DurationMin:   args.DurationMin,
		Round:         args.Round,
		Type:          args.Type,
		Location:      args.Location,
		MeetingLink:   args.MeetingLink,
		Notes:         args.Notes,
	}
	created, err := h.Interview.CreateInterview(xl, interview)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(model.NewInterviewResponse(*created)).WithRequestID(requestID).SendStatus(c, http.StatusCreated)
}

func (h *InterviewApiHandler) UpdateInterview(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := form.InterviewUpdateForm{}
	if err := c.ShouldBindJSON(&args); err != nil {
		xl.Infof("bad interview body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	if err := args.Validate(); err != nil {
		responseErr := model.NewResponseErrorValidation(err)
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	updated, err := h.Interview.UpdateInterview(xl, c.Param("interviewId"), interviewUpdateFields(args))
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(model.NewInterviewResponse(*updated)).WithRequestID(requestID).Send(c)
}

func (h *InterviewApiHandler) UpdateInterviewStatus(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := model.StatusPatchArgs{}
	if err := c.ShouldBindJSON(&args); err != nil || args.Status == "" {
		xl.Infof("bad status body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	updated, err := h.Interview.UpdateInterviewStatus(xl, c.Param("interviewId"), args.Status)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(model.NewInterviewResponse(*updated)).WithRequestID(requestID).Send(c)
}

// SubmitInterviewResult stores the outcome and completes the interview.
func (h *InterviewApiHandler) SubmitInterviewResult(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := form.InterviewResultForm{}
	if err := c.ShouldBindJSON(&args); err != nil {
		xl.Infof("bad result body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	if err := args.Validate(); err != nil {
		responseErr := model.NewResponseErrorValidation(err)
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	result := &model.InterviewResultDo{
		Rating:               args.Rating,
		Feedback:             args.Feedback,
		Strengths:            args.Strengths,
		Weaknesses:           args.Weaknesses,
		Notes:                args.Notes,
		Scores:               args.Scores,
		HiringRecommendation: args.HiringRecommendation,
		SubmittedBy:          args.SubmittedBy,
		SubmittedAt:          time.Now(),
	}
	updated, err := h.Interview.SubmitResult(xl, c.Param("interviewId"), result)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(model.NewInterviewResponse(*updated)).WithRequestID(requestID).Send(c)
}

func (h *InterviewApiHandler) DeleteInterview(c *gin.Context) {
	xl, requestID := requestContext(c)
	if err := h.Interview.DeleteInterview(xl, c.Param("interviewId")); err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(nil).WithRequestID(requestID).SendStatus(c, http.StatusNoContent)
}

func interviewUpdateFields(args form.InterviewUpdateForm) bson.M {
	fields := bson.M{}
	if args.InterviewerID != nil {
		fields["interviewerId"] = *args.InterviewerID
	}
	if args.ScheduledDate != nil {
		fields["scheduledDate"] = *args.ScheduledDate
	}
	if args.DurationMin != nil {
		fields["durationMinutes"] = *args.DurationMin
	}
	if args.Round != nil {
		fields["round"] = *args.Round
	}
	if args.Type != nil {
		fields["type"] = *args.Type
	}
	if args.Status != nil {
		fields["status"] = *args.Status
	}
	if args.Location != nil {
		fields["location"] = *args.Location
	}
	if args.MeetingLink != nil {
		fields["meetingLink"] = *args.MeetingLink
	}
	if args.Notes != nil {
		fields["notes"] = *args.Notes
	}
	return fields
}
