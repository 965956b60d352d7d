package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/form"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db"
	"github.com/solutions/recruit-cube/internal/service/web/middleware"
)

type CandidateApiHandler struct {
	Candidate CandidateInterface
}

type CandidateInterface interface {
	ListCandidates(xl *xlog.Logger, args model.ListQueryArgs, jobID string, skip, limit int) ([]model.CandidateDo, error)
	GetCandidateByID(xl *xlog.Logger, id string) (*model.CandidateDo, error)
	CreateCandidate(xl *xlog.Logger, candidate *model.CandidateDo) (*model.CandidateDo, error)
	UpdateCandidate(xl *xlog.Logger, id string, fields bson.M) (*model.CandidateDo, error)
	UpdateCandidateStatus(xl *xlog.Logger, id string, status string, extra bson.M) (*model.CandidateDo, error)
	DeleteCandidate(xl *xlog.Logger, id string) error
}

func NewCandidateApiHandler(conf *utils.Config) *CandidateApiHandler {
	h := new(CandidateApiHandler)
	candidateService, err := db.NewCandidateService(conf, nil)
	if err != nil {
		panic(err)
	}
	h.Candidate = candidateService
	return h
}

func (h *CandidateApiHandler) ListCandidates(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := model.ListQueryArgs{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Search:     c.Query("search"),
	}
	skip, limit := middleware.PageInfo(c)
	candidates, err := h.Candidate.ListCandidates(xl, args, c.Query("jobId"), skip, limit)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(candidates).WithRequestID(requestID).Send(c)
}

// ListJobCandidates lists candidates attached to one job.
func (h *CandidateApiHandler) ListJobCandidates(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := model.ListQueryArgs{Status: c.Query("status")}
	skip, limit := middleware.PageInfo(c)
	candidates, err := h.Candidate.ListCandidates(xl, args, c.Param("jobId"), skip, limit)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(candidates).WithRequestID(requestID).Send(c)
}

func (h *CandidateApiHandler) GetCandidate(c *gin.Context) {
	xl, requestID := requestContext(c)
	candidate, err := h.Candidate.GetCandidateByID(xl, c.Param("candidateId"))
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(candidate).WithRequestID(requestID).Send(c)
}

func (h *CandidateApiHandler) CreateCandidate(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := form.CandidateCreateForm{}
	if err := c.ShouldBindJSON(&args); err != nil {
		xl.Infof("bad candidate body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	if err := args.Validate(); err != nil {
		responseErr := model.NewResponseErrorValidation(err)
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	candidate := &model.CandidateDo{
		Name:              args.Name,
		Email:             args.Email,
		Phone:             args.Phone,
		Position:          args.Position,
		Department:        args.Department,
		JobID:             args.JobID,
		RecruiterID:       args.RecruiterID,
		Status:            args.Status,
		Source:            args.Source,
		ResumeURL:         args.ResumeURL,
		Skills:            args.Skills,
		Notes:             args.Notes,
		ExperienceYears:   args.ExperienceYears,
		SalaryExpectation: args.SalaryExpectation,
	}
	created, err := h.Candidate.CreateCandidate(xl, candidate)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(created).WithRequestID(requestID).SendStatus(c, http.StatusCreated)
}

func (h *CandidateApiHandler) UpdateCandidate(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := form.CandidateUpdateForm{}
	if err := c.ShouldBindJSON(&args); err != nil {
		xl.Infof("bad candidate body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	if err := args.Validate(); err != nil {
		responseErr := model.NewResponseErrorValidation(err)
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	fields := candidateUpdateFields(args)
	updated, err := h.Candidate.UpdateCandidate(xl, c.Param("candidateId"), fields)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(updated).WithRequestID(requestID).Send(c)
}

func (h *CandidateApiHandler) UpdateCandidateStatus(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := model.StatusPatchArgs{}
	if err := c.ShouldBindJSON(&args); err != nil || args.Status == "" {
		xl.Infof("bad status body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	updated, err := h.Candidate.UpdateCandidateStatus(xl, c.Param("candidateId"), args.Status, nil)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(updated).WithRequestID(requestID).Send(c)
}

func (h *CandidateApiHandler) DeleteCandidate(c *gin.Context) {
	xl, requestID := requestContext(c)
	if err := h.Candidate.DeleteCandidate(xl, c.Param("candidateId")); err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(nil).WithRequestID(requestID).SendStatus(c, http.StatusNoContent)
}

// candidateUpdateFields turns the set pointers into a $set document so
// absent fields stay untouched.
func candidateUpdateFields(args form.CandidateUpdateForm) bson.M {
	fields := bson.M{}
	if args.Name != nil {
		fields["name"] = *args.Name
	}
	if args.Email != nil {
		fields["email"] = *args.Email
	}
	if args.Phone != nil {
		fields["phone"] = *args.Phone
	}
	if args.Position != nil {
		fields["position"] = *args.Position
	}
	if args.Department != nil {
		fields["department"] = *args.Department
	}
	if args.JobID != nil {
		fields["jobId"] = *args.JobID
	}
	if args.RecruiterID != nil {
		fields["recruiterId"] = *args.RecruiterID
	}
	if args.Status != nil {
		fields["status"] = *args.Status
	}
	if args.Source != nil {
		fields["source"] = *args.Source
	}
	if args.ResumeURL != nil {
		fields["resumeUrl"] = *args.ResumeURL
	}
	if args.Skills != nil {
		fields["skills"] = *args.Skills
	}
	if args.Notes != nil {
		fields["notes"] = *args.Notes
	}
	if args.ExperienceYears != nil {
		fields["experienceYears"] = *args.ExperienceYears
	}
	if args.SalaryExpectation != nil {
		fields["salaryExpectation"] = *args.SalaryExpectation
	}
	return fields
}
