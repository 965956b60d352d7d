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

type JobApiHandler struct {
	Job JobInterface
}

type JobInterface interface {
	ListJobs(xl *xlog.Logger, args model.ListQueryArgs, skip, limit int) ([]model.JobDo, error)
	GetJobByID(xl *xlog.Logger, id string) (*model.JobDo, error)
	CreateJob(xl *xlog.Logger, job *model.JobDo) (*model.JobDo, error)
	UpdateJob(xl *xlog.Logger, id string, fields bson.M) (*model.JobDo, error)
	UpdateJobStatus(xl *xlog.Logger, id string, status string) (*model.JobDo, error)
	DeleteJob(xl *xlog.Logger, id string) error
}

func NewJobApiHandler(conf *utils.Config) *JobApiHandler {
	h := new(JobApiHandler)
	jobService, err := db.NewJobService(*conf.Mongo, nil)
	if err != nil {
		panic(err)
	}
	h.Job = jobService
	return h
}

func (h *JobApiHandler) ListJobs(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := model.ListQueryArgs{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Search:     c.Query("search"),
	}
	skip, limit := middleware.PageInfo(c)
	jobs, err := h.Job.ListJobs(xl, args, skip, limit)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(jobs).WithRequestID(requestID).Send(c)
}

// ListDepartmentJobs lists the jobs of one department.
func (h *JobApiHandler) ListDepartmentJobs(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := model.ListQueryArgs{
		Status:     c.Query("status"),
		Department: c.Param("department"),
	}
	skip, limit := middleware.PageInfo(c)
	jobs, err := h.Job.ListJobs(xl, args, skip, limit)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(jobs).WithRequestID(requestID).Send(c)
}

func (h *JobApiHandler) GetJob(c *gin.Context) {
	xl, requestID := requestContext(c)
	job, err := h.Job.GetJobByID(xl, c.Param("jobId"))
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(job).WithRequestID(requestID).Send(c)
}

func (h *JobApiHandler) CreateJob(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := form.JobCreateForm{}
	if err := c.ShouldBindJSON(&args); err != nil {
		xl.Infof("bad job body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	if err := args.Validate(); err != nil {
		responseErr := model.NewResponseErrorValidation(err)
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	job := &model.JobDo{
		Title:            args.Title,
		Department:       args.Department,
		CreatedBy:        args.CreatedBy,
		HiringManagerID:  args.HiringManagerID,
		Location:         args.Location,
		Type:             args.Type,
		Status:           args.Status,
		Description:      args.Description,
		Requirements:     args.Requirements,
		Responsibilities: args.Responsibilities,
		IsRemote:         args.IsRemote,
		SalaryMin:        args.SalaryMin,
		SalaryMax:        args.SalaryMax,
		RqBackground:     args.RqBackground,
		RqProject:        args.RqProject,
		RqSkill:          args.RqSkill,
		RqCertification:  args.RqCertification,
	}
	created, err := h.Job.CreateJob(xl, job)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(created).WithRequestID(requestID).SendStatus(c, http.StatusCreated)
}

func (h *JobApiHandler) UpdateJob(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := form.JobUpdateForm{}
	if err := c.ShouldBindJSON(&args); err != nil {
		xl.Infof("bad job body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	if err := args.Validate(); err != nil {
		responseErr := model.NewResponseErrorValidation(err)
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	updated, err := h.Job.UpdateJob(xl, c.Param("jobId"), jobUpdateFields(args))
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(updated).WithRequestID(requestID).Send(c)
}

func (h *JobApiHandler) UpdateJobStatus(c *gin.Context) {
	xl, requestID := requestContext(c)
	args := model.StatusPatchArgs{}
	if err := c.ShouldBindJSON(&args); err != nil || args.Status == "" {
		xl.Infof("bad status body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(responseErr).WithRequestID(requestID).SendStatus(c, responseErr.HTTPStatus())
		return
	}
	updated, err := h.Job.UpdateJobStatus(xl, c.Param("jobId"), args.Status)
	if err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(updated).WithRequestID(requestID).Send(c)
}

func (h *JobApiHandler) DeleteJob(c *gin.Context) {
	xl, requestID := requestContext(c)
	if err := h.Job.DeleteJob(xl, c.Param("jobId")); err != nil {
		sendServiceError(c, requestID, err)
		return
	}
	model.NewSuccessResponse(nil).WithRequestID(requestID).SendStatus(c, http.StatusNoContent)
}

func jobUpdateFields(args form.JobUpdateForm) bson.M {
	fields := bson.M{}
	if args.Title != nil {
		fields["title"] = *args.Title
	}
	if args.Department != nil {
		fields["department"] = *args.Department
	}
	if args.HiringManagerID != nil {
		fields["hiringManagerId"] = *args.HiringManagerID
	}
	if args.Location != nil {
		fields["location"] = *args.Location
	}
	if args.Type != nil {
		fields["type"] = *args.Type
	}
	if args.Status != nil {
		fields["status"] = *args.Status
	}
	if args.Description != nil {
		fields["description"] = *args.Description
	}
	if args.Requirements != nil {
		fields["requirements"] = *args.Requirements
	}
	if args.Responsibilities != nil {
		fields["responsibilities"] = *args.Responsibilities
	}
	if args.IsRemote != nil {
		fields["isRemote"] = *args.IsRemote
	}
	if args.SalaryMin != nil {
		fields["salaryMin"] = *args.SalaryMin
	}
	if args.SalaryMax != nil {
		fields["salaryMax"] = *args.SalaryMax
	}
	if args.RqBackground != nil {
		fields["rqBackground"] = *args.RqBackground
	}
	if args.RqProject != nil {
		fields["rqProject"] = *args.RqProject
	}
	if args.RqSkill != nil {
		fields["rqSkill"] = *args.RqSkill
	}
	if args.RqCertification != nil {
		fields["rqCertification"] = *args.RqCertification
	}
	return fields
}
