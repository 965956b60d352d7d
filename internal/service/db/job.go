package db

import (
	"time"

	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	errors2 "github.com/solutions/recruit-cube/internal/protodef/errors"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db/dao"
)

type JobService struct {
	mongoClient *mgo.Session
	jobColl     *mgo.Collection
	xl          *xlog.Logger
}

func NewJobService(conf utils.MongoConfig, xl *xlog.Logger) (*JobService, error) {
	if xl == nil {
		xl = xlog.New("recruit-cube-job")
	}
	mongoClient, err := mgo.Dial(conf.URI)
	if err != nil {
		xl.Errorf("failed to create mongo client, error %v", err)
		return nil, err
	}
	jobColl := mongoClient.DB(conf.Database).C(dao.JobCollection)
	return &JobService{
		mongoClient: mongoClient,
		jobColl:     jobColl,
		xl:          xl,
	}, nil
}

// ListJobs filters by status and department when given; search matches
// title and description case-insensitively.
func (s *JobService) ListJobs(xl *xlog.Logger, args model.ListQueryArgs, skip, limit int) ([]model.JobDo, error) {
	if xl == nil {
		xl = s.xl
	}
	filter := bson.M{}
	if args.Status != "" {
		filter["status"] = bson.M{"$in": model.JobStatusVariants(args.Status)}
	}
	if args.Department != "" {
		filter["department"] = args.Department
	}
	if args.Search != "" {
		pattern := bson.RegEx{Pattern: args.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
		}
	}
	jobs := make([]model.JobDo, 0)
	err := s.jobColl.Find(filter).Sort("-createdAt").Skip(skip).Limit(limit).All(&jobs)
	if err != nil {
		xl.Errorf("failed to list jobs, error %v", err)
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) GetJobByID(xl *xlog.Logger, id string) (*model.JobDo, error) {
	if xl == nil {
		xl = s.xl
	}
	job := new(model.JobDo)
	err := s.jobColl.Find(bson.M{"_id": id}).One(job)
	if err == mgo.ErrNotFound {
		return nil, &errors2.ServerError{Code: errors2.ServerErrorJobNotFound, Summary: "job not found"}
	}
	if err != nil {
		xl.Errorf("failed to get job %s, error %v", id, err)
		return nil, err
	}
	return job, nil
}

func (s *JobService) CreateJob(xl *xlog.Logger, job *model.JobDo) (*model.JobDo, error) {
	if xl == nil {
		xl = s.xl
	}
	now := time.Now()
	if job.ID == "" {
		job.ID = utils.GenerateID()
	}
	job.Status = model.NormalizeJobStatus(job.Status)
	if job.Status == "" {
		job.Status = model.JobStatusDraft
	}
	if job.Status == model.JobStatusOpen && job.PostedDate == nil {
		job.PostedDate = &now
	}
	job.Applicants = 0
	job.Interviews = 0
	job.CreatedAt = now
	job.UpdatedAt = now
	if err := s.jobColl.Insert(job); err != nil {
		xl.Errorf("failed to insert job %s, error %v", job.Title, err)
		return nil, err
	}
	xl.Infof("created job %s status %s", job.ID, job.Status)
	return job, nil
}

func (s *JobService) UpdateJob(xl *xlog.Logger, id string, fields bson.M) (*model.JobDo, error) {
	if xl == nil {
		xl = s.xl
	}
	if status, ok := fields["status"].(string); ok {
		normalized := model.NormalizeJobStatus(status)
		fields["status"] = normalized
		if err := s.applyStatusDates(xl, id, normalized, fields); err != nil {
			return nil, err
		}
	}
	if len(fields) > 0 {
		fields["updatedAt"] = time.Now()
		err := s.jobColl.Update(bson.M{"_id": id}, bson.M{"$set": fields})
		if err == mgo.ErrNotFound {
			return nil, &errors2.ServerError{Code: errors2.ServerErrorJobNotFound, Summary: "job not found"}
		}
		if err != nil {
			xl.Errorf("failed to update job %s, error %v", id, err)
			return nil, err
		}
	}
	return s.GetJobByID(xl, id)
}

// UpdateJobStatus transitions a job, stamping postedDate the first time
// it opens and closedDate when it closes.
func (s *JobService) UpdateJobStatus(xl *xlog.Logger, id string, status string) (*model.JobDo, error) {
	return s.UpdateJob(xl, id, bson.M{"status": status})
}

func (s *JobService) applyStatusDates(xl *xlog.Logger, id string, status string, fields bson.M) error {
	switch status {
	case model.JobStatusOpen:
		current, err := s.GetJobByID(xl, id)
		if err != nil {
			return err
		}
		if current.PostedDate == nil {
			fields["postedDate"] = time.Now()
		}
	case model.JobStatusClosed:
		fields["closedDate"] = time.Now()
	}
	return nil
}

func (s *JobService) DeleteJob(xl *xlog.Logger, id string) error {
	if xl == nil {
		xl = s.xl
	}
	err := s.jobColl.Remove(bson.M{"_id": id})
	if err == mgo.ErrNotFound {
		return &errors2.ServerError{Code: errors2.ServerErrorJobNotFound, Summary: "job not found"}
	}
	if err != nil {
		xl.Errorf("failed to delete job %s, error %v", id, err)
	}
	return err
}

// RecountJobCounters recomputes one job's applicants and interviews from
// the source collections, used by the periodic reconcile task.
func (s *JobService) RecountJobCounters(xl *xlog.Logger, id string, applicants, interviews int) error {
	if xl == nil {
		xl = s.xl
	}
	err := s.jobColl.Update(bson.M{"_id": id}, bson.M{"$set": bson.M{
		"applicants": applicants,
		"interviews": interviews,
	}})
	if err != nil && err != mgo.ErrNotFound {
		xl.Errorf("failed to recount counters of job %s, error %v", id, err)
		return err
	}
	return nil
}

// JobCounters returns every job's id and stored counter values, for the
// reconcile task to diff against fresh counts.
func (s *JobService) JobCounters(xl *xlog.Logger) ([]JobCounterRow, error) {
	if xl == nil {
		xl = s.xl
	}
	rows := make([]JobCounterRow, 0)
	if err := s.jobColl.Find(bson.M{}).Select(bson.M{"applicants": 1, "interviews": 1}).All(&rows); err != nil {
		xl.Errorf("failed to list job counters, error %v", err)
		return nil, err
	}
	return rows, nil
}
