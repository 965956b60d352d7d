package db

import (
	"time"

	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	errors2 "github.com/solutions/recruit-cube/internal/protodef/errors"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/cloud"
	"github.com/solutions/recruit-cube/internal/service/db/dao"
)

type CandidateService struct {
	mongoClient   *mgo.Session
	candidateColl *mgo.Collection
	jobColl       *mgo.Collection
	interviewColl *mgo.Collection
	notification  *cloud.NotificationService
	xl            *xlog.Logger
}

func NewCandidateService(conf *utils.Config, xl *xlog.Logger) (*CandidateService, error) {
	if xl == nil {
		xl = xlog.New("recruit-cube-candidate")
	}
	mongoClient, err := mgo.Dial(conf.Mongo.URI)
	if err != nil {
		xl.Errorf("failed to create mongo client, error %v", err)
		return nil, err
	}
	database := mongoClient.DB(conf.Mongo.Database)
	return &CandidateService{
		mongoClient:   mongoClient,
		candidateColl: database.C(dao.CandidateCollection),
		jobColl:       database.C(dao.JobCollection),
		interviewColl: database.C(dao.InterviewCollection),
		notification:  cloud.NewNotificationService(conf, xl),
		xl:            xl,
	}, nil
}

// ListCandidates filters by status and jobId when given; search matches
// name, email and position case-insensitively.
func (s *CandidateService) ListCandidates(xl *xlog.Logger, args model.ListQueryArgs, jobID string, skip, limit int) ([]model.CandidateDo, error) {
	if xl == nil {
		xl = s.xl
	}
	filter := bson.M{}
	if args.Status != "" {
		filter["status"] = bson.M{"$in": model.CandidateStatusVariants(args.Status)}
	}
	if jobID != "" {
		filter["jobId"] = jobID
	}
	if args.Search != "" {
		pattern := bson.RegEx{Pattern: args.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"name": pattern},
			{"email": pattern},
			{"position": pattern},
		}
	}
	candidates := make([]model.CandidateDo, 0)
	err := s.candidateColl.Find(filter).Sort("-appliedDate").Skip(skip).Limit(limit).All(&candidates)
	if err != nil {
		xl.Errorf("failed to list candidates, error %v", err)
		return nil, err
	}
	return candidates, nil
}

func (s *CandidateService) GetCandidateByID(xl *xlog.Logger, id string) (*model.CandidateDo, error) {
	if xl == nil {
		xl = s.xl
	}
	candidate := new(model.CandidateDo)
	err := s.candidateColl.Find(bson.M{"_id": id}).One(candidate)
	if err == mgo.ErrNotFound {
		return nil, &errors2.ServerError{Code: errors2.ServerErrorCandidateNotFound, Summary: "candidate not found"}
	}
	if err != nil {
		xl.Errorf("failed to get candidate %s, error %v", id, err)
		return nil, err
	}
	return candidate, nil
}

// CreateCandidate inserts a candidate. Email must be unique; when jobId
// is set the job must exist and its applicants counter is bumped.
func (s *CandidateService) CreateCandidate(xl *xlog.Logger, candidate *model.CandidateDo) (*model.CandidateDo, error) {
	if xl == nil {
		xl = s.xl
	}
	count, err := s.candidateColl.Find(bson.M{"email": candidate.Email}).Count()
	if err != nil {
		xl.Errorf("failed to check candidate email %s, error %v", candidate.Email, err)
		return nil, err
	}
	if count > 0 {
		return nil, &errors2.ServerError{Code: errors2.ServerErrorDuplicateEmail, Summary: "candidate email already exists"}
	}
	now := time.Now()
	if candidate.ID == "" {
		candidate.ID = utils.GenerateID()
	}
	candidate.Status = model.NormalizeCandidateStatus(candidate.Status)
	if candidate.Status == "" {
		candidate.Status = model.CandidateStatusNew
	}
	if candidate.JobID != "" {
		job := new(model.JobDo)
		err := s.jobColl.Find(bson.M{"_id": candidate.JobID}).One(job)
		if err == mgo.ErrNotFound {
			return nil, &errors2.ServerError{Code: errors2.ServerErrorJobNotFound, Summary: "job not found"}
		}
		if err != nil {
			xl.Errorf("failed to get job %s, error %v", candidate.JobID, err)
			return nil, err
		}
		if candidate.Position == "" {
			candidate.Position = job.Title
		}
	}
	if candidate.AppliedDate.IsZero() {
		candidate.AppliedDate = now
	}
	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	if err := s.candidateColl.Insert(candidate); err != nil {
		xl.Errorf("failed to insert candidate %s, error %v", candidate.Email, err)
		return nil, err
	}
	if candidate.JobID != "" {
		if err := incJobCounters(xl, s.jobColl, candidate.JobID, 1, 0); err != nil {
			xl.Errorf("failed to bump applicants of job %s, error %v", candidate.JobID, err)
		}
	}
	xl.Infof("created candidate %s for job %q", candidate.ID, candidate.JobID)
	return candidate, nil
}

func (s *CandidateService) UpdateCandidate(xl *xlog.Logger, id string, fields bson.M) (*model.CandidateDo, error) {
	if xl == nil {
		xl = s.xl
	}
	if status, ok := fields["status"].(string); ok {
		return s.UpdateCandidateStatus(xl, id, status, fields)
	}
	if len(fields) > 0 {
		fields["updatedAt"] = time.Now()
		err := s.candidateColl.Update(bson.M{"_id": id}, bson.M{"$set": fields})
		if err == mgo.ErrNotFound {
			return nil, &errors2.ServerError{Code: errors2.ServerErrorCandidateNotFound, Summary: "candidate not found"}
		}
		if err != nil {
			xl.Errorf("failed to update candidate %s, error %v", id, err)
			return nil, err
		}
	}
	return s.GetCandidateByID(xl, id)
}

// UpdateCandidateStatus transitions a candidate and fires the acceptance
// or rejection mail on hired and rejected. Mail failures are logged and
// swallowed so the transition itself stands.
func (s *CandidateService) UpdateCandidateStatus(xl *xlog.Logger, id string, status string, extra bson.M) (*model.CandidateDo, error) {
	if xl == nil {
		xl = s.xl
	}
	normalized := model.NormalizeCandidateStatus(status)
	fields := bson.M{}
	for key, value := range extra {
		fields[key] = value
	}
	fields["status"] = normalized
	fields["updatedAt"] = time.Now()
	err := s.candidateColl.Update(bson.M{"_id": id}, bson.M{"$set": fields})
	if err == mgo.ErrNotFound {
		return nil, &errors2.ServerError{Code: errors2.ServerErrorCandidateNotFound, Summary: "candidate not found"}
	}
	if err != nil {
		xl.Errorf("failed to update status of candidate %s, error %v", id, err)
		return nil, err
	}
	candidate, err := s.GetCandidateByID(xl, id)
	if err != nil {
		return nil, err
	}
	switch normalized {
	case model.CandidateStatusHired:
		if err := s.notification.SendAcceptance(xl, candidate); err != nil {
			xl.Errorf("acceptance mail to %s failed, error %v", candidate.Email, err)
		}
	case model.CandidateStatusRejected:
		if err := s.notification.SendRejection(xl, candidate); err != nil {
			xl.Errorf("rejection mail to %s failed, error %v", candidate.Email, err)
		}
	}
	return candidate, nil
}

// DeleteCandidate removes the candidate together with their interviews
// and rolls the job counters back.
func (s *CandidateService) DeleteCandidate(xl *xlog.Logger, id string) error {
	if xl == nil {
		xl = s.xl
	}
	candidate, err := s.GetCandidateByID(xl, id)
	if err != nil {
		return err
	}
	removed, err := s.interviewColl.RemoveAll(bson.M{"candidateId": id})
	if err != nil {
		xl.Errorf("failed to remove interviews of candidate %s, error %v", id, err)
		return err
	}
	if err := s.candidateColl.Remove(bson.M{"_id": id}); err != nil {
		xl.Errorf("failed to delete candidate %s, error %v", id, err)
		return err
	}
	if candidate.JobID != "" {
		if err := incJobCounters(xl, s.jobColl, candidate.JobID, -1, -removed.Removed); err != nil {
			xl.Errorf("failed to roll back counters of job %s, error %v", candidate.JobID, err)
		}
	}
	xl.Infof("deleted candidate %s and %d interviews", id, removed.Removed)
	return nil
}
