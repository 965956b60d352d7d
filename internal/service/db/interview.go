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

type InterviewService struct {
	mongoClient   *mgo.Session
	interviewColl *mgo.Collection
	candidateColl *mgo.Collection
	jobColl       *mgo.Collection
	notification  *cloud.NotificationService
	xl            *xlog.Logger
}

func NewInterviewService(conf *utils.Config, xl *xlog.Logger) (*InterviewService, error) {
	if xl == nil {
		xl = xlog.New("recruit-cube-interview")
	}
	mongoClient, err := mgo.Dial(conf.Mongo.URI)
	if err != nil {
		xl.Errorf("failed to create mongo client, error %v", err)
		return nil, err
	}
	database := mongoClient.DB(conf.Mongo.Database)
	return &InterviewService{
		mongoClient:   mongoClient,
		interviewColl: database.C(dao.InterviewCollection),
		candidateColl: database.C(dao.CandidateCollection),
		jobColl:       database.C(dao.JobCollection),
		notification:  cloud.NewNotificationService(conf, xl),
		xl:            xl,
	}, nil
}

// ListInterviews filters by status, candidateId and jobId when given and
// joins candidate names and job titles onto the rows.
func (s *InterviewService) ListInterviews(xl *xlog.Logger, status, candidateID, jobID string, skip, limit int) ([]model.InterviewResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	filter := bson.M{}
	if status != "" {
		filter["status"] = bson.M{"$in": model.InterviewStatusVariants(status)}
	}
	if candidateID != "" {
		filter["candidateId"] = candidateID
	}
	if jobID != "" {
		filter["jobId"] = jobID
	}
	interviews := make([]model.InterviewDo, 0)
	err := s.interviewColl.Find(filter).Sort("-scheduledDate").Skip(skip).Limit(limit).All(&interviews)
	if err != nil {
		xl.Errorf("failed to list interviews, error %v", err)
		return nil, err
	}
	return s.enrich(xl, interviews)
}

// enrich resolves the candidate and job names in two $in queries and
// merges them onto the interview rows.
func (s *InterviewService) enrich(xl *xlog.Logger, interviews []model.InterviewDo) ([]model.InterviewResponse, error) {
	candidateIDs := make([]string, 0, len(interviews))
	jobIDs := make([]string, 0, len(interviews))
	for _, interview := range interviews {
		candidateIDs = append(candidateIDs, interview.CandidateID)
		jobIDs = append(jobIDs, interview.JobID)
	}
	candidates := make([]model.CandidateDo, 0)
	if err := s.candidateColl.Find(bson.M{"_id": bson.M{"$in": candidateIDs}}).All(&candidates); err != nil {
		xl.Errorf("failed to resolve candidate names, error %v", err)
		return nil, err
	}
	jobs := make([]model.JobDo, 0)
	if err := s.jobColl.Find(bson.M{"_id": bson.M{"$in": jobIDs}}).All(&jobs); err != nil {
		xl.Errorf("failed to resolve job titles, error %v", err)
		return nil, err
	}
	return EnrichInterviews(interviews, candidates, jobs), nil
}

// EnrichInterviews joins candidate names and job titles onto interviews.
// Missing references fall back to "Unknown Candidate" and "Unknown
// Position" so stale rows still render.
func EnrichInterviews(interviews []model.InterviewDo, candidates []model.CandidateDo, jobs []model.JobDo) []model.InterviewResponse {
	candidateNames := make(map[string]string, len(candidates))
	for _, candidate := range candidates {
		candidateNames[candidate.ID] = candidate.Name
	}
	jobTitles := make(map[string]string, len(jobs))
	for _, job := range jobs {
		jobTitles[job.ID] = job.Title
	}
	responses := make([]model.InterviewResponse, 0, len(interviews))
	for _, interview := range interviews {
		response := model.NewInterviewResponse(interview)
		response.CandidateName = candidateNames[interview.CandidateID]
		if response.CandidateName == "" {
			response.CandidateName = "Unknown Candidate"
		}
		response.JobTitle = jobTitles[interview.JobID]
		if response.JobTitle == "" {
			response.JobTitle = "Unknown Position"
		}
		responses = append(responses, response)
	}
	return responses
}

func (s *InterviewService) GetInterviewByID(xl *xlog.Logger, id string) (*model.InterviewDo, error) {
	if xl == nil {
		xl = s.xl
	}
	interview := new(model.InterviewDo)
	err := s.interviewColl.Find(bson.M{"_id": id}).One(interview)
	if err == mgo.ErrNotFound {
		return nil, &errors2.ServerError{Code: errors2.ServerErrorInterviewNotFound, Summary: "interview not found"}
	}
	if err != nil {
		xl.Errorf("failed to get interview %s, error %v", id, err)
		return nil, err
	}
	return interview, nil
}

// CreateInterview schedules an interview. Both the candidate and the job
// must exist; the job's interviews counter is bumped and the invitation
// mail goes out to the candidate. Mail failures are logged and swallowed.
func (s *InterviewService) CreateInterview(xl *xlog.Logger, interview *model.InterviewDo) (*model.InterviewDo, error) {
	if xl == nil {
		xl = s.xl
	}
	candidate := new(model.CandidateDo)
	err := s.candidateColl.Find(bson.M{"_id": interview.CandidateID}).One(candidate)
	if err == mgo.ErrNotFound {
		return nil, &errors2.ServerError{Code: errors2.ServerErrorCandidateNotFound, Summary: "candidate not found"}
	}
	if err != nil {
		xl.Errorf("failed to get candidate %s, error %v", interview.CandidateID, err)
		return nil, err
	}
	job := new(model.JobDo)
	err = s.jobColl.Find(bson.M{"_id": interview.JobID}).One(job)
	if err == mgo.ErrNotFound {
		return nil, &errors2.ServerError{Code: errors2.ServerErrorJobNotFound, Summary: "job not found"}
	}
	if err != nil {
		xl.Errorf("failed to get job %s, error %v", interview.JobID, err)
		return nil, err
	}
	now := time.Now()
	if interview.ID == "" {
		interview.ID = utils.GenerateID()
	}
	interview.Status = model.NormalizeInterviewStatus(interview.Status)
	if interview.Status == "" {
		interview.Status = model.InterviewStatusScheduled
	}
	interview.Type = model.NormalizeInterviewType(interview.Type)
	if interview.Type == "" {
		interview.Type = model.InterviewTypeVideo
	}
	interview.CreatedAt = now
	interview.UpdatedAt = now
	if err := s.interviewColl.Insert(interview); err != nil {
		xl.Errorf("failed to insert interview for candidate %s, error %v", interview.CandidateID, err)
		return nil, err
	}
	if err := incJobCounters(xl, s.jobColl, interview.JobID, 0, 1); err != nil {
		xl.Errorf("failed to bump interviews of job %s, error %v", interview.JobID, err)
	}
	if err := s.notification.SendInterviewScheduled(xl, candidate, interview); err != nil {
		xl.Errorf("invitation mail to %s failed, error %v", candidate.Email, err)
	}
	xl.Infof("scheduled interview %s for candidate %s", interview.ID, interview.CandidateID)
	return interview, nil
}

func (s *InterviewService) UpdateInterview(xl *xlog.Logger, id string, fields bson.M) (*model.InterviewDo, error) {
	if xl == nil {
		xl = s.xl
	}
	if status, ok := fields["status"].(string); ok {
		fields["status"] = model.NormalizeInterviewStatus(status)
	}
	if len(fields) > 0 {
		fields["updatedAt"] = time.Now()
		err := s.interviewColl.Update(bson.M{"_id": id}, bson.M{"$set": fields})
		if err == mgo.ErrNotFound {
			return nil, &errors2.ServerError{Code: errors2.ServerErrorInterviewNotFound, Summary: "interview not found"}
		}
		if err != nil {
			xl.Errorf("failed to update interview %s, error %v", id, err)
			return nil, err
		}
	}
	return s.GetInterviewByID(xl, id)
}

// UpdateInterviewStatus transitions an interview between the scheduling
// states.
func (s *InterviewService) UpdateInterviewStatus(xl *xlog.Logger, id string, status string) (*model.InterviewDo, error) {
	return s.UpdateInterview(xl, id, bson.M{"status": status})
}

// SubmitResult stores the structured outcome and marks the interview
// completed. A positive hiring recommendation moves the candidate to the
// offer stage.
func (s *InterviewService) SubmitResult(xl *xlog.Logger, id string, result *model.InterviewResultDo) (*model.InterviewDo, error) {
	if xl == nil {
		xl = s.xl
	}
	interview, err := s.GetInterviewByID(xl, id)
	if err != nil {
		return nil, err
	}
	err = s.interviewColl.Update(bson.M{"_id": id}, bson.M{"$set": bson.M{
		"result":    result,
		"status":    model.InterviewStatusCompleted,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		xl.Errorf("failed to store result of interview %s, error %v", id, err)
		return nil, err
	}
	if result.HiringRecommendation {
		err := s.candidateColl.Update(bson.M{"_id": interview.CandidateID}, bson.M{"$set": bson.M{
			"status":    model.CandidateStatusOffer,
			"updatedAt": time.Now(),
		}})
		if err != nil && err != mgo.ErrNotFound {
			xl.Errorf("failed to move candidate %s to offer, error %v", interview.CandidateID, err)
		}
	}
	return s.GetInterviewByID(xl, id)
}

// DeleteInterview removes the interview and rolls the job counter back.
func (s *InterviewService) DeleteInterview(xl *xlog.Logger, id string) error {
	if xl == nil {
		xl = s.xl
	}
	interview, err := s.GetInterviewByID(xl, id)
	if err != nil {
		return err
	}
	if err := s.interviewColl.Remove(bson.M{"_id": id}); err != nil {
		xl.Errorf("failed to delete interview %s, error %v", id, err)
		return err
	}
	if interview.JobID != "" {
		if err := incJobCounters(xl, s.jobColl, interview.JobID, 0, -1); err != nil {
			xl.Errorf("failed to roll back interviews of job %s, error %v", interview.JobID, err)
		}
	}
	xl.Infof("deleted interview %s", id)
	return nil
}
