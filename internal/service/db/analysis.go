package db

import (
	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db/dao"
)

type AnalysisService struct {
	mongoClient   *mgo.Session
	jobColl       *mgo.Collection
	candidateColl *mgo.Collection
	xl            *xlog.Logger
}

func NewAnalysisService(conf *utils.Config, xl *xlog.Logger) (*AnalysisService, error) {
	if xl == nil {
		xl = xlog.New("recruit-cube-analysis")
	}
	mongoClient, err := mgo.Dial(conf.Mongo.URI)
	if err != nil {
		xl.Errorf("failed to create mongo client, error %v", err)
		return nil, err
	}
	database := mongoClient.DB(conf.Mongo.Database)
	return &AnalysisService{
		mongoClient:   mongoClient,
		jobColl:       database.C(dao.JobCollection),
		candidateColl: database.C(dao.CandidateCollection),
		xl:            xl,
	}, nil
}

// OpenJobsWithCandidates returns every open job with its evaluation
// sections and its applicants, the input of the scoring flow.
func (s *AnalysisService) OpenJobsWithCandidates(xl *xlog.Logger) ([]model.AnalysisJobResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	jobs := make([]model.JobDo, 0)
	filter := bson.M{"status": bson.M{"$in": model.JobStatusVariants(model.JobStatusOpen)}}
	if err := s.jobColl.Find(filter).All(&jobs); err != nil {
		xl.Errorf("failed to list open jobs, error %v", err)
		return nil, err
	}
	result := make([]model.AnalysisJobResponse, 0, len(jobs))
	for _, job := range jobs {
		candidates := make([]model.CandidateDo, 0)
		if err := s.candidateColl.Find(bson.M{"jobId": job.ID}).All(&candidates); err != nil {
			xl.Errorf("failed to list candidates of job %s, error %v", job.ID, err)
			return nil, err
		}
		result = append(result, model.AnalysisJobResponse{
			ID:              job.ID,
			Name:            job.Title,
			Field:           job.Department,
			RqBackground:    sectionOrEmpty(job.RqBackground),
			RqProject:       sectionOrEmpty(job.RqProject),
			RqSkill:         sectionOrEmpty(job.RqSkill),
			RqCertification: sectionOrEmpty(job.RqCertification),
			Candidates:      candidates,
		})
	}
	return result, nil
}

func sectionOrEmpty(section *model.EvaluationSection) model.EvaluationSection {
	if section == nil {
		return model.EvaluationSection{Criteria: []model.Criterion{}}
	}
	return *section
}
