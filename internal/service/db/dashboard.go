package db

import (
	"time"

	"github.com/qiniu/x/xlog"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
	"github.com/solutions/recruit-cube/internal/service/db/dao"
)

// timestampLayout matches the ISO shape the dashboard consumers expect.
const timestampLayout = "2006-01-02T15:04:05.000Z"

type DashboardService struct {
	mongoClient   *mgo.Session
	jobColl       *mgo.Collection
	candidateColl *mgo.Collection
	interviewColl *mgo.Collection
	conf          utils.DashboardConfig
	xl            *xlog.Logger
}

func NewDashboardService(conf *utils.Config, xl *xlog.Logger) (*DashboardService, error) {
	if xl == nil {
		xl = xlog.New("recruit-cube-dashboard")
	}
	mongoClient, err := mgo.Dial(conf.Mongo.URI)
	if err != nil {
		xl.Errorf("failed to create mongo client, error %v", err)
		return nil, err
	}
	database := mongoClient.DB(conf.Mongo.Database)
	return &DashboardService{
		mongoClient:   mongoClient,
		jobColl:       database.C(dao.JobCollection),
		candidateColl: database.C(dao.CandidateCollection),
		interviewColl: database.C(dao.InterviewCollection),
		conf:          conf.Dashboard,
		xl:            xl,
	}, nil
}

// ComputeSummaryStats builds the headline numbers for the range. Every
// change field is a rounded percentage except activeJobsChange, which is
// the raw difference against jobs opened in the previous period.
func (s *DashboardService) ComputeSummaryStats(xl *xlog.Logger, rangeName string, now time.Time) (*model.SummaryStatsResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	start := PeriodStart(rangeName, now)
	previousStart := PreviousPeriodStart(rangeName, start)

	openStatuses := bson.M{"$in": model.JobStatusVariants(model.JobStatusOpen)}
	activeJobs, err := s.jobColl.Find(bson.M{"status": openStatuses}).Count()
	if err != nil {
		xl.Errorf("failed to count active jobs, error %v", err)
		return nil, err
	}
	prevActiveJobs, err := s.jobColl.Find(bson.M{
		"status":    openStatuses,
		"createdAt": bson.M{"$gte": previousStart, "$lt": start},
	}).Count()
	if err != nil {
		xl.Errorf("failed to count previous active jobs, error %v", err)
		return nil, err
	}

	newApplications, err := s.candidateColl.Find(bson.M{"createdAt": bson.M{"$gte": start}}).Count()
	if err != nil {
		xl.Errorf("failed to count new applications, error %v", err)
		return nil, err
	}
	prevApplications, err := s.candidateColl.Find(bson.M{"createdAt": bson.M{"$gte": previousStart, "$lt": start}}).Count()
	if err != nil {
		return nil, err
	}

	hiredStatuses := bson.M{"$in": model.CandidateStatusVariants(model.CandidateStatusHired)}
	positionsFilled, err := s.candidateColl.Find(bson.M{
		"status":    hiredStatuses,
		"updatedAt": bson.M{"$gte": start},
	}).Count()
	if err != nil {
		return nil, err
	}
	prevFilled, err := s.candidateColl.Find(bson.M{
		"status":    hiredStatuses,
		"updatedAt": bson.M{"$gte": previousStart, "$lt": start},
	}).Count()
	if err != nil {
		return nil, err
	}

	inactive := append(model.InterviewStatusVariants(model.InterviewStatusCancelled),
		model.InterviewStatusVariants(model.InterviewStatusCompleted)...)
	scheduledInterviews, err := s.interviewColl.Find(bson.M{
		"scheduledDate": bson.M{"$gte": start},
		"status":        bson.M{"$nin": inactive},
	}).Count()
	if err != nil {
		xl.Errorf("failed to count scheduled interviews, error %v", err)
		return nil, err
	}
	prevInterviews, err := s.interviewColl.Find(bson.M{
		"scheduledDate": bson.M{"$gte": previousStart, "$lt": start},
		"status":        bson.M{"$nin": inactive},
	}).Count()
	if err != nil {
		return nil, err
	}

	return &model.SummaryStatsResponse{
		ActiveJobs:          activeJobs,
		ActiveJobsChange:    activeJobs - prevActiveJobs,
		NewApplications:     newApplications,
		ApplicationsChange:  PercentageChange(newApplications, prevApplications),
		ScheduledInterviews: scheduledInterviews,
		InterviewsChange:    PercentageChange(scheduledInterviews, prevInterviews),
		PositionsFilled:     positionsFilled,
		FilledChange:        PercentageChange(positionsFilled, prevFilled),
	}, nil
}

// JobsByDepartment groups jobs created in the range by department,
// descending by count. Rows predating the createdAt field count too.
func (s *DashboardService) JobsByDepartment(xl *xlog.Logger, rangeName string, now time.Time) ([]model.DepartmentCountResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	start := PeriodStart(rangeName, now)
	pipeline := []bson.M{
		{"$match": bson.M{"$or": []bson.M{
			{"createdAt": bson.M{"$gte": start}},
			{"createdAt": bson.M{"$exists": false}},
		}}},
		{"$group": bson.M{"_id": "$department", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}
	var rows []struct {
		Department string `bson:"_id"`
		Count      int    `bson:"count"`
	}
	if err := s.jobColl.Pipe(pipeline).All(&rows); err != nil {
		xl.Errorf("failed to group jobs by department, error %v", err)
		return nil, err
	}
	result := make([]model.DepartmentCountResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.DepartmentCountResponse{Department: row.Department, Count: row.Count})
	}
	return result, nil
}

// HiringFunnel counts candidates created in the range per stage, in the
// fixed funnel order with absent stages zero-filled.
func (s *DashboardService) HiringFunnel(xl *xlog.Logger, rangeName string, now time.Time) ([]model.FunnelStageResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	start := PeriodStart(rangeName, now)
	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": start}}},
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	var rows []struct {
		Status string `bson:"_id"`
		Count  int    `bson:"count"`
	}
	if err := s.candidateColl.Pipe(pipeline).All(&rows); err != nil {
		xl.Errorf("failed to group candidates by stage, error %v", err)
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[model.NormalizeCandidateStatus(row.Status)] += row.Count
	}
	return FillFunnel(counts), nil
}

// RecentApplications lists the newest candidates of the range with their
// job title joined on, capped at the configured limit.
func (s *DashboardService) RecentApplications(xl *xlog.Logger, rangeName string, now time.Time) ([]model.RecentApplicationResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	start := PeriodStart(rangeName, now)
	limit := s.conf.RecentApplicationsLimit
	if limit <= 0 {
		limit = 10
	}
	candidates := make([]model.CandidateDo, 0)
	err := s.candidateColl.Find(bson.M{"createdAt": bson.M{"$gte": start}}).
		Sort("-createdAt").Limit(limit).All(&candidates)
	if err != nil {
		xl.Errorf("failed to list recent applications, error %v", err)
		return nil, err
	}
	titles, err := s.jobTitles(xl, candidateJobIDs(candidates))
	if err != nil {
		return nil, err
	}
	rows := make([]model.RecentApplicationResponse, 0, len(candidates))
	for _, candidate := range candidates {
		position := titles[candidate.JobID]
		if position == "" {
			position = candidate.Position
		}
		if position == "" {
			position = "Unknown"
		}
		name := candidate.Name
		if name == "" {
			name = "Unknown"
		}
		status := "Pending"
		if candidate.Status != "" {
			status = utils.Capitalize(model.NormalizeCandidateStatus(candidate.Status))
		}
		rows = append(rows, model.RecentApplicationResponse{
			ID:          candidate.ID,
			Candidate:   name,
			Position:    position,
			AppliedDate: candidate.CreatedAt.UTC().Format(timestampLayout),
			Status:      status,
		})
	}
	return rows, nil
}

// UpcomingInterviews lists interviews scheduled within the next `days`
// days, skipping cancelled and completed ones, earliest first.
func (s *DashboardService) UpcomingInterviews(xl *xlog.Logger, days, limit int, now time.Time) ([]model.UpcomingInterviewResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	if days <= 0 {
		days = s.conf.UpcomingInterviewsDays
	}
	if limit <= 0 {
		limit = s.conf.UpcomingInterviewsLimit
	}
	end := now.AddDate(0, 0, days)
	inactive := append(model.InterviewStatusVariants(model.InterviewStatusCancelled),
		model.InterviewStatusVariants(model.InterviewStatusCompleted)...)
	interviews := make([]model.InterviewDo, 0)
	err := s.interviewColl.Find(bson.M{
		"scheduledDate": bson.M{"$gte": now, "$lte": end},
		"status":        bson.M{"$nin": inactive},
	}).Sort("scheduledDate").Limit(limit).All(&interviews)
	if err != nil {
		xl.Errorf("failed to list upcoming interviews, error %v", err)
		return nil, err
	}
	candidateNames, err := s.candidateNames(xl, interviewCandidateIDs(interviews))
	if err != nil {
		return nil, err
	}
	jobTitles, err := s.jobTitles(xl, interviewJobIDs(interviews))
	if err != nil {
		return nil, err
	}
	rows := make([]model.UpcomingInterviewResponse, 0, len(interviews))
	for _, interview := range interviews {
		name := candidateNames[interview.CandidateID]
		if name == "" {
			name = "Unknown"
		}
		title := jobTitles[interview.JobID]
		if title == "" {
			title = "Unknown Position"
		}
		kind := "Interview"
		if interview.Type != "" {
			kind = utils.Capitalize(model.NormalizeInterviewType(interview.Type))
		}
		rows = append(rows, model.UpcomingInterviewResponse{
			ID:            interview.ID,
			CandidateName: name,
			JobTitle:      title,
			ScheduledAt:   interview.ScheduledDate.UTC().Format(timestampLayout),
			Type:          kind,
		})
	}
	return rows, nil
}

// RecentActivity merges the newest candidates, interviews and jobs into
// one feed, each source capped at limit before the merge.
func (s *DashboardService) RecentActivity(xl *xlog.Logger, limit int) ([]model.ActivityResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	if limit <= 0 {
		limit = s.conf.RecentActivityLimit
	}

	candidates := make([]model.CandidateDo, 0)
	if err := s.candidateColl.Find(bson.M{}).Sort("-createdAt").Limit(limit).All(&candidates); err != nil {
		xl.Errorf("failed to list candidate activity, error %v", err)
		return nil, err
	}
	interviews := make([]model.InterviewDo, 0)
	if err := s.interviewColl.Find(bson.M{}).Sort("-createdAt").Limit(limit).All(&interviews); err != nil {
		xl.Errorf("failed to list interview activity, error %v", err)
		return nil, err
	}
	jobs := make([]model.JobDo, 0)
	if err := s.jobColl.Find(bson.M{}).Sort("-createdAt").Limit(limit).All(&jobs); err != nil {
		xl.Errorf("failed to list job activity, error %v", err)
		return nil, err
	}

	jobIDs := candidateJobIDs(candidates)
	jobIDs = append(jobIDs, interviewJobIDs(interviews)...)
	jobTitles, err := s.jobTitles(xl, jobIDs)
	if err != nil {
		return nil, err
	}
	candidateNames, err := s.candidateNames(xl, interviewCandidateIDs(interviews))
	if err != nil {
		return nil, err
	}

	candidateFeed := make([]model.ActivityResponse, 0, len(candidates))
	for _, candidate := range candidates {
		actor := candidate.Name
		if actor == "" {
			actor = "Unknown Candidate"
		}
		target := jobTitles[candidate.JobID]
		if target == "" {
			target = "Unknown Position"
		}
		candidateFeed = append(candidateFeed, model.ActivityResponse{
			ID:        "candidate_" + candidate.ID,
			Type:      "application",
			Actor:     actor,
			Action:    "applied for",
			Target:    target,
			Timestamp: candidate.CreatedAt,
		})
	}
	interviewFeed := make([]model.ActivityResponse, 0, len(interviews))
	for _, interview := range interviews {
		actor := candidateNames[interview.CandidateID]
		if actor == "" {
			actor = "Unknown Candidate"
		}
		target := jobTitles[interview.JobID]
		if target == "" {
			target = "Unknown Position"
		}
		interviewFeed = append(interviewFeed, model.ActivityResponse{
			ID:        "interview_" + interview.ID,
			Type:      "interview",
			Actor:     actor,
			Action:    "scheduled for",
			Target:    target,
			Timestamp: interview.CreatedAt,
		})
	}
	jobFeed := make([]model.ActivityResponse, 0, len(jobs))
	for _, job := range jobs {
		actor := job.Title
		if actor == "" {
			actor = "Unknown Position"
		}
		jobFeed = append(jobFeed, model.ActivityResponse{
			ID:        "job_" + job.ID,
			Type:      "job_posting",
			Actor:     actor,
			Action:    "was posted",
			Target:    job.Department,
			Timestamp: job.CreatedAt,
		})
	}
	return MergeActivities(limit, candidateFeed, interviewFeed, jobFeed), nil
}

// ApplicationTrend buckets applications, interviews and offers created
// in the rolling window of the range.
func (s *DashboardService) ApplicationTrend(xl *xlog.Logger, rangeName string, now time.Time) ([]model.TrendPointResponse, error) {
	if xl == nil {
		xl = s.xl
	}
	start := TrendWindowStart(rangeName, now)

	candidates := make([]model.CandidateDo, 0)
	err := s.candidateColl.Find(bson.M{"createdAt": bson.M{"$gte": start}}).
		Select(bson.M{"createdAt": 1, "status": 1}).All(&candidates)
	if err != nil {
		xl.Errorf("failed to load application trend rows, error %v", err)
		return nil, err
	}
	interviews := make([]model.InterviewDo, 0)
	err = s.interviewColl.Find(bson.M{"createdAt": bson.M{"$gte": start}}).
		Select(bson.M{"createdAt": 1}).All(&interviews)
	if err != nil {
		xl.Errorf("failed to load interview trend rows, error %v", err)
		return nil, err
	}

	applications := make([]time.Time, 0, len(candidates))
	offers := make([]time.Time, 0)
	for _, candidate := range candidates {
		applications = append(applications, candidate.CreatedAt)
		if model.NormalizeCandidateStatus(candidate.Status) == model.CandidateStatusOffer {
			offers = append(offers, candidate.CreatedAt)
		}
	}
	interviewTimes := make([]time.Time, 0, len(interviews))
	for _, interview := range interviews {
		interviewTimes = append(interviewTimes, interview.CreatedAt)
	}
	return BuildTrend(NewTrendCounts(rangeName, applications, interviewTimes, offers)), nil
}

func (s *DashboardService) jobTitles(xl *xlog.Logger, ids []string) (map[string]string, error) {
	jobs := make([]model.JobDo, 0)
	err := s.jobColl.Find(bson.M{"_id": bson.M{"$in": ids}}).Select(bson.M{"title": 1}).All(&jobs)
	if err != nil {
		xl.Errorf("failed to resolve job titles, error %v", err)
		return nil, err
	}
	titles := make(map[string]string, len(jobs))
	for _, job := range jobs {
		titles[job.ID] = job.Title
	}
	return titles, nil
}

func (s *DashboardService) candidateNames(xl *xlog.Logger, ids []string) (map[string]string, error) {
	candidates := make([]model.CandidateDo, 0)
	err := s.candidateColl.Find(bson.M{"_id": bson.M{"$in": ids}}).Select(bson.M{"name": 1}).All(&candidates)
	if err != nil {
		xl.Errorf("failed to resolve candidate names, error %v", err)
		return nil, err
	}
	names := make(map[string]string, len(candidates))
	for _, candidate := range candidates {
		names[candidate.ID] = candidate.Name
	}
	return names, nil
}

func candidateJobIDs(candidates []model.CandidateDo) []string {
	ids := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.JobID != "" {
			ids = append(ids, candidate.JobID)
		}
	}
	return ids
}

func interviewJobIDs(interviews []model.InterviewDo) []string {
	ids := make([]string, 0, len(interviews))
	for _, interview := range interviews {
		if interview.JobID != "" {
			ids = append(ids, interview.JobID)
		}
	}
	return ids
}

func interviewCandidateIDs(interviews []model.InterviewDo) []string {
	ids := make([]string, 0, len(interviews))
	for _, interview := range interviews {
		if interview.CandidateID != "" {
			ids = append(ids, interview.CandidateID)
		}
	}
	return ids
}
